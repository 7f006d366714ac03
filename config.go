// seehuhn.de/go/wallpaper - seamless symmetric wallpaper patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wallpaper

import (
	"errors"
	"fmt"
	"image/color"

	"seehuhn.de/go/wallpaper/cell"
	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/wander"
)

// ErrInvalidConfig is returned for configurations which cannot be used.
var ErrInvalidConfig = errors.New("wallpaper: invalid configuration")

// Config holds the parameters of a wallpaper session.
type Config struct {
	// SourceSize is the side length of the generated source texture, in
	// logical units.
	SourceSize int

	// PixelDensity is the number of texels per logical unit.
	PixelDensity float64

	// Repeat is the number of mirrored copies of the source along each
	// side of the seamless texture (2 or 3).
	Repeat int

	// Points and Margin control the Voronoi sites of generated textures.
	Points int
	Margin float64

	// StrokeColor and StrokeWidth describe the cell borders.
	StrokeColor color.NRGBA
	StrokeWidth float64

	// Speed is the pan speed in texels per tick.
	Speed float64

	// Wander controls the random heading of the pan.
	Wander wander.Params

	Seed  uint64
	Group string

	// Palette, if set, is used for all generated textures instead of a
	// palette derived from the seed.
	Palette *palette.Palette
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SourceSize:   240,
		PixelDensity: 1,
		Repeat:       3,
		Points:       50,
		Margin:       2,
		StrokeColor:  color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		StrokeWidth:  1,
		Speed:        0.2,
		Wander:       wander.DefaultParams,
		Seed:         1,
		Group:        "p6m",
	}
}

// Validate checks that the configuration can be used to build a session.
func (c *Config) Validate() error {
	switch {
	case c.SourceSize <= 0:
		return fmt.Errorf("%w: source size %d", ErrInvalidConfig, c.SourceSize)
	case c.PixelDensity <= 0:
		return fmt.Errorf("%w: pixel density %g", ErrInvalidConfig, c.PixelDensity)
	case c.Repeat != 2 && c.Repeat != 3:
		return fmt.Errorf("%w: repeat %d", ErrInvalidConfig, c.Repeat)
	case c.Points < 0:
		return fmt.Errorf("%w: %d points", ErrInvalidConfig, c.Points)
	case 2*c.Margin >= float64(c.SourceSize):
		return fmt.Errorf("%w: margin %g too large", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// sourceTexels returns the side length of the source texture in texels.
func (c *Config) sourceTexels() int {
	return int(float64(c.SourceSize)*c.PixelDensity + 0.5)
}

func (c *Config) cellOptions() cell.Options {
	return cell.Options{
		Points:       c.Points,
		Margin:       c.Margin,
		PixelDensity: c.PixelDensity,
		StrokeColor:  c.StrokeColor,
		StrokeWidth:  c.StrokeWidth,
	}
}

// Option configures a Session during creation.
type Option func(*sessionOptions)

type sessionOptions struct {
	cfg    Config
	random *rng.Source
}

// WithConfig replaces the whole configuration.  Options given after
// WithConfig modify the new configuration.
func WithConfig(cfg Config) Option {
	return func(o *sessionOptions) {
		o.cfg = cfg
	}
}

// WithSeed sets the seed of the first texture.
func WithSeed(seed uint64) Option {
	return func(o *sessionOptions) {
		o.cfg.Seed = seed
	}
}

// WithGroup selects the wallpaper group by name.
func WithGroup(name string) Option {
	return func(o *sessionOptions) {
		o.cfg.Group = name
	}
}

// WithPalette fixes the colours of all generated textures.
//
// Example:
//
//	pal, err := palette.Parse("#264653", "#2a9d8f", "#e9c46a")
//	if err != nil { ... }
//	s, err := wallpaper.NewSession(b, 800, 600, wallpaper.WithPalette(pal))
func WithPalette(p palette.Palette) Option {
	return func(o *sessionOptions) {
		o.cfg.Palette = &p
	}
}

// WithPixelDensity sets the number of texels per logical unit.
func WithPixelDensity(density float64) Option {
	return func(o *sessionOptions) {
		o.cfg.PixelDensity = density
	}
}

// WithRepeat sets the number of mirrored source copies per side.
func WithRepeat(k int) Option {
	return func(o *sessionOptions) {
		o.cfg.Repeat = k
	}
}

// WithRandom sets the random source used for new seeds, initial pan
// offsets and the pan heading.  By default, a source derived from the
// configured seed is used, so that sessions are reproducible.
func WithRandom(r *rng.Source) Option {
	return func(o *sessionOptions) {
		o.random = r
	}
}
