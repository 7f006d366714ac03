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
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper/cell"
	"seehuhn.de/go/wallpaper/imagefit"
	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/seamless"
)

// Texture is a source image together with its seamless mosaic.
// Textures are immutable once created.
type Texture struct {
	// Source is the square source image.
	Source *image.RGBA

	// Grid is the mirrored Repeat×Repeat mosaic of Source.  This is the
	// image the backends sample from.
	Grid *image.RGBA

	// Seed and Palette describe generated textures.  For textures made
	// from an image, FromImage is set and both are zero.
	Seed      uint64
	Palette   palette.Palette
	FromImage bool

	// PixelDensity is the number of texels per logical unit.
	PixelDensity float64
}

// NewTexture generates the Voronoi texture for the given seed.
// The palette is cfg.Palette if set, and derived from the seed otherwise.
// Palette and site positions use independent random streams.
func NewTexture(cfg Config, seed uint64) (*Texture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var pal palette.Palette
	if cfg.Palette != nil {
		pal = *cfg.Palette
	} else {
		pal = palette.FromSeed(seed)
	}

	r := rng.NewStream(seed, rng.StreamPoints)
	res := cell.Generate(cfg.SourceSize, cfg.SourceSize, pal, r, cfg.cellOptions())
	grid, err := seamless.Build(res.Image, cfg.Repeat)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: texture for seed %d: %w", seed, err)
	}

	Logger().Info("texture generated",
		"seed", seed,
		"palette", pal.String(),
		"cells", len(res.Cells),
		"size", res.Image.Bounds().Dx())

	return &Texture{
		Source:       res.Image,
		Grid:         grid,
		Seed:         seed,
		Palette:      pal,
		PixelDensity: cfg.PixelDensity,
	}, nil
}

// TextureFromImage scales and crops img to fill the source square and
// builds the seamless mosaic from it.
func TextureFromImage(cfg Config, img image.Image) (*Texture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := imagefit.Fill(img, cfg.sourceTexels())
	grid, err := seamless.Build(src, cfg.Repeat)
	if err != nil {
		return nil, fmt.Errorf("wallpaper: texture from image: %w", err)
	}

	b := img.Bounds()
	Logger().Info("texture replaced by image",
		"width", b.Dx(),
		"height", b.Dy(),
		"size", src.Bounds().Dx())

	return &Texture{
		Source:       src,
		Grid:         grid,
		FromImage:    true,
		PixelDensity: cfg.PixelDensity,
	}, nil
}

// SourceWidth returns the width of the source image in texels.
func (t *Texture) SourceWidth() float64 {
	return float64(t.Source.Bounds().Dx())
}

// SourceHeight returns the height of the source image in texels.
func (t *Texture) SourceHeight() float64 {
	return float64(t.Source.Bounds().Dy())
}

// Period returns the period of the mosaic in texels.  Two mirrored copies
// of the source make up one period, so the mosaic can be sampled with
// coordinates wrapped modulo the period.
func (t *Texture) Period() vec.Vec2 {
	gb := t.Grid.Bounds()
	return vec.Vec2{
		X: min(2*t.SourceWidth(), float64(gb.Dx())),
		Y: min(2*t.SourceHeight(), float64(gb.Dy())),
	}
}
