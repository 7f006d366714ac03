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

// Package palette derives small harmonised colour palettes from a seed.
//
// Colours are chosen in the HSLuv colour space, where equal steps in
// lightness look equally large, so that the accent colours keep a similar
// contrast to the base colour for every hue.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	css "github.com/mazznoer/csscolorparser"

	"seehuhn.de/go/wallpaper/rng"
)

// Size is the number of colours in a palette.
const Size = 3

// Palette is an ordered sequence of colours.  Voronoi cell i uses
// colour i mod Size.
type Palette [Size]color.NRGBA

// Generator constants, in HSLuv units (hue in degrees, saturation and
// lightness in percent).
const (
	baseSaturation = 30
	baseLightness  = 30

	accentHueMin = 20
	accentHueMax = 40

	accentLightMin = 20
	accentLightMax = 60
)

// ErrPaletteSize is returned by Parse when the number of colours is not Size.
var ErrPaletteSize = errors.New("palette: need exactly 3 colours")

// Params records the random choices made while generating a palette.
type Params struct {
	BaseHue      float64    // in [0, 360)
	AccentOffset [2]float64 // hue offsets of the two accents, in [20, 40)
	Hues         [Size]float64
	Lightness    [Size]float64
}

// FromSeed generates the palette for the given seed.
func FromSeed(seed uint64) Palette {
	p, _ := Generate(rng.NewStream(seed, rng.StreamPalette))
	return p
}

// Generate draws a palette from r.
//
// The base hue is uniform in [0, 360).  The two accent hues lie 20 to 40
// degrees above and below the base hue.  The accents are lighter than the
// base colour by 20 to 60 percent.
func Generate(r *rng.Source) (Palette, Params) {
	var par Params
	par.BaseHue = float64(r.Range(0, 360))
	par.AccentOffset[0] = r.Uniform(accentHueMin, accentHueMax)
	par.AccentOffset[1] = r.Uniform(accentHueMin, accentHueMax)

	par.Hues[0] = par.BaseHue
	par.Hues[1] = wrapHue(par.BaseHue + par.AccentOffset[0])
	par.Hues[2] = wrapHue(par.BaseHue - par.AccentOffset[1])

	par.Lightness[0] = baseLightness
	par.Lightness[1] = baseLightness + r.Uniform(accentLightMin, accentLightMax)
	par.Lightness[2] = baseLightness + r.Uniform(accentLightMin, accentLightMax)

	var p Palette
	for i := range p {
		p[i] = hsluvToNRGBA(par.Hues[i], baseSaturation, par.Lightness[i])
	}
	return p, par
}

// Parse converts colour strings to a palette.  Any CSS colour syntax is
// accepted, for example "#404040", "rgb(10 20 30)" or "teal".
func Parse(colors ...string) (Palette, error) {
	var p Palette
	if len(colors) != Size {
		return p, fmt.Errorf("%w: got %d", ErrPaletteSize, len(colors))
	}
	for i, s := range colors {
		c, err := css.Parse(s)
		if err != nil {
			return p, fmt.Errorf("palette: colour %d: %w", i, err)
		}
		p[i] = color.NRGBA{
			R: uint8(math.Round(255 * c.R)),
			G: uint8(math.Round(255 * c.G)),
			B: uint8(math.Round(255 * c.B)),
			A: 255,
		}
	}
	return p, nil
}

// ParseList parses a comma separated list of three colours.
func ParseList(s string) (Palette, error) {
	var parts []string
	for _, f := range strings.Split(s, ",") {
		parts = append(parts, strings.TrimSpace(f))
	}
	return Parse(parts...)
}

// Hex returns the palette colours as "#rrggbb" strings.
func (p Palette) Hex() [Size]string {
	var res [Size]string
	for i, c := range p {
		res[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return res
}

// String returns the comma separated hex representation.  The result can
// be read back with ParseList.
func (p Palette) String() string {
	h := p.Hex()
	return strings.Join(h[:], ",")
}

// hsluvToNRGBA converts HSLuv coordinates (saturation and lightness in
// percent) to an opaque sRGB colour.  Channels are rounded down.
func hsluvToNRGBA(h, s, l float64) color.NRGBA {
	c := colorful.HSLuv(h, s/100, l/100).Clamped()
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: 255,
	}
}

func toByte(x float64) uint8 {
	return uint8(min(255, math.Floor(255*x)))
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
