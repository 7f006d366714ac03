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

package palette

import (
	"errors"
	"image/color"
	"math"
	"regexp"
	"testing"

	"seehuhn.de/go/wallpaper/rng"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// hueDistance returns the signed distance from a to b in degrees,
// in the range (-180, 180].
func hueDistance(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func TestSeedOne(t *testing.T) {
	p, par := Generate(rng.NewStream(1, rng.StreamPalette))

	for i, h := range p.Hex() {
		if !hexPattern.MatchString(h) {
			t.Errorf("colour %d: %q is not a hex colour", i, h)
		}
	}

	up := hueDistance(par.Hues[0], par.Hues[1])
	down := -hueDistance(par.Hues[0], par.Hues[2])
	for _, d := range []float64{up, down} {
		if d < 20-1e-9 || d >= 40+1e-9 {
			t.Errorf("accent hue offset %g not in [20, 40)", d)
		}
	}

	if p != FromSeed(1) {
		t.Error("FromSeed(1) differs from Generate on the palette stream")
	}
}

func TestHueRanges(t *testing.T) {
	for seed := range uint64(500) {
		_, par := Generate(rng.New(seed))
		if par.BaseHue < 0 || par.BaseHue >= 360 || par.BaseHue != math.Floor(par.BaseHue) {
			t.Fatalf("seed %d: base hue %g", seed, par.BaseHue)
		}
		for i, h := range par.Hues {
			if h < 0 || h >= 360 {
				t.Fatalf("seed %d: hue %d = %g outside [0, 360)", seed, i, h)
			}
		}
		for i := 1; i < Size; i++ {
			l := par.Lightness[i] - baseLightness
			if l < 20 || l >= 60 {
				t.Fatalf("seed %d: lightness offset %g", seed, l)
			}
		}
	}
}

func TestAccentsLighter(t *testing.T) {
	lum := func(c color.NRGBA) float64 {
		return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	}
	for seed := range uint64(100) {
		p := FromSeed(seed)
		for i := 1; i < Size; i++ {
			if lum(p[i]) <= lum(p[0]) {
				t.Errorf("seed %d: accent %d (%v) not lighter than base (%v)",
					seed, i, p[i], p[0])
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	for seed := range uint64(50) {
		if FromSeed(seed) != FromSeed(seed) {
			t.Fatalf("seed %d: palettes differ", seed)
		}
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("#404040", "rgb(255, 0, 0)", "white")
	if err != nil {
		t.Fatal(err)
	}
	want := Palette{
		{R: 0x40, G: 0x40, B: 0x40, A: 255},
		{R: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	if p != want {
		t.Errorf("got %v, want %v", p, want)
	}

	q, err := ParseList(p.String())
	if err != nil {
		t.Fatal(err)
	}
	if q != p {
		t.Errorf("ParseList(String()) = %v, want %v", q, p)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("#000", "#fff"); !errors.Is(err, ErrPaletteSize) {
		t.Errorf("two colours: got %v, want ErrPaletteSize", err)
	}
	if _, err := Parse("#000", "#fff", "not-a-colour"); err == nil {
		t.Error("invalid colour accepted")
	}
}
