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

// Package cell paints the coloured Voronoi textures used as wallpaper
// sources.
package cell

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/raster"
	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/voronoi"
)

// Options control the appearance of a cell texture.
type Options struct {
	// Points is the number of Voronoi sites.
	Points int

	// Margin is the minimal distance between a site and the texture
	// border, in logical units.
	Margin float64

	// PixelDensity is the number of pixels per logical unit.
	PixelDensity float64

	// StrokeColor and StrokeWidth describe the cell borders.  The width
	// is given in logical units.
	StrokeColor color.NRGBA
	StrokeWidth float64
}

// DefaultOptions returns the options used for the standard textures.
func DefaultOptions() Options {
	return Options{
		Points:       50,
		Margin:       2,
		PixelDensity: 1,
		StrokeColor:  color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
		StrokeWidth:  1,
	}
}

// Result is a painted cell texture, together with its geometry in logical
// units.
type Result struct {
	Image  *image.RGBA
	Points []vec.Vec2
	Cells  []voronoi.Cell
}

// Generate paints a width×height (logical units) Voronoi texture.
// Site coordinates are drawn from r, x before y.  Cell i is filled with
// pal[i mod 3], then all cell edges which do not lie on the texture
// border are stroked.
func Generate(width, height int, pal palette.Palette, r *rng.Source, opt Options) *Result {
	w, h := float64(width), float64(height)

	points := make([]vec.Vec2, opt.Points)
	for i := range points {
		points[i] = vec.Vec2{
			X: r.Uniform(opt.Margin, w-opt.Margin),
			Y: r.Uniform(opt.Margin, h-opt.Margin),
		}
	}
	cells := voronoi.Compute(points, rect.Rect{URx: w, URy: h})

	density := opt.PixelDensity
	if density <= 0 {
		density = 1
	}
	img := image.NewRGBA(image.Rect(0, 0,
		int(math.Round(w*density)), int(math.Round(h*density))))

	c := raster.NewCanvas(img)
	c.Clear()
	c.SetTransform(matrix.Scale(density, density))
	for i, cell := range cells {
		if cell.Degenerate() {
			continue
		}
		c.FillPolygon(cell.Polygon, pal[i%palette.Size])
	}

	c.SetLineWidth(opt.StrokeWidth)
	c.SetLineCap(graphics.LineCapButt)
	for _, cell := range cells {
		if cell.Degenerate() {
			continue
		}
		for a, b := range cell.Edges() {
			if OnBorder(a, b, w, h) {
				continue
			}
			c.StrokeSegment(a, b, opt.StrokeColor)
		}
	}

	return &Result{
		Image:  img,
		Points: points,
		Cells:  cells,
	}
}

// OnBorder reports whether the edge from a to b lies on the border of a
// w×h texture: either both x coordinates are multiples of w, or both y
// coordinates are multiples of h.
func OnBorder(a, b vec.Vec2, w, h float64) bool {
	return (isMultiple(a.X, w) && isMultiple(b.X, w)) ||
		(isMultiple(a.Y, h) && isMultiple(b.Y, h))
}

func isMultiple(x, m float64) bool {
	return math.Mod(x, m) == 0
}
