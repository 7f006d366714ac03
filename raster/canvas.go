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

package raster

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas paints anti-aliased shapes onto an RGBA image, using source-over
// compositing.
type Canvas struct {
	Img *image.RGBA
	r   *Rasterizer

	// current paint, premultiplied, in [0, 1]
	cr, cg, cb, ca float32
}

// NewCanvas returns a canvas drawing into img.  User space coincides with
// the pixel grid of img until SetTransform is called.
func NewCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{
		Img: img,
		r:   NewRasterizer(clip),
	}
}

// SetTransform sets the map from user space to pixel coordinates.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.r.CTM = m
}

// SetLineWidth sets the stroke width in user space units.
func (c *Canvas) SetLineWidth(w float64) {
	c.r.Width = w
}

// SetLineCap sets the shape used at the ends of stroked segments.
func (c *Canvas) SetLineCap(style graphics.LineCapStyle) {
	c.r.Cap = style
}

// Clear sets every pixel of the canvas to transparent black.
func (c *Canvas) Clear() {
	clear(c.Img.Pix)
}

// FillPolygon fills a closed polygon with col.
func (c *Canvas) FillPolygon(poly []vec.Vec2, col color.Color) {
	c.setPaint(col)
	c.r.FillPolygon(poly, c.composite)
}

// Fill fills a path with col, using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	c.setPaint(col)
	c.r.FillNonZero(p, c.composite)
}

// Stroke strokes all segments of a path with col.
func (c *Canvas) Stroke(p path.Path, col color.Color) {
	c.setPaint(col)
	c.r.Stroke(p, c.composite)
}

// StrokeSegment strokes the line segment from a to b with col.
func (c *Canvas) StrokeSegment(a, b vec.Vec2, col color.Color) {
	c.setPaint(col)
	c.r.StrokeSegment(a, b, c.composite)
}

func (c *Canvas) setPaint(col color.Color) {
	r, g, b, a := col.RGBA()
	c.cr = float32(r) / 0xffff
	c.cg = float32(g) / 0xffff
	c.cb = float32(b) / 0xffff
	c.ca = float32(a) / 0xffff
}

// composite blends one scanline of coverage into the image.
func (c *Canvas) composite(y, xMin int, coverage []float32) {
	img := c.Img
	off := img.PixOffset(xMin, y)
	pix := img.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		a := cov * c.ca
		if a <= 0 {
			continue
		}
		s := cov // premultiplied paint scaled by coverage
		keep := 1 - a
		p := pix[4*i : 4*i+4 : 4*i+4]
		p[0] = blend(s*c.cr, p[0], keep)
		p[1] = blend(s*c.cg, p[1], keep)
		p[2] = blend(s*c.cb, p[2], keep)
		p[3] = blend(a, p[3], keep)
	}
}

func blend(src float32, dst uint8, keep float32) uint8 {
	v := 255*src + float32(dst)*keep + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
