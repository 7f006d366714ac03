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

// Package software draws wallpapers into an in-memory image.
//
// This is the reference implementation of the wallpaper.Backend
// interface.  A pixel belongs to a triangle if its centre lies inside the
// triangle, and the texture is sampled bilinearly with coordinates wrapped
// around the period of the mosaic.  Both rules match the GPU backend.
package software

import (
	"errors"
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper"
	"seehuhn.de/go/wallpaper/tiling"
)

// ErrHandle is returned by Submit for handles which were not created by
// the backend or have been destroyed.
var ErrHandle = errors.New("software: invalid instance buffer handle")

// Backend renders frames into an *image.RGBA.
type Backend struct {
	frame *image.RGBA
	live  int
}

// New returns a new software backend.
func New() *Backend {
	return &Backend{}
}

type buffers struct {
	group     *tiling.Group
	vertices  []tiling.Vertex
	destroyed bool
}

// CreateInstanceBuffers implements [wallpaper.Backend].
func (b *Backend) CreateInstanceBuffers(g *tiling.Group, instances []tiling.Instance) (wallpaper.Handle, error) {
	buf := &buffers{
		group:    g,
		vertices: g.Vertices(instances),
	}
	b.live++
	wallpaper.Logger().Debug("software buffers created",
		"group", g.Name,
		"instances", len(instances),
		"vertices", len(buf.vertices))
	return buf, nil
}

// Destroy implements [wallpaper.Backend].
func (b *Backend) Destroy(h wallpaper.Handle) {
	buf, ok := h.(*buffers)
	if !ok {
		return
	}
	if buf.destroyed {
		wallpaper.Logger().Warn("software buffers destroyed twice", "group", buf.group.Name)
		return
	}
	buf.destroyed = true
	buf.vertices = nil
	b.live--
}

// Live returns the number of instance buffers which have not been
// destroyed.
func (b *Backend) Live() int {
	return b.live
}

// Frame returns the most recently drawn frame.
func (b *Backend) Frame() *image.RGBA {
	return b.frame
}

// Submit implements [wallpaper.Backend].
func (b *Backend) Submit(tex *wallpaper.Texture, h wallpaper.Handle, offset, resolution vec.Vec2) error {
	buf, ok := h.(*buffers)
	if !ok || buf.destroyed {
		return ErrHandle
	}
	w, ht := int(resolution.X), int(resolution.Y)
	if w <= 0 || ht <= 0 {
		return fmt.Errorf("software: invalid resolution %gx%g", resolution.X, resolution.Y)
	}
	if b.frame == nil || b.frame.Rect.Dx() != w || b.frame.Rect.Dy() != ht {
		b.frame = image.NewRGBA(image.Rect(0, 0, w, ht))
	} else {
		clear(b.frame.Pix)
	}

	s := newSampler(tex.Grid, tex.Period())
	for i := 0; i+2 < len(buf.vertices); i += 3 {
		drawTriangle(b.frame, buf.vertices[i:i+3], offset, s)
	}
	return nil
}

// drawTriangle sets all pixels whose centre lies inside the triangle.
func drawTriangle(dst *image.RGBA, v []tiling.Vertex, offset vec.Vec2, s *sampler) {
	a, b, c := v[0].Pos, v[1].Pos, v[2].Pos
	area := cross(b.Sub(a), c.Sub(a))
	if area == 0 {
		return
	}

	bounds := dst.Rect
	x0 := max(bounds.Min.X, int(math.Floor(min(a.X, b.X, c.X))))
	x1 := min(bounds.Max.X, int(math.Ceil(max(a.X, b.X, c.X))))
	y0 := max(bounds.Min.Y, int(math.Floor(min(a.Y, b.Y, c.Y))))
	y1 := min(bounds.Max.Y, int(math.Ceil(max(a.Y, b.Y, c.Y))))

	ta := v[0].Tex.Add(offset)
	tb := v[1].Tex.Add(offset)
	tc := v[2].Tex.Add(offset)

	const eps = 1e-9
	for y := y0; y < y1; y++ {
		row := dst.Pix[(y-bounds.Min.Y)*dst.Stride:]
		for x := x0; x < x1; x++ {
			p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			// barycentric weights of a, b and c
			wa := cross(b.Sub(p), c.Sub(p)) / area
			wb := cross(c.Sub(p), a.Sub(p)) / area
			wc := 1 - wa - wb
			if wa < -eps || wb < -eps || wc < -eps {
				continue
			}
			t := ta.Mul(wa).Add(tb.Mul(wb)).Add(tc.Mul(wc))
			r, g, bl, al := s.at(t.X, t.Y)
			i := (x - bounds.Min.X) * 4
			row[i+0] = r
			row[i+1] = g
			row[i+2] = bl
			row[i+3] = al
		}
	}
}

func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// sampler reads an image with bilinear filtering.  Texel centres are at
// half-integer coordinates, and coordinates are taken modulo the period,
// neighbouring texels included.
type sampler struct {
	img    *image.RGBA
	pw, ph int
}

func newSampler(img *image.RGBA, period vec.Vec2) *sampler {
	b := img.Bounds()
	pw := min(max(int(math.Round(period.X)), 1), b.Dx())
	ph := min(max(int(math.Round(period.Y)), 1), b.Dy())
	return &sampler{img: img, pw: pw, ph: ph}
}

func (s *sampler) at(x, y float64) (r, g, b, a uint8) {
	x0, y0 := math.Floor(x-0.5), math.Floor(y-0.5)
	fx, fy := x-0.5-x0, y-0.5-y0

	ix, iy := wrap(int(x0), s.pw), wrap(int(y0), s.ph)
	ix1, iy1 := wrap(ix+1, s.pw), wrap(iy+1, s.ph)

	p00 := s.texel(ix, iy)
	p10 := s.texel(ix1, iy)
	p01 := s.texel(ix, iy1)
	p11 := s.texel(ix1, iy1)

	var out [4]uint8
	for k := range out {
		top := float64(p00[k])*(1-fx) + float64(p10[k])*fx
		bot := float64(p01[k])*(1-fx) + float64(p11[k])*fx
		out[k] = uint8(math.Round(top*(1-fy) + bot*fy))
	}
	return out[0], out[1], out[2], out[3]
}

func (s *sampler) texel(x, y int) []uint8 {
	i := y*s.img.Stride + x*4
	return s.img.Pix[i : i+4]
}

// wrap returns i modulo n, in the range [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
