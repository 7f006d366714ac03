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

// Package voronoi computes Voronoi diagrams clipped to a rectangle.
//
// The cell of a site is found by intersecting the bounding rectangle with
// the half-planes closer to the site than to each other site.  This is
// quadratic in the number of sites, which is fine for the few dozen sites
// used for textures.
package voronoi

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Cell is the part of the bounding rectangle which is closer to Site than
// to any other site.
type Cell struct {
	Site vec.Vec2

	// Polygon lists the corners of the cell in order.  Cells of sites
	// outside the bounds, or duplicate sites, have fewer than three
	// corners.
	Polygon []vec.Vec2
}

// Degenerate reports whether the cell has no interior.
func (c Cell) Degenerate() bool {
	return len(c.Polygon) < 3
}

// Edges iterates over the edges of the cell polygon, including the edge
// from the last corner back to the first.
func (c Cell) Edges() iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		n := len(c.Polygon)
		if n < 2 {
			return
		}
		for i, a := range c.Polygon {
			if !yield(a, c.Polygon[(i+1)%n]) {
				return
			}
		}
	}
}

// Path returns the cell outline as a closed path.
func (c Cell) Path() *path.Data {
	p := &path.Data{}
	if c.Degenerate() {
		return p
	}
	p.MoveTo(c.Polygon[0])
	for _, q := range c.Polygon[1:] {
		p.LineTo(q)
	}
	return p.Close()
}

// Area returns the area of the cell.
func (c Cell) Area() float64 {
	var a float64
	for p, q := range c.Edges() {
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

// Compute returns one cell per site, in the order of the sites.
func Compute(sites []vec.Vec2, bounds rect.Rect) []Cell {
	corners := []vec.Vec2{
		{X: bounds.LLx, Y: bounds.LLy},
		{X: bounds.URx, Y: bounds.LLy},
		{X: bounds.URx, Y: bounds.URy},
		{X: bounds.LLx, Y: bounds.URy},
	}

	cells := make([]Cell, len(sites))
	var buf []vec.Vec2
	for i, p := range sites {
		cells[i].Site = p
		if p.X < bounds.LLx || p.X > bounds.URx || p.Y < bounds.LLy || p.Y > bounds.URy {
			continue
		}

		poly := append([]vec.Vec2(nil), corners...)
		for j, q := range sites {
			if j == i {
				continue
			}
			if q == p {
				if j < i {
					// the first of several equal sites owns the cell
					poly = poly[:0]
					break
				}
				continue
			}
			// keep the side of the bisector containing p
			n := q.Sub(p)
			m := p.Add(q).Mul(0.5)
			buf = clipHalfPlane(buf[:0], poly, n, n.Dot(m))
			poly, buf = buf, poly
			if len(poly) < 3 {
				break
			}
		}
		cells[i].Polygon = poly
	}
	return cells
}

// clipHalfPlane appends to out the convex polygon poly intersected with
// the half-plane {x : n·x ≤ c}.
func clipHalfPlane(out, poly []vec.Vec2, n vec.Vec2, c float64) []vec.Vec2 {
	k := len(poly)
	for i := range k {
		a := poly[i]
		b := poly[(i+1)%k]
		da := n.Dot(a) - c
		db := n.Dot(b) - c

		if da <= 0 {
			out = appendPoint(out, a)
		}
		if (da < 0 && db > 0) || (da > 0 && db < 0) {
			t := da / (da - db)
			out = appendPoint(out, lerp(a, b, t))
		}
	}
	if len(out) > 1 && nearlyEqual(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// lerp interpolates between a and b.  Coordinates which agree in a and b
// are kept exactly, so that points on the bounding rectangle stay there.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	res := a
	if a.X != b.X {
		res.X = a.X + t*(b.X-a.X)
	}
	if a.Y != b.Y {
		res.Y = a.Y + t*(b.Y-a.Y)
	}
	return res
}

func appendPoint(out []vec.Vec2, p vec.Vec2) []vec.Vec2 {
	if len(out) > 0 && nearlyEqual(out[len(out)-1], p) {
		return out
	}
	return append(out, p)
}

// nearlyEqual reports whether two corners coincide up to rounding.
func nearlyEqual(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < vertexEpsilon && math.Abs(a.Y-b.Y) < vertexEpsilon
}

const vertexEpsilon = 1e-9
