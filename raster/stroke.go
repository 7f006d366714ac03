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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke strokes every line segment of the path separately, using Width
// and Cap.  No joins are drawn between consecutive segments; segments
// which overlap are painted once.  The emit callback receives coverage one
// scanline at a time; the slice is only valid during the call.
func (r *Rasterizer) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.addSegmentOutline(current, end)
			current = end
		case path.CmdClose:
			if current != start {
				r.addSegmentOutline(current, start)
			}
			current = start
		}
	}

	r.fillOutlines(emit)
}

// StrokeSegment strokes the single line segment from a to b.
func (r *Rasterizer) StrokeSegment(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	r.addSegmentOutline(a, b)
	r.fillOutlines(emit)
}

// addSegmentOutline appends the outline polygon of one stroked segment.
//
// All outlines are traversed in the same sense relative to the segment
// direction, so that overlaps never cancel under the nonzero rule.
func (r *Rasterizer) addSegmentOutline(a, b vec.Vec2) {
	d := r.Width / 2
	start := len(r.outline)

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		// a segment without direction only shows with round caps
		if r.Cap == graphics.LineCapRound {
			r.addArc(a, d, vec.Vec2{X: 1}, -2*math.Pi)
			r.outlineOffsets = append(r.outlineOffsets, start)
		}
		return
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(b, d, n, -math.Pi)
		r.addArc(a, d, n.Mul(-1), -math.Pi)
	case graphics.LineCapSquare:
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
		fallthrough
	default:
		r.outline = append(r.outline,
			a.Add(n.Mul(d)),
			b.Add(n.Mul(d)),
			b.Sub(n.Mul(d)),
			a.Sub(n.Mul(d)),
		)
	}
	r.outlineOffsets = append(r.outlineOffsets, start)
}

// addArc appends points on the circle around center, starting in direction
// startDir (a unit vector) and turning by sweep radians.  Both end points
// are included.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	m := r.CTM
	rx := math.Hypot(m[0], m[1]) * radius
	ry := math.Hypot(m[2], m[3]) * radius
	devRadius := max(rx, ry)

	n := 1
	if devRadius > r.Flatness {
		// chord sagitta radius*(1-cos(step/2)) must stay below Flatness
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}
	dt := sweep / float64(n)
	for i := 0; i <= n; i++ {
		s, c := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutlines fills all collected outline polygons as one shape.
func (r *Rasterizer) fillOutlines(emit func(y, xMin int, coverage []float32)) {
	if len(r.outlineOffsets) == 0 {
		return
	}
	r.startEdges()
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		if end-start >= 3 {
			r.addPolygonEdges(r.outline[start:end])
		}
	}
	r.scan(fillNonZero, emit)
}
