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

// Package testcases holds named geometry used to check the rasterizer
// against reference renderings.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // zero value means no transform
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke strokes every segment of the path on its own.  References are
// generated with one PDF subpath per segment, so that no joins appear.
type Stroke struct {
	Width float64               // line width (>0)
	Cap   graphics.LineCapStyle // LineCapButt, LineCapRound, LineCapSquare
}

func (Stroke) isOperation() {}

// Segments splits a path into its individual line segments, closing
// segments included.
func Segments(p *path.Data) [][2]vec.Vec2 {
	var res [][2]vec.Vec2
	var current, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo:
			res = append(res, [2]vec.Vec2{current, pts[0]})
			current = pts[0]
		case path.CmdClose:
			if current != start {
				res = append(res, [2]vec.Vec2{current, start})
			}
			current = start
		}
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}
