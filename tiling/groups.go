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

package tiling

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Shapes, as triangle corners in units of the instance size.
var (
	triangle = []vec.Vec2{{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	rightTriangle = []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	square = []vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0},
	}
)

var groups = []*Group{pmm(), p4m(), p3m1(), p6m()}

// pmm reflects a rectangle across both of its edges.
func pmm() *Group {
	w, h := 100*math.Sqrt(3), 100.0
	inst := func(x, y float64, fx, fy bool) Instance {
		return Instance{X: x, Y: y, W: w, H: h, FlipX: fx, FlipY: fy}
	}
	return &Group{
		Name:       "pmm",
		TileWidth:  2 * w,
		TileHeight: 2 * h,
		Size:       vec.Vec2{X: w, Y: h},
		Shape:      square,
		Template: []Instance{
			inst(0, 0, false, false),
			inst(0, h, true, false),
			inst(w, 0, false, true),
			inst(w, h, true, true),
		},
	}
}

// p4m uses eight copies of an isosceles right triangle around each
// four-fold centre.
func p4m() *Group {
	w, h := 100*math.Sqrt2, 100/math.Sqrt2
	inst := func(x, y, angle float64, fy bool) Instance {
		return Instance{X: x, Y: y, W: w, H: h, Angle: angle, FlipY: fy}
	}
	return &Group{
		Name:       "p4m",
		TileWidth:  200,
		TileHeight: 200,
		Size:       vec.Vec2{X: w, Y: h},
		Shape:      triangle,
		Template: []Instance{
			inst(-50, 150, math.Pi/4, false),
			inst(150, 150, 5*math.Pi/4, true),
			inst(50, 150, 3*math.Pi/4, true),
			inst(50, -50, -math.Pi/4, false),
			inst(50, 50, math.Pi/4, true),
			inst(250, 50, 5*math.Pi/4, false),
			inst(150, 250, 6*math.Pi/8, false),
			inst(150, 50, -math.Pi/4, true),
		},
	}
}

// p3m1 tiles the plane with equilateral triangles, each split into
// mirrored thirds.
func p3m1() *Group {
	s3 := math.Sqrt(3)
	w, h := 100.0, 50*s3
	inst := func(x, y, angle float64, fy bool) Instance {
		return Instance{X: x, Y: y, W: w, H: h, Angle: angle, FlipY: fy}
	}
	return &Group{
		Name:       "p3m1",
		TileWidth:  100 * s3,
		TileHeight: 150,
		Extra:      1,
		OriginX:    -100,
		Stagger:    50 * s3,
		Size:       vec.Vec2{X: w, Y: h},
		Shape:      triangle,
		Template: []Instance{
			inst(-25*s3, 25, math.Pi/6, false),
			inst(0, 50, 3*math.Pi/6, true),
			inst(100*s3, -50, 9*math.Pi/6, false),
			inst(75*s3, -25, -math.Pi/6, true),
			inst(75*s3, 175, 5*math.Pi/6, false),
			inst(75*s3, 125, 7*math.Pi/6, true),
		},
	}
}

// p6m uses twelve 30-60-90 triangles around each six-fold centre.
func p6m() *Group {
	w, h := 100*math.Sqrt(3), 100.0
	inst := func(x, y, angle float64, fx, fy bool) Instance {
		return Instance{X: x, Y: y, W: w, H: h, Angle: angle, FlipX: fx, FlipY: fy}
	}
	return &Group{
		Name:       "p6m",
		TileWidth:  2 * w,
		TileHeight: 300,
		Extra:      1,
		OriginX:    -w,
		Stagger:    -w,
		Size:       vec.Vec2{X: w, Y: h},
		Shape:      rightTriangle,
		Template: []Instance{
			inst(w, 300, math.Pi, false, false),
			inst(w, 200, 8*math.Pi/6, true, false),
			inst(2*w, 300, math.Pi, false, true),
			inst(1.5*w, 150, -math.Pi/3, false, false),
			inst(2*w, 300, 2*math.Pi/3, false, true),
			inst(2.5*w, 150, -2*math.Pi/3, false, false),
			inst(2*w, 100, math.Pi/3, true, false),
			inst(0.5*w, 150, math.Pi/3, false, false),
			inst(w, 200, 2*math.Pi/3, true, false),
			inst(1.5*w, 150, 2*math.Pi/3, false, false),
			inst(2*w, 0, 0, false, false),
			inst(w, 0, 0, false, true),
		},
	}
}
