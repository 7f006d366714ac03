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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle",
		Path:   polygon(pt(10, 10), pt(54, 10), pt(54, 54), pt(10, 54)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "rectangle_fractional",
		Path:   polygon(pt(10.3, 10.7), pt(53.6, 10.7), pt(53.6, 53.2), pt(10.3, 53.2)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "hexagon",
		Path:   regular(32, 32, 24, 6, 0.1),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		// a typical Voronoi cell: irregular, convex, touching the border
		Name:   "cell_border",
		Path:   polygon(pt(0, 12.5), pt(21.25, 0), pt(47.8, 0), pt(55.1, 19.4), pt(31.7, 40.2), pt(0, 36.9)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "sliver",
		Path:   polygon(pt(4, 30), pt(60, 31.5), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "clipped",
		Path:   polygon(pt(-20, 20), pt(40, -10), pt(84, 44), pt(30, 80)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// regular builds a regular polygon with n corners, rotated by phase
// radians.
func regular(cx, cy, r float64, n int, phase float64) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return polygon(pts...)
}

// star builds a self-intersecting five-pointed star.
func star(cx, cy, r float64) *path.Data {
	var corners [5]vec.Vec2
	for i := range corners {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		corners[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return polygon(corners[0], corners[2], corners[4], corners[1], corners[3])
}
