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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// ctmCases check cells drawn at a pixel density other than 1.
var ctmCases = []TestCase{
	{
		Name:   "density_2",
		Path:   polygon(pt(0, 6), pt(10, 0), pt(24, 3), pt(30, 20), pt(12, 28)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "density_1_5",
		Path:   polygon(pt(4, 6), pt(30, 2), pt(38, 30), pt(6, 40)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(1.5, 1.5),
	},
	{
		Name:   "density_2_stroke",
		Path:   polygon(pt(4, 6), pt(26, 4), pt(28, 26), pt(6, 28)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "rotated",
		Path:   polygon(pt(-15, -10), pt(15, -10), pt(15, 10), pt(-15, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(30).Mul(matrix.Translate(32, 32)),
	},
}
