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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt},
	},
	{
		Name:   "line_round",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound},
	},
	{
		Name:   "line_square",
		Path:   line(10, 32, 54, 32),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare},
	},
	{
		Name:   "hairline_diagonal",
		Path:   line(3.5, 7.25, 59, 51.5),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
	},
	{
		Name:   "hairline_vertical",
		Path:   line(20.5, 4, 20.5, 60),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
	},
	{
		// the edges of one Voronoi cell, stroked one by one
		Name:   "cell_edges",
		Path:   polygon(pt(8, 12.5), pt(21.25, 6), pt(47.8, 8), pt(55.1, 19.4), pt(31.7, 40.2), pt(9, 36.9)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 1, Cap: graphics.LineCapButt},
	},
	{
		Name:   "crossing",
		Path:   polygon(pt(10, 10), pt(54, 54), pt(54, 10), pt(10, 54)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Cap: graphics.LineCapButt},
	},
}

// line builds a path with a single line segment.
func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2))
}
