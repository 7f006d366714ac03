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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper/raster/testcases"
)

// BenchmarkAll reuses a single Rasterizer across all test cases.
func BenchmarkAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	r := NewRasterizer(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for _, tc := range cases {
			r.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
			if tc.CTM != (matrix.Matrix{}) {
				r.CTM = tc.CTM
			}
			switch op := tc.Op.(type) {
			case testcases.Fill:
				if op.Rule == testcases.EvenOdd {
					r.FillEvenOdd(tc.Path, emit)
				} else {
					r.FillNonZero(tc.Path, emit)
				}
			case testcases.Stroke:
				r.Width = op.Width
				r.Cap = op.Cap
				r.Stroke(tc.Path.Iter(), emit)
			}
		}
	}
}

// cellPolygons returns a ring of convex cells covering a square of the
// given size, similar in shape to Voronoi cells.
func cellPolygons(size float64) [][]vec.Vec2 {
	const n = 12
	c := vec.Vec2{X: size / 2, Y: size / 2}
	var res [][]vec.Vec2
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		p0 := c.Add(vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}.Mul(0.45 * size))
		p1 := c.Add(vec.Vec2{X: math.Cos(a1), Y: math.Sin(a1)}.Mul(0.45 * size))
		q0 := c.Add(vec.Vec2{X: math.Cos(a0), Y: math.Sin(a0)}.Mul(0.15 * size))
		q1 := c.Add(vec.Vec2{X: math.Cos(a1), Y: math.Sin(a1)}.Mul(0.15 * size))
		res = append(res, []vec.Vec2{q0, p0, p1, q1})
	}
	return res
}

// BenchmarkCells fills cell polygons with the Rasterizer.
func BenchmarkCells(b *testing.B) {
	for _, size := range []int{60, 240, 960} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := image.NewRGBA(image.Rect(0, 0, size, size))
			c := NewCanvas(img)
			cells := cellPolygons(float64(size))
			col := color.NRGBA{R: 200, G: 100, B: 50, A: 255}

			b.ReportAllocs()
			for b.Loop() {
				for _, poly := range cells {
					c.FillPolygon(poly, col)
				}
			}
		})
	}
}

// BenchmarkVectorCells fills the same polygons with x/image/vector.
func BenchmarkVectorCells(b *testing.B) {
	for _, size := range []int{60, 240, 960} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			img := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.NRGBA{R: 200, G: 100, B: 50, A: 255})
			cells := cellPolygons(float64(size))

			b.ReportAllocs()
			for b.Loop() {
				for _, poly := range cells {
					r.Reset(size, size)
					r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
					for _, p := range poly[1:] {
						r.LineTo(float32(p.X), float32(p.Y))
					}
					r.ClosePath()
					r.Draw(img, img.Bounds(), src, image.Point{})
				}
			}
		})
	}
}

// BenchmarkStroke strokes all cell edges, as done for the cell borders.
func BenchmarkStroke(b *testing.B) {
	const size = 240
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	c := NewCanvas(img)
	cells := cellPolygons(size)

	b.ReportAllocs()
	for b.Loop() {
		for _, poly := range cells {
			for i := range poly {
				c.StrokeSegment(poly[i], poly[(i+1)%len(poly)], color.Black)
			}
		}
	}
}
