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

// Package raster converts polygons and line segments into anti-aliased
// pixel coverage, and composites the result into RGBA images.
//
// Only straight edges are supported.  Paths may contain MoveTo, LineTo
// and Close commands; curve commands are replaced by a straight line to
// their end point.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes, for every pixel touched by a shape, the fraction of
// the pixel area covered by the shape.  Coverage values range from 0 to 1.
//
// Buffers are kept between calls, so a single Rasterizer should be reused
// for many shapes.  A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Device space has the origin
	// in the top-left corner, with y increasing downwards.
	CTM matrix.Matrix

	// Clip restricts output to an integer aligned device rectangle.
	Clip rect.Rect

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape of segment ends for strokes.
	Cap graphics.LineCapStyle

	// Flatness is the maximal distance, in device pixels, between a round
	// cap and its polygonal approximation.
	Flatness float64

	// smallPathThreshold is the largest bounding box area (in pixels) for
	// which full 2D accumulation buffers are used.  Larger shapes are
	// processed one scanline at a time using an active edge list.
	smallPathThreshold int

	cover       []float32
	area        []float32
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	outline        []vec.Vec2 // stroke polygons, contiguous
	outlineOffsets []int      // start of each polygon in outline

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM and 1-unit butt-capped strokes.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Width:    1,
		Cap:      graphics.LineCapButt,
		Flatness: defaultFlatness,

		smallPathThreshold: smallPathThreshold,
	}
}

// Reset changes the clip rectangle and restores the default CTM and stroke
// parameters.  Buffers are retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Flatness = defaultFlatness
}

// FillNonZero fills the path using the nonzero winding rule.  The emit
// callback receives coverage one scanline at a time; the slice is only
// valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

// FillPolygon fills a closed polygon given by its vertices, using the
// nonzero winding rule.  Polygons with fewer than three vertices are
// ignored.
func (r *Rasterizer) FillPolygon(poly []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	if len(poly) < 3 {
		return
	}
	r.startEdges()
	r.addPolygonEdges(poly)
	r.scan(fillNonZero, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// fills close open subpaths implicitly
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(rule, emit)
}

// scan rasterizes the collected edges.
func (r *Rasterizer) scan(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.scanSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.scanLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

func (r *Rasterizer) addPolygonEdges(poly []vec.Vec2) {
	for i := 1; i < len(poly); i++ {
		r.addEdge(poly[i-1], poly[i])
	}
	r.addEdge(poly[len(poly)-1], poly[0])
}

// edgeBounds returns the integer bounding box of all edges, clamped to the
// clip rectangle.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a user space segment to device space and records it.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// Coverage is accumulated in two per-pixel buffers:
//
//	cover[x]  signed height of all edge pieces inside pixel column x
//	area[x]   the same heights, weighted by the uncovered fraction of
//	          the pixel to the left of the edge
//
// The signed area covered in pixel x is then area[x] plus the sum of
// cover over all pixels to the left of x.  Edge pieces left of the
// bounding box are folded into column 0.

// accumulate adds the part of e inside scanline y to cover and area.
// Both slices are indexed by x - xMin.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixRight < xMin {
		h := sign * float32(yBot-yTop)
		cover[0] += h
		area[0] += h
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulatePiece(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.accumulatePiece(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// accumulatePiece records the part of e between yTop and yBot, which lies
// inside pixel column pix.
func (r *Rasterizer) accumulatePiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	h := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += h
		area[0] += h
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		cover[i] += h
		area[i] += h * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area of one scanline into
// coverage values, overwriting cover.
func integrate(cover, area []float32, rule fillRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == fillNonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-m)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips zero coverage from both ends of a scanline.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// scanSmall accumulates all edges into 2D buffers covering the whole
// bounding box, then integrates row by row.
func (r *Rasterizer) scanSmall(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	n := width * height
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// scanLarge processes one scanline at a time, keeping a list of the edges
// which intersect the current scanline.
func (r *Rasterizer) scanLarge(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default round cap tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default bounding box area (in pixels)
	// below which 2D accumulation buffers are used.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which a stroke segment is
	// considered to have no direction.
	zeroLengthThreshold = 1e-10
)
