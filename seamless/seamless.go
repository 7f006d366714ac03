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

// Package seamless turns a square image into a larger image which is
// periodic without visible seams.
//
// The source is repeated k×k times.  Copies in odd columns are mirrored
// horizontally, copies in odd rows are mirrored vertically, so that every
// copy meets its neighbours along identical pixel rows or columns.  Any
// 2×2 block of copies is a period of the pattern.
package seamless

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
)

var (
	// ErrRepeat is returned for repeat counts other than 2 or 3.
	ErrRepeat = errors.New("seamless: repeat count must be 2 or 3")

	// ErrNotSquare is returned when the source image is not square.
	ErrNotSquare = errors.New("seamless: source image is not square")
)

// Slot reports how the copy in the given grid row and column is mirrored.
func Slot(row, col int) (flipHorizontal, flipVertical bool) {
	return col%2 == 1, row%2 == 1
}

// SlotTransform returns the map from source pixel coordinates to the
// coordinates of the copy in the given slot.  s is the side length of the
// source in pixels.
func SlotTransform(row, col, s int) matrix.Matrix {
	side := float64(s)
	flipH, flipV := Slot(row, col)

	m := matrix.Identity
	if flipH {
		m = m.Mul(matrix.Matrix{-1, 0, 0, 1, side, 0})
	}
	if flipV {
		m = m.Mul(matrix.Matrix{1, 0, 0, -1, 0, side})
	}
	return m.Mul(matrix.Translate(float64(col)*side, float64(row)*side))
}

// Build returns the k×k mirrored mosaic of src.
func Build(src image.Image, k int) (*image.RGBA, error) {
	if k != 2 && k != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrRepeat, k)
	}
	sb := src.Bounds()
	if sb.Dx() != sb.Dy() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, sb.Dx(), sb.Dy())
	}
	s := sb.Dx()

	dst := image.NewRGBA(image.Rect(0, 0, k*s, k*s))
	for row := range k {
		for col := range k {
			slot := image.Rect(col*s, row*s, (col+1)*s, (row+1)*s)
			if flipH, flipV := Slot(row, col); !flipH && !flipV {
				draw.Draw(dst, slot, src, sb.Min, draw.Src)
				continue
			}

			// source pixel coordinates are relative to sb.Min
			m := matrix.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)).
				Mul(SlotTransform(row, col, s))
			xdraw.NearestNeighbor.Transform(dst, toAff3(m), src, sb, draw.Src, nil)
		}
	}
	return dst, nil
}

// toAff3 converts an affine matrix to the row-major form used by
// golang.org/x/image/draw.
func toAff3(m matrix.Matrix) f64.Aff3 {
	return f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}
