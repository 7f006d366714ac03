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

// Package imagefit prepares user supplied images for use as a texture
// source.
package imagefit

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmpty is returned for images without pixels.
var ErrEmpty = errors.New("imagefit: empty image")

// Decode reads an image in any of the registered formats.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagefit: decode: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s image of size %dx%d", ErrEmpty, format, b.Dx(), b.Dy())
	}
	return img, nil
}

// Fill scales src so that it covers a side×side square and crops away
// the parts which stick out on either side.
func Fill(src image.Image, side int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	sb := src.Bounds()
	if sb.Empty() || side <= 0 {
		return dst
	}

	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	scale := max(float64(side)/sw, float64(side)/sh)

	// the part of src which is visible after scaling
	cw := min(sw, float64(side)/scale)
	ch := min(sh, float64(side)/scale)
	x0 := sb.Min.X + int(math.Round((sw-cw)/2))
	y0 := sb.Min.Y + int(math.Round((sh-ch)/2))
	crop := image.Rect(x0, y0, x0+int(math.Round(cw)), y0+int(math.Round(ch))).Intersect(sb)
	if crop.Empty() {
		crop = sb
	}

	if crop.Dx() == side && crop.Dy() == side {
		draw.Draw(dst, dst.Bounds(), src, crop.Min, draw.Src)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}
