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

package wallpaper

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper/tiling"
)

// Handle identifies the instance buffers created by a Backend.
// Its dynamic type is chosen by the backend.
type Handle any

// Backend draws the instances of a wallpaper group.
//
// The buffers for one instance list are created once and then used for
// many frames.  Each frame, the texture is sampled at the texture
// coordinates of the instance vertices plus the pan offset, clamped to
// the edge of the texture.
type Backend interface {
	// CreateInstanceBuffers uploads the instance list.
	CreateInstanceBuffers(g *tiling.Group, instances []tiling.Instance) (Handle, error)

	// Destroy releases the buffers.  h must not be used afterwards.
	Destroy(h Handle)

	// Submit draws one frame.  Offset is given in texels, resolution is
	// the viewport size in device pixels.
	Submit(tex *Texture, h Handle, offset vec.Vec2, resolution vec.Vec2) error
}
