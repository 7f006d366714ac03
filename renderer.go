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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/tiling"
	"seehuhn.de/go/wallpaper/wander"
)

// Renderer holds the state for drawing one texture with one wallpaper
// group into one viewport.  A Renderer is not safe for concurrent use.
type Renderer struct {
	backend Backend
	group   *tiling.Group
	tex     *Texture

	width, height int
	instances     []tiling.Instance
	handle        Handle
	destroyed     bool

	// offset is the pan offset in texels
	offset  vec.Vec2
	heading *wander.Generator
	speed   float64
	animate bool

	sourceSize float64
	density    float64
}

// NewRenderer creates the instance buffers for a w×h viewport.
// The pan offset starts at a random position inside the source texture,
// and animation is switched on.
func NewRenderer(b Backend, g *tiling.Group, w, h int, tex *Texture, r *rng.Source, cfg Config) (*Renderer, error) {
	rd := &Renderer{
		backend:    b,
		group:      g,
		tex:        tex,
		heading:    wander.New(r, cfg.Wander),
		speed:      cfg.Speed,
		animate:    true,
		sourceSize: float64(cfg.SourceSize),
		density:    cfg.PixelDensity,
	}
	rd.offset = vec.Vec2{
		X: r.Float64() * tex.SourceWidth(),
		Y: r.Float64() * tex.SourceHeight(),
	}
	if err := rd.build(w, h); err != nil {
		return nil, err
	}
	return rd, nil
}

func (rd *Renderer) build(w, h int) error {
	instances := rd.group.Instances(w, h)
	handle, err := rd.backend.CreateInstanceBuffers(rd.group, instances)
	if err != nil {
		return fmt.Errorf("wallpaper: %s instance buffers for %dx%d: %w",
			rd.group.Name, w, h, err)
	}
	rd.width, rd.height = w, h
	rd.instances = instances
	rd.handle = handle

	cols, rows := rd.group.Count(w, h)
	Logger().Debug("instance buffers created",
		"group", rd.group.Name,
		"width", w, "height", h,
		"cols", cols, "rows", rows,
		"instances", len(instances))
	return nil
}

// SetOffset pans to the given position, in logical units of the source
// texture.  Coordinates are clamped to the source.
func (rd *Renderer) SetOffset(x, y float64) {
	x = max(0, min(x, rd.sourceSize))
	y = max(0, min(y, rd.sourceSize))
	rd.offset = vec.Vec2{X: x * rd.density, Y: y * rd.density}
}

// Offset returns the current pan offset in texels.
func (rd *Renderer) Offset() vec.Vec2 {
	return rd.offset
}

// SetAnimate switches the automatic pan on or off.
func (rd *Renderer) SetAnimate(animate bool) {
	rd.animate = animate
}

// Animate reports whether the automatic pan is on.
func (rd *Renderer) Animate() bool {
	return rd.animate
}

// Resize adapts the renderer to a new viewport size.  If the size has
// changed, the instance list is rebuilt and the old buffers are released.
// The return value reports whether anything changed.
func (rd *Renderer) Resize(w, h int) (bool, error) {
	if w == rd.width && h == rd.height {
		return false, nil
	}
	old := rd.handle
	if err := rd.build(w, h); err != nil {
		return false, err
	}
	rd.backend.Destroy(old)
	return true, nil
}

// Tick advances the automatic pan by one frame.
// The offset wraps around in the range [0, 2·source size], which is one
// period of the mirrored texture.
func (rd *Renderer) Tick() {
	if !rd.animate {
		return
	}
	angle := rd.heading.Next()
	rd.offset.X = wrap(rd.offset.X+rd.speed*math.Cos(angle), 2*rd.tex.SourceWidth())
	rd.offset.Y = wrap(rd.offset.Y+rd.speed*math.Sin(angle), 2*rd.tex.SourceHeight())
}

func wrap(x, period float64) float64 {
	if x < 0 {
		x += period
	}
	if x > period {
		x -= period
	}
	return x
}

// Draw submits one frame to the backend.
func (rd *Renderer) Draw() error {
	return rd.backend.Submit(rd.tex, rd.handle, rd.offset,
		vec.Vec2{X: float64(rd.width), Y: float64(rd.height)})
}

// SourcePoint describes where the pan offset lies in the source image.
type SourcePoint struct {
	// X and Y are the offset folded back into the source, in logical
	// units.
	X, Y float64

	// Left and Top report whether the offset lies in an unmirrored copy
	// of the source, horizontally and vertically.
	Left, Top bool
}

// SourcePoint returns the pan offset folded back into the source image.
// Since the texture is mirrored, every offset corresponds to a point in
// the source.
func (rd *Renderer) SourcePoint() SourcePoint {
	sw, sh := rd.tex.SourceWidth(), rd.tex.SourceHeight()
	x, left := fold(rd.offset.X, sw)
	y, top := fold(rd.offset.Y, sh)
	return SourcePoint{
		X:    x / rd.density,
		Y:    y / rd.density,
		Left: left,
		Top:  top,
	}
}

func fold(x, s float64) (float64, bool) {
	if x < s {
		return x, true
	}
	return 2*s - x, false
}

// Group returns the wallpaper group of the renderer.
func (rd *Renderer) Group() *tiling.Group {
	return rd.group
}

// Texture returns the texture drawn by the renderer.
func (rd *Renderer) Texture() *Texture {
	return rd.tex
}

// Instances returns the current instance list.
func (rd *Renderer) Instances() []tiling.Instance {
	return rd.instances
}

// Destroy releases the instance buffers.  The renderer must not be used
// afterwards.
func (rd *Renderer) Destroy() {
	if rd.destroyed {
		Logger().Warn("renderer destroyed twice", "group", rd.group.Name)
		return
	}
	rd.destroyed = true
	rd.backend.Destroy(rd.handle)
	rd.handle = nil
}
