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

// Package gpu draws wallpapers with ebiten.
//
// Instances are expanded into triangles once, when the buffers are
// created.  Each frame the triangles are drawn with a Kage shader, which
// adds the pan offset to the texture coordinates and samples the texture
// bilinearly, with coordinates wrapped around the period of the mosaic.
package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper"
	"seehuhn.de/go/wallpaper/tiling"
)

//go:embed shader.kage
var shaderSource []byte

var (
	// ErrNoTarget is returned by Submit if no target image has been set.
	ErrNoTarget = errors.New("gpu: no target image")

	// ErrHandle is returned by Submit for handles which were not created
	// by the backend or have been destroyed.
	ErrHandle = errors.New("gpu: invalid instance buffer handle")
)

// maxBatch is the largest number of vertices which can be addressed by
// 16-bit indices, rounded down to whole squares.
const maxBatch = 65532

// Backend draws into an ebiten image.
type Backend struct {
	shader *eb.Shader
	target *eb.Image

	tex    *wallpaper.Texture
	texImg *eb.Image
}

// New compiles the shader.
func New() (*Backend, error) {
	shader, err := eb.NewShader(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}
	return &Backend{shader: shader}, nil
}

// SetTarget sets the image which Submit draws into.  This is normally the
// screen image passed to the Draw method of the ebiten game.
func (b *Backend) SetTarget(dst *eb.Image) {
	b.target = dst
}

type batch struct {
	vertices []eb.Vertex
	indices  []uint16
}

type buffers struct {
	group     *tiling.Group
	batches   []batch
	destroyed bool
}

// CreateInstanceBuffers implements [wallpaper.Backend].
func (b *Backend) CreateInstanceBuffers(g *tiling.Group, instances []tiling.Instance) (wallpaper.Handle, error) {
	buf := &buffers{
		group:   g,
		batches: makeBatches(g.Vertices(instances)),
	}
	wallpaper.Logger().Debug("gpu buffers created",
		"group", g.Name,
		"instances", len(instances),
		"batches", len(buf.batches))
	return buf, nil
}

// makeBatches converts triangle corners to ebiten vertices.  Destination
// positions are the device positions, source positions are the texture
// coordinates without the pan offset.
func makeBatches(vertices []tiling.Vertex) []batch {
	var res []batch
	for len(vertices) > 0 {
		n := min(len(vertices), maxBatch)
		bt := batch{
			vertices: make([]eb.Vertex, n),
			indices:  make([]uint16, n),
		}
		for i, v := range vertices[:n] {
			bt.vertices[i] = eb.Vertex{
				DstX:   float32(v.Pos.X),
				DstY:   float32(v.Pos.Y),
				SrcX:   float32(v.Tex.X),
				SrcY:   float32(v.Tex.Y),
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			}
			bt.indices[i] = uint16(i)
		}
		res = append(res, bt)
		vertices = vertices[n:]
	}
	return res
}

// Destroy implements [wallpaper.Backend].
func (b *Backend) Destroy(h wallpaper.Handle) {
	buf, ok := h.(*buffers)
	if !ok {
		return
	}
	if buf.destroyed {
		wallpaper.Logger().Warn("gpu buffers destroyed twice", "group", buf.group.Name)
		return
	}
	buf.destroyed = true
	buf.batches = nil
}

// Submit implements [wallpaper.Backend].
func (b *Backend) Submit(tex *wallpaper.Texture, h wallpaper.Handle, offset, resolution vec.Vec2) error {
	if b.target == nil {
		return ErrNoTarget
	}
	buf, ok := h.(*buffers)
	if !ok || buf.destroyed {
		return ErrHandle
	}

	if tex != b.tex {
		if b.texImg != nil {
			b.texImg.Deallocate()
		}
		b.texImg = eb.NewImageFromImage(tex.Grid)
		b.tex = tex
		wallpaper.Logger().Debug("gpu texture uploaded",
			"size", tex.Grid.Bounds().Dx(),
			"resolution", fmt.Sprintf("%gx%g", resolution.X, resolution.Y))
	}

	period := tex.Period()
	op := &eb.DrawTrianglesShaderOptions{}
	op.Images[0] = b.texImg
	op.Blend = eb.BlendCopy
	op.Uniforms = map[string]any{
		"Offset": [2]float64{offset.X, offset.Y},
		"Period": [2]float64{period.X, period.Y},
	}
	for _, bt := range buf.batches {
		b.target.DrawTrianglesShader(bt.vertices, bt.indices, b.shader, op)
	}
	return nil
}

// Close releases the texture image.
func (b *Backend) Close() {
	if b.texImg != nil {
		b.texImg.Deallocate()
		b.texImg = nil
		b.tex = nil
	}
}
