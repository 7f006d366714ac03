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

// Package tiling places copies of a texture so that they cover a viewport
// with the symmetry of a wallpaper group.
//
// Each group is described by a rectangular tile, repeated in rows and
// columns, and a template of instances inside the tile.  Every instance
// draws one shape (a triangle or a square, made of triangles), cut from
// the texture, after rotating and possibly mirroring it.
package tiling

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// ErrUnknownGroup is returned by Lookup for unsupported group names.
var ErrUnknownGroup = errors.New("tiling: unknown wallpaper group")

// Instance is one placed copy of the group's shape.
//
// X and Y give the device position of the local origin, W and H the size
// of the shape's bounding box.  FlipX mirrors the shape across its
// horizontal axis (local y becomes H-y), FlipY across its vertical axis
// (local x becomes W-x).  After mirroring, the shape is rotated by Angle,
// clockwise on the screen.
type Instance struct {
	X, Y  float64
	W, H  float64
	Angle float64
	FlipX bool
	FlipY bool
}

// Group describes the tiling of one wallpaper group.
type Group struct {
	Name string

	TileWidth  float64
	TileHeight float64

	// Extra is the number of additional rows and columns needed to
	// cover the viewport edges.
	Extra int

	// OriginX is the x coordinate of the first column.  Odd rows are
	// shifted by Stagger.
	OriginX float64
	Stagger float64

	// Size is the bounding box size of the shape.
	Size vec.Vec2

	// Template lists the instances of one tile, relative to the tile
	// origin.
	Template []Instance

	// Shape lists the triangle corners of the shape, three per triangle,
	// in units of Size.
	Shape []vec.Vec2
}

// Count returns the number of tile columns and rows needed to cover a
// w×h viewport.
func (g *Group) Count(w, h int) (cols, rows int) {
	cols = int(math.Ceil(float64(w)/g.TileWidth)) + g.Extra
	rows = int(math.Ceil(float64(h)/g.TileHeight)) + g.Extra
	return cols, rows
}

// Instances returns all instances needed to cover a w×h viewport.
// Tiles are enumerated row by row.
func (g *Group) Instances(w, h int) []Instance {
	cols, rows := g.Count(w, h)
	res := make([]Instance, 0, cols*rows*len(g.Template))
	for row := range rows {
		y := float64(row) * g.TileHeight
		x0 := g.OriginX + float64(row%2)*g.Stagger
		for col := range cols {
			x := x0 + float64(col)*g.TileWidth
			for _, t := range g.Template {
				t.X += x
				t.Y += y
				res = append(res, t)
			}
		}
	}
	return res
}

// Vertex is a corner of a drawn triangle.
type Vertex struct {
	// Pos is the device position.
	Pos vec.Vec2

	// Tex is the position in the texture, before the pan offset is
	// added.
	Tex vec.Vec2
}

// Vertices appends the triangle corners of inst, drawn with the given
// shape, to dst.
func (inst Instance) Vertices(dst []Vertex, shape []vec.Vec2) []Vertex {
	sin, cos := math.Sincos(inst.Angle)
	for _, s := range shape {
		p := vec.Vec2{X: inst.W * s.X, Y: inst.H * s.Y}
		f := p
		if inst.FlipY {
			f.X = inst.W - p.X
		}
		if inst.FlipX {
			f.Y = inst.H - p.Y
		}
		v := vec.Vec2{
			X: cos*f.X + sin*f.Y + inst.X,
			Y: -sin*f.X + cos*f.Y + inst.Y,
		}
		dst = append(dst, Vertex{Pos: v, Tex: p})
	}
	return dst
}

// Vertices returns the triangle corners of all instances.
func (g *Group) Vertices(instances []Instance) []Vertex {
	res := make([]Vertex, 0, len(instances)*len(g.Shape))
	for _, inst := range instances {
		res = inst.Vertices(res, g.Shape)
	}
	return res
}

// Lookup returns the group with the given name.
func Lookup(name string) (*Group, error) {
	for _, g := range groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// Groups returns all supported groups: pmm, p4m, p3m1 and p6m.
func Groups() []*Group {
	return slices.Clone(groups)
}

// Names returns the names of all supported groups.
func Names() []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}
