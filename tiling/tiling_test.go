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

package tiling

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

// inside reports whether p lies in the closed triangle abc, up to eps.
func inside(a, b, c, p vec.Vec2, eps float64) bool {
	d1 := (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
	d2 := (p.X-c.X)*(b.Y-c.Y) - (b.X-c.X)*(p.Y-c.Y)
	d3 := (p.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(p.Y-a.Y)
	neg := d1 < -eps || d2 < -eps || d3 < -eps
	pos := d1 > eps || d2 > eps || d3 > eps
	return !(neg && pos)
}

// misses samples an (n+1)×(n+1) grid over the w×h viewport, including
// the edges, and returns the number of points not covered by any triangle.
func misses(g *Group, w, h, n int) int {
	verts := g.Vertices(g.Instances(w, h))
	count := 0
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			p := vec.Vec2{
				X: float64(w) * float64(i) / float64(n),
				Y: float64(h) * float64(j) / float64(n),
			}
			covered := false
			for k := 0; k+2 < len(verts); k += 3 {
				if inside(verts[k].Pos, verts[k+1].Pos, verts[k+2].Pos, p, 1e-6) {
					covered = true
					break
				}
			}
			if !covered {
				count++
			}
		}
	}
	return count
}

func TestCoverage(t *testing.T) {
	for _, g := range Groups() {
		for n := 1; n <= 4; n++ {
			w := int(math.Floor(g.TileWidth*float64(n))) + 1
			h := int(math.Floor(g.TileHeight*float64(n))) + 1
			t.Run(fmt.Sprintf("%s-%dx%d", g.Name, w, h), func(t *testing.T) {
				if m := misses(g, w, h, 97); m > 0 {
					t.Errorf("%d sample points not covered", m)
				}
			})
		}
		for _, size := range [][2]int{{800, 600}, {1920, 1080}, {1, 1}, {640, 480}} {
			w, h := size[0], size[1]
			t.Run(fmt.Sprintf("%s-%dx%d", g.Name, w, h), func(t *testing.T) {
				if m := misses(g, w, h, 40); m > 0 {
					t.Errorf("%d sample points not covered", m)
				}
			})
		}
	}
}

func TestInstanceCount(t *testing.T) {
	cases := map[string]int{
		"pmm":  36,
		"p4m":  96,
		"p3m1": 180,
		"p6m":  144,
	}
	for name, want := range cases {
		g, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if got := len(g.Instances(800, 600)); got != want {
			t.Errorf("%s: %d instances at 800x600, want %d", name, got, want)
		}
	}
}

func TestP6mLayout(t *testing.T) {
	g, err := Lookup("p6m")
	if err != nil {
		t.Fatal(err)
	}
	cols, rows := g.Count(800, 600)
	if cols != 4 || rows != 3 {
		t.Errorf("Count(800, 600) = %d, %d, want 4, 3", cols, rows)
	}

	inst := g.Instances(800, 600)
	w := 100 * math.Sqrt(3)
	// row 1, column 0: origin is shifted left by one shape width
	first := inst[cols*len(g.Template)]
	if math.Abs(first.X-(-2*w+w)) > 1e-9 || first.Y != 300+300 {
		t.Errorf("first instance of row 1 at (%g, %g)", first.X, first.Y)
	}
}

func TestIdempotent(t *testing.T) {
	for _, g := range Groups() {
		a := g.Instances(1024, 768)
		b := g.Instances(1024, 768)
		if d := cmp.Diff(a, b); d != "" {
			t.Errorf("%s: instances differ (-first +second):\n%s", g.Name, d)
		}
	}
}

func TestShapes(t *testing.T) {
	for _, g := range Groups() {
		if len(g.Shape)%3 != 0 || len(g.Shape) == 0 {
			t.Errorf("%s: shape has %d corners", g.Name, len(g.Shape))
		}
		for _, inst := range g.Template {
			if inst.W != g.Size.X || inst.H != g.Size.Y {
				t.Errorf("%s: instance size %gx%g, want %v", g.Name, inst.W, inst.H, g.Size)
			}
		}
	}
}

func TestVertices(t *testing.T) {
	inst := Instance{X: 10, Y: 20, W: 4, H: 2, Angle: math.Pi / 2, FlipY: true}
	got := inst.Vertices(nil, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})

	// texture coordinates ignore the placement
	wantTex := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 2}}
	// mirrored: (0,0) -> (4,0), rotated by 90°: (x,y) -> (y,-x)
	wantPos := []vec.Vec2{{X: 10, Y: 16}, {X: 10, Y: 20}, {X: 12, Y: 16}}
	for i, v := range got {
		if v.Tex != wantTex[i] {
			t.Errorf("corner %d: tex %v, want %v", i, v.Tex, wantTex[i])
		}
		if v.Pos.Sub(wantPos[i]).Length() > 1e-9 {
			t.Errorf("corner %d: pos %v, want %v", i, v.Pos, wantPos[i])
		}
	}
}

func TestLookup(t *testing.T) {
	want := []string{"pmm", "p4m", "p3m1", "p6m"}
	if d := cmp.Diff(want, Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
	for _, name := range want {
		g, err := Lookup(name)
		if err != nil || g.Name != name {
			t.Errorf("Lookup(%q) = %v, %v", name, g, err)
		}
	}
	if _, err := Lookup("p2"); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("Lookup(\"p2\"): got %v, want ErrUnknownGroup", err)
	}
}

func BenchmarkInstances(b *testing.B) {
	for _, g := range Groups() {
		b.Run(g.Name, func(b *testing.B) {
			for b.Loop() {
				g.Vertices(g.Instances(1920, 1080))
			}
		})
	}
}
