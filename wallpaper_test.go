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
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/tiling"
	"seehuhn.de/go/wallpaper/wander"
)

// fakeBackend records all calls.
type fakeBackend struct {
	next      int
	live      map[int]int // handle -> number of instances
	destroyed map[int]int // handle -> number of Destroy calls
	submits   []submit
	fail      error
}

type submit struct {
	tex        *Texture
	handle     int
	offset     vec.Vec2
	resolution vec.Vec2
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		live:      map[int]int{},
		destroyed: map[int]int{},
	}
}

func (b *fakeBackend) CreateInstanceBuffers(g *tiling.Group, instances []tiling.Instance) (Handle, error) {
	if b.fail != nil {
		return nil, b.fail
	}
	b.next++
	b.live[b.next] = len(instances)
	return b.next, nil
}

func (b *fakeBackend) Destroy(h Handle) {
	id := h.(int)
	b.destroyed[id]++
	delete(b.live, id)
}

func (b *fakeBackend) Submit(tex *Texture, h Handle, offset, resolution vec.Vec2) error {
	b.submits = append(b.submits, submit{tex, h.(int), offset, resolution})
	return nil
}

// testConfig returns a small configuration for fast tests.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SourceSize = 60
	cfg.Points = 12
	return cfg
}

func newTestRenderer(t *testing.T, b *fakeBackend, cfg Config) *Renderer {
	t.Helper()
	tex, err := NewTexture(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	g, err := tiling.Lookup("p6m")
	if err != nil {
		t.Fatal(err)
	}
	rd, err := NewRenderer(b, g, 800, 600, tex, rng.New(5), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return rd
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Group != "p6m" || cfg.Seed != 1 || cfg.Repeat != 3 || cfg.Speed != 0.2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Wander != wander.DefaultParams {
		t.Errorf("wander params %+v", cfg.Wander)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"size":    func(c *Config) { c.SourceSize = 0 },
		"density": func(c *Config) { c.PixelDensity = -1 },
		"repeat":  func(c *Config) { c.Repeat = 4 },
		"points":  func(c *Config) { c.Points = -1 },
		"margin":  func(c *Config) { c.Margin = 200 },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestTextureDeterministic(t *testing.T) {
	cfg := testConfig()
	a, err := NewTexture(cfg, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTexture(cfg, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Grid.Pix, b.Grid.Pix) || a.Palette != b.Palette {
		t.Error("same seed gave different textures")
	}
	if s := a.Grid.Bounds().Dx(); s != 3*60 {
		t.Errorf("grid size %d, want 180", s)
	}

	c, err := NewTexture(cfg, 43)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Source.Pix, c.Source.Pix) {
		t.Error("different seeds gave the same texture")
	}
}

// TestPaletteIndependent checks that supplying a palette does not change
// the site positions: passing the palette which the seed would produce
// must give the same texture.
func TestPaletteIndependent(t *testing.T) {
	cfg := testConfig()
	derived, err := NewTexture(cfg, 7)
	if err != nil {
		t.Fatal(err)
	}

	pal := palette.FromSeed(7)
	cfg.Palette = &pal
	fixed, err := NewTexture(cfg, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(derived.Source.Pix, fixed.Source.Pix) {
		t.Error("fixed palette changed the texture")
	}

	other, err := palette.Parse("black", "white", "teal")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Palette = &other
	recoloured, err := NewTexture(cfg, 7)
	if err != nil {
		t.Fatal(err)
	}
	if recoloured.Palette != other {
		t.Errorf("palette %v, want %v", recoloured.Palette, other)
	}
}

func TestTexturePeriod(t *testing.T) {
	for _, repeat := range []int{2, 3} {
		cfg := testConfig()
		cfg.Repeat = repeat
		tex, err := NewTexture(cfg, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got := tex.Period(); got != (vec.Vec2{X: 120, Y: 120}) {
			t.Errorf("repeat %d: period %v, want (120, 120)", repeat, got)
		}
	}
}

func TestTextureFromImage(t *testing.T) {
	cfg := testConfig()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	tex, err := TextureFromImage(cfg, img)
	if err != nil {
		t.Fatal(err)
	}
	if !tex.FromImage || tex.SourceWidth() != 60 || tex.SourceHeight() != 60 {
		t.Errorf("source %v", tex.Source.Bounds())
	}
	if tex.Grid.Bounds().Dx() != 180 {
		t.Errorf("grid %v", tex.Grid.Bounds())
	}
}

func TestRendererBuffers(t *testing.T) {
	b := newFakeBackend()
	rd := newTestRenderer(t, b, testConfig())
	if n := b.live[1]; n != 144 {
		t.Errorf("%d instances uploaded, want 144", n)
	}
	if !rd.Animate() {
		t.Error("new renderer not animated")
	}
	off := rd.Offset()
	if off.X < 0 || off.X >= 60 || off.Y < 0 || off.Y >= 60 {
		t.Errorf("initial offset %v outside source", off)
	}

	changed, err := rd.Resize(800, 600)
	if err != nil || changed {
		t.Errorf("Resize to same size: %t, %v", changed, err)
	}
	changed, err = rd.Resize(1024, 768)
	if err != nil || !changed {
		t.Errorf("Resize: %t, %v", changed, err)
	}
	if b.destroyed[1] != 1 || len(b.live) != 1 {
		t.Errorf("old buffers not released: %v %v", b.destroyed, b.live)
	}
	if d := cmp.Diff(rd.Group().Instances(1024, 768), rd.Instances()); d != "" {
		t.Errorf("instances (-want +got):\n%s", d)
	}

	rd.Destroy()
	rd.Destroy()
	if b.destroyed[2] != 1 {
		t.Errorf("buffers destroyed %d times", b.destroyed[2])
	}
}

func TestResizeError(t *testing.T) {
	b := newFakeBackend()
	rd := newTestRenderer(t, b, testConfig())
	b.fail = errors.New("out of memory")
	if _, err := rd.Resize(10, 10); !errors.Is(err, b.fail) {
		t.Errorf("got %v", err)
	}
	if len(b.live) != 1 || b.destroyed[1] != 0 {
		t.Error("buffers released after failed resize")
	}
}

func TestOffsetWrap(t *testing.T) {
	cfg := testConfig()
	cfg.Wander = wander.Params{Damping: 1} // no noise, the heading stays put
	rd := newTestRenderer(t, newFakeBackend(), cfg)
	rd.heading.Reset()

	rangeX := 2 * rd.Texture().SourceWidth()
	rd.offset = vec.Vec2{X: rangeX - 0.05, Y: 10}
	rd.Tick()
	if got := rd.Offset(); math.Abs(got.X-0.15) > 1e-9 || got.Y != 10 {
		t.Errorf("offset %v, want (0.15, 10)", got)
	}

	rd.SetAnimate(false)
	rd.Tick()
	if got := rd.Offset(); math.Abs(got.X-0.15) > 1e-9 {
		t.Errorf("offset moved while not animated: %v", got)
	}
}

func TestOffsetBounds(t *testing.T) {
	rd := newTestRenderer(t, newFakeBackend(), testConfig())
	for range 20000 {
		rd.Tick()
		off := rd.Offset()
		if off.X < 0 || off.X > 120 || off.Y < 0 || off.Y > 120 {
			t.Fatalf("offset %v outside [0, 120]", off)
		}
	}
}

func TestSetOffset(t *testing.T) {
	cfg := testConfig()
	cfg.PixelDensity = 2
	rd := newTestRenderer(t, newFakeBackend(), cfg)

	cases := []struct {
		x, y float64
		want vec.Vec2
	}{
		{10, 20, vec.Vec2{X: 20, Y: 40}},
		{-5, 70, vec.Vec2{X: 0, Y: 120}},
		{60, 0, vec.Vec2{X: 120, Y: 0}},
	}
	for _, c := range cases {
		rd.SetOffset(c.x, c.y)
		if got := rd.Offset(); got != c.want {
			t.Errorf("SetOffset(%g, %g): offset %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSourcePoint(t *testing.T) {
	rd := newTestRenderer(t, newFakeBackend(), testConfig())
	cases := []struct {
		offset vec.Vec2
		want   SourcePoint
	}{
		{vec.Vec2{X: 10, Y: 20}, SourcePoint{X: 10, Y: 20, Left: true, Top: true}},
		{vec.Vec2{X: 70, Y: 20}, SourcePoint{X: 50, Y: 20, Left: false, Top: true}},
		{vec.Vec2{X: 10, Y: 100}, SourcePoint{X: 10, Y: 20, Left: true, Top: false}},
		{vec.Vec2{X: 60, Y: 60}, SourcePoint{X: 60, Y: 60}},
	}
	for _, c := range cases {
		rd.offset = c.offset
		if got := rd.SourcePoint(); got != c.want {
			t.Errorf("offset %v: got %+v, want %+v", c.offset, got, c.want)
		}
	}
}

func TestDraw(t *testing.T) {
	b := newFakeBackend()
	rd := newTestRenderer(t, b, testConfig())
	if err := rd.Draw(); err != nil {
		t.Fatal(err)
	}
	want := submit{
		tex:        rd.Texture(),
		handle:     1,
		offset:     rd.Offset(),
		resolution: vec.Vec2{X: 800, Y: 600},
	}
	if len(b.submits) != 1 || b.submits[0] != want {
		t.Errorf("submits %+v", b.submits)
	}
}

func TestSession(t *testing.T) {
	b := newFakeBackend()
	s, err := NewSession(b, 640, 480, WithConfig(testConfig()), WithGroup("pmm"), WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	if s.Group().Name != "pmm" || s.Seed() != 3 || s.Texture().Seed != 3 {
		t.Errorf("group %s, seed %d", s.Group().Name, s.Seed())
	}

	tex := s.Texture()
	if err := s.SetGroup("p4m"); err != nil {
		t.Fatal(err)
	}
	if s.Texture() != tex || s.Renderer().Group().Name != "p4m" {
		t.Error("SetGroup changed the texture")
	}
	if err := s.SetGroup("p31m"); !errors.Is(err, tiling.ErrUnknownGroup) {
		t.Errorf("unknown group: %v", err)
	}
	if s.Group().Name != "p4m" {
		t.Error("failed SetGroup changed the group")
	}

	seed, err := s.RandomSeed()
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed() != seed || s.Texture().Seed != seed {
		t.Errorf("seed %d, texture seed %d, want %d", s.Seed(), s.Texture().Seed, seed)
	}

	if err := s.Resize(320, 200); err != nil {
		t.Fatal(err)
	}
	if err := s.Tick(); err != nil {
		t.Fatal(err)
	}
	if err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	last := b.submits[len(b.submits)-1]
	if last.resolution != (vec.Vec2{X: 320, Y: 200}) {
		t.Errorf("resolution %v", last.resolution)
	}

	s.Close()
	if len(b.live) != 0 {
		t.Errorf("%d buffers not released", len(b.live))
	}
	for h, n := range b.destroyed {
		if n != 1 {
			t.Errorf("handle %d destroyed %d times", h, n)
		}
	}
}

func TestSessionErrors(t *testing.T) {
	b := newFakeBackend()
	if _, err := NewSession(b, 10, 10, WithGroup("p2")); !errors.Is(err, tiling.ErrUnknownGroup) {
		t.Errorf("unknown group: %v", err)
	}
	if _, err := NewSession(b, 10, 10, WithRepeat(5)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("repeat 5: %v", err)
	}
	if len(b.live) != 0 {
		t.Error("buffers created for failed session")
	}
}

func TestSessionLoadImage(t *testing.T) {
	b := newFakeBackend()
	s, err := NewSession(b, 100, 100, WithConfig(testConfig()))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	s.LoadImage(context.Background(), strings.NewReader("stale"))
	s.LoadImage(context.Background(), &buf)

	deadline := time.Now().Add(5 * time.Second)
	for !s.Texture().FromImage {
		if time.Now().After(deadline) {
			t.Fatal("image was not applied")
		}
		if err := s.Tick(); err != nil {
			t.Fatalf("stale error reported: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	if c := s.Texture().Source.RGBAAt(30, 30); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("texel %v", c)
	}

	s.LoadImage(context.Background(), strings.NewReader("broken"))
	for {
		err := s.Tick()
		if err != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("decode error not reported")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, err := NewTexture(testConfig(), 9); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "texture generated") {
		t.Errorf("log output %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger not silent")
	}
}
