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
	"context"
	"fmt"
	"image"
	"io"

	"seehuhn.de/go/wallpaper/imagefit"
	"seehuhn.de/go/wallpaper/rng"
	"seehuhn.de/go/wallpaper/tiling"
)

// Session ties together the configuration, the current texture and the
// renderer for one viewport.
//
// All methods must be called from the same goroutine, normally the frame
// loop.  Only image decoding runs in the background; decoded images are
// swapped in by Tick.
type Session struct {
	cfg     Config
	backend Backend
	random  *rng.Source
	loader  *imagefit.Loader

	width, height int
	group         *tiling.Group
	tex           *Texture
	renderer      *Renderer
}

// NewSession generates the texture for the configured seed and creates a
// renderer for a w×h viewport.
func NewSession(b Backend, w, h int, opts ...Option) (*Session, error) {
	o := sessionOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := tiling.Lookup(o.cfg.Group)
	if err != nil {
		return nil, err
	}
	if o.random == nil {
		o.random = rng.NewStream(o.cfg.Seed, rng.StreamMotion)
	}

	s := &Session{
		cfg:     o.cfg,
		backend: b,
		random:  o.random,
		loader:  imagefit.NewLoader(4),
		width:   w,
		height:  h,
		group:   g,
	}
	tex, err := NewTexture(s.cfg, s.cfg.Seed)
	if err != nil {
		return nil, err
	}
	if err := s.swap(tex, g); err != nil {
		return nil, err
	}
	return s, nil
}

// swap replaces texture and group.  The old renderer is kept if the new
// one cannot be created.
func (s *Session) swap(tex *Texture, g *tiling.Group) error {
	rd, err := NewRenderer(s.backend, g, s.width, s.height, tex, s.random, s.cfg)
	if err != nil {
		return err
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	s.renderer = rd
	s.tex = tex
	s.group = g
	return nil
}

// SetGroup switches to the wallpaper group with the given name.
// The texture is kept.
func (s *Session) SetGroup(name string) error {
	g, err := tiling.Lookup(name)
	if err != nil {
		return err
	}
	if err := s.swap(s.tex, g); err != nil {
		return err
	}
	s.cfg.Group = g.Name
	Logger().Info("group changed", "group", g.Name)
	return nil
}

// Regenerate replaces the texture by the one generated from seed.
func (s *Session) Regenerate(seed uint64) error {
	tex, err := NewTexture(s.cfg, seed)
	if err != nil {
		return err
	}
	if err := s.swap(tex, s.group); err != nil {
		return err
	}
	s.cfg.Seed = seed
	return nil
}

// RandomSeed regenerates the texture from a new random seed and returns
// the seed.
func (s *Session) RandomSeed() (uint64, error) {
	seed := s.random.Uint64()
	return seed, s.Regenerate(seed)
}

// ReplaceImage replaces the texture by one cut from img.
func (s *Session) ReplaceImage(img image.Image) error {
	tex, err := TextureFromImage(s.cfg, img)
	if err != nil {
		return err
	}
	return s.swap(tex, s.group)
}

// LoadImage starts decoding an image in the background.  Once decoding
// has finished, the next call to Tick replaces the texture.  If several
// images are loaded, only the most recent one is used.
// The returned value identifies the request.
func (s *Session) LoadImage(ctx context.Context, r io.Reader) uint64 {
	return s.loader.Load(ctx, r)
}

// Tick applies finished image loads and advances the animation by one
// frame.  Decoding errors of the most recent load request are returned.
func (s *Session) Tick() error {
	var loadErr error
poll:
	for {
		select {
		case res := <-s.loader.Results():
			if !s.loader.Current(res.Gen) {
				Logger().Warn("stale image result ignored", "request", res.Gen)
				continue
			}
			if res.Err != nil {
				loadErr = fmt.Errorf("wallpaper: load image: %w", res.Err)
				continue
			}
			if err := s.ReplaceImage(res.Image); err != nil {
				loadErr = err
			}
		default:
			break poll
		}
	}

	s.renderer.Tick()
	return loadErr
}

// Draw draws the current frame.
func (s *Session) Draw() error {
	return s.renderer.Draw()
}

// Resize adapts the session to a new viewport size.
func (s *Session) Resize(w, h int) error {
	if _, err := s.renderer.Resize(w, h); err != nil {
		return err
	}
	s.width, s.height = w, h
	return nil
}

// Close releases the backend buffers.
func (s *Session) Close() {
	s.renderer.Destroy()
}

// Renderer returns the current renderer.  The renderer is replaced
// whenever texture or group change.
func (s *Session) Renderer() *Renderer {
	return s.renderer
}

// Texture returns the current texture.
func (s *Session) Texture() *Texture {
	return s.tex
}

// Group returns the current wallpaper group.
func (s *Session) Group() *tiling.Group {
	return s.group
}

// Seed returns the seed of the most recently generated texture.
func (s *Session) Seed() uint64 {
	return s.cfg.Seed
}

// Config returns the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}
