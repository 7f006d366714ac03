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

package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"

	"seehuhn.de/go/wallpaper"
	"seehuhn.de/go/wallpaper/backend/gpu"
	"seehuhn.de/go/wallpaper/tiling"
)

// previewMargin is the distance of the preview from the window corner, in
// logical units.
const previewMargin = 16

var (
	markerColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0}
	outlineColor = color.NRGBA{A: 0xa0}
)

type viewer struct {
	session   *wallpaper.Session
	backend   *gpu.Backend
	density   float64
	clipboard bool
	log       *slog.Logger

	showPreview bool
	hover       bool
	preview     *eb.Image
	previewOf   *wallpaper.Texture
	white       *eb.Image

	drawErr error
	title   string
}

func (v *viewer) updateTitle() {
	var title string
	if v.session.Texture().FromImage {
		title = fmt.Sprintf("wallpaper %s, image", v.session.Group().Name)
	} else {
		title = fmt.Sprintf("wallpaper %s, seed %d", v.session.Group().Name, v.session.Seed())
	}
	if title != v.title {
		eb.SetWindowTitle(title)
		v.title = title
	}
}

var groupKeys = []eb.Key{eb.Key1, eb.Key2, eb.Key3, eb.Key4}

func (v *viewer) Update() error {
	if v.drawErr != nil {
		return v.drawErr
	}

	names := tiling.Names()
	for i, key := range groupKeys {
		if ebi.IsKeyJustPressed(key) && i < len(names) {
			if err := v.session.SetGroup(names[i]); err != nil {
				return err
			}
		}
	}
	if ebi.IsKeyJustPressed(eb.KeyR) {
		if _, err := v.session.RandomSeed(); err != nil {
			return err
		}
	}
	if ebi.IsKeyJustPressed(eb.KeyC) && v.clipboard {
		seed := strconv.FormatUint(v.session.Seed(), 10)
		clipboard.Write(clipboard.FmtText, []byte(seed))
		v.log.Info("seed copied", "seed", seed)
	}
	if ebi.IsKeyJustPressed(eb.KeyV) && v.clipboard {
		v.pasteSeed()
	}
	if ebi.IsKeyJustPressed(eb.KeyEscape) {
		v.showPreview = !v.showPreview
	}

	v.loadDropped()
	v.updatePointer()

	if err := v.session.Tick(); err != nil {
		// a broken image file should not end the program
		v.log.Error("image not loaded", "error", err)
	}
	v.updateTitle()
	return nil
}

func (v *viewer) pasteSeed() {
	text := strings.TrimSpace(string(clipboard.Read(clipboard.FmtText)))
	seed, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		v.log.Warn("clipboard does not contain a seed", "text", text)
		return
	}
	if err := v.session.Regenerate(seed); err != nil {
		v.log.Error("cannot regenerate texture", "error", err)
	}
}

// loadDropped starts loading the first image file dropped onto the window.
// The file data is read here, since the dropped files are only available
// during the current frame.
func (v *viewer) loadDropped() {
	files := eb.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		v.log.Error("cannot read dropped files", "error", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fd, err := files.Open(e.Name())
		if err != nil {
			v.log.Error("cannot open dropped file", "name", e.Name(), "error", err)
			continue
		}
		data, err := io.ReadAll(fd)
		fd.Close()
		if err != nil {
			v.log.Error("cannot read dropped file", "name", e.Name(), "error", err)
			continue
		}
		v.session.LoadImage(context.Background(), bytes.NewReader(data))
		v.log.Info("loading image", "name", e.Name(), "bytes", len(data))
		return
	}
}

// previewRect returns the area of the texture preview, in device pixels.
func (v *viewer) previewRect() image.Rectangle {
	src := v.session.Texture().Source.Bounds()
	m := int(previewMargin * v.density)
	return image.Rect(m, m, m+src.Dx(), m+src.Dy())
}

func (v *viewer) updatePointer() {
	if !v.showPreview {
		if v.hover {
			v.hover = false
			v.session.Renderer().SetAnimate(true)
		}
		return
	}

	// the cursor position is given in device pixels, see Layout
	p := image.Pt(eb.CursorPosition())
	r := v.previewRect()
	inside := p.In(r)
	rd := v.session.Renderer()
	switch {
	case inside:
		v.hover = true
		rd.SetAnimate(false)
		rd.SetOffset(float64(p.X-r.Min.X)/v.density, float64(p.Y-r.Min.Y)/v.density)
	case v.hover:
		v.hover = false
		rd.SetAnimate(true)
	}
}

func (v *viewer) Draw(screen *eb.Image) {
	v.backend.SetTarget(screen)
	if err := v.session.Draw(); err != nil {
		v.drawErr = err
		return
	}
	if v.showPreview {
		v.drawPreview(screen)
	}
}

func (v *viewer) drawPreview(screen *eb.Image) {
	tex := v.session.Texture()
	if v.previewOf != tex {
		if v.preview != nil {
			v.preview.Deallocate()
		}
		v.preview = eb.NewImageFromImage(tex.Source)
		v.previewOf = tex
	}
	r := v.previewRect()

	op := &eb.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(v.preview, op)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), float32(v.density), outlineColor, true)

	// mark the part of the source at the pan offset
	sp := v.session.Renderer().SourcePoint()
	cx := float32(float64(r.Min.X) + sp.X*v.density)
	cy := float32(float64(r.Min.Y) + sp.Y*v.density)
	radius := float32(6 * v.density)
	switch {
	case sp.Left && sp.Top:
		vector.DrawFilledCircle(screen, cx, cy, radius, markerColor, true)
	case sp.Left:
		// upper half
		v.fillHalfCircle(screen, cx, cy, radius, math.Pi)
	case sp.Top:
		// left half
		v.fillHalfCircle(screen, cx, cy, radius, math.Pi/2)
	}
	vector.StrokeCircle(screen, cx, cy, radius, float32(v.density), markerColor, true)
}

// fillHalfCircle fills the half disc which starts at angle start and
// extends clockwise by π.  Angles are measured on the screen, with y
// pointing down.
func (v *viewer) fillHalfCircle(dst *eb.Image, cx, cy, r float32, start float64) {
	if v.white == nil {
		img := eb.NewImage(3, 3)
		img.Fill(color.White)
		v.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
	}

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, r, float32(start), float32(start+math.Pi), vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(markerColor.R) / 0xff
		vs[i].ColorG = float32(markerColor.G) / 0xff
		vs[i].ColorB = float32(markerColor.B) / 0xff
		vs[i].ColorA = float32(markerColor.A) / 0xff
	}
	dst.DrawTriangles(vs, is, v.white, &eb.DrawTrianglesOptions{AntiAlias: true})
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(float64(outsideWidth) * v.density)
	h := int(float64(outsideHeight) * v.density)
	if err := v.session.Resize(w, h); err != nil {
		v.log.Error("resize failed", "width", w, "height", h, "error", err)
	}
	return w, h
}
