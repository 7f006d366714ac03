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

// Command wallpaper shows an animated wallpaper in a window.
//
// Keys:
//
//	1-4  select the wallpaper group (pmm, p4m, p3m1, p6m)
//	R    generate a texture from a random seed
//	C    copy the current seed to the clipboard
//	V    use the seed from the clipboard
//	Esc  hide or show the texture preview
//
// While the mouse is over the preview, the pattern follows the mouse.
// Image files dropped onto the window replace the texture.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"golang.design/x/clipboard"

	"seehuhn.de/go/wallpaper"
	"seehuhn.de/go/wallpaper/backend/gpu"
	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/rng"
)

func main() {
	def := wallpaper.DefaultConfig()
	seed := flag.Uint64("seed", 0, "texture seed, random if 0")
	group := flag.String("group", def.Group, "wallpaper group")
	pal := flag.String("palette", "", "three comma separated colours")
	repeat := flag.Int("repeat", def.Repeat, "mirrored copies per side of the texture (2 or 3)")
	density := flag.Float64("density", 0, "texels per logical unit, the monitor scale if 0")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	wallpaper.SetLogger(logger)

	random := rng.New(uint64(time.Now().UnixNano()))
	if *seed == 0 {
		*seed = random.Uint64()
	}
	if *density <= 0 {
		*density = eb.Monitor().DeviceScaleFactor()
	}

	opts := []wallpaper.Option{
		wallpaper.WithSeed(*seed),
		wallpaper.WithGroup(*group),
		wallpaper.WithRepeat(*repeat),
		wallpaper.WithPixelDensity(*density),
		wallpaper.WithRandom(random),
	}
	if *pal != "" {
		p, err := palette.ParseList(*pal)
		if err != nil {
			logger.Error("invalid palette", "error", err)
			os.Exit(1)
		}
		opts = append(opts, wallpaper.WithPalette(p))
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard not available", "error", err)
		clipboardOK = false
	}

	backend, err := gpu.New()
	if err != nil {
		logger.Error("cannot initialise the GPU backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	w := int(float64(*width) * *density)
	h := int(float64(*height) * *density)
	session, err := wallpaper.NewSession(backend, w, h, opts...)
	if err != nil {
		logger.Error("cannot create session", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	v := &viewer{
		session:   session,
		backend:   backend,
		density:   *density,
		clipboard: clipboardOK,
		log:       logger,

		showPreview: true,
	}

	eb.SetWindowSize(*width, *height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	v.updateTitle()
	if err := eb.RunGame(v); err != nil {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
