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

// Command wallgen renders a single wallpaper frame to a PNG file.
//
// Usage:
//
//	wallgen [flags] -o out.png
//
// Without -o, the image is written to standard output, unless standard
// output is a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/wallpaper"
	"seehuhn.de/go/wallpaper/backend/software"
	"seehuhn.de/go/wallpaper/imagefit"
	"seehuhn.de/go/wallpaper/palette"
	"seehuhn.de/go/wallpaper/tiling"
)

func main() {
	def := wallpaper.DefaultConfig()
	seed := flag.Uint64("seed", def.Seed, "texture seed")
	group := flag.String("group", def.Group, "wallpaper group ("+strings.Join(tiling.Names(), ", ")+")")
	width := flag.Int("width", 1280, "image width in pixels")
	height := flag.Int("height", 720, "image height in pixels")
	pal := flag.String("palette", "", "three comma separated colours, derived from the seed if empty")
	repeat := flag.Int("repeat", def.Repeat, "mirrored copies per side of the texture (2 or 3)")
	density := flag.Float64("density", def.PixelDensity, "texels per logical unit")
	ticks := flag.Int("ticks", 0, "animation steps before the frame is drawn")
	imagePath := flag.String("image", "", "use this image instead of a generated texture")
	out := flag.String("o", "", "output file name")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	wallpaper.SetLogger(logger)

	opts := []wallpaper.Option{
		wallpaper.WithSeed(*seed),
		wallpaper.WithGroup(*group),
		wallpaper.WithRepeat(*repeat),
		wallpaper.WithPixelDensity(*density),
	}
	if *pal != "" {
		p, err := palette.ParseList(*pal)
		if err != nil {
			fatal(err)
		}
		opts = append(opts, wallpaper.WithPalette(p))
	}

	err := run(*width, *height, *ticks, *imagePath, *out, opts)
	if err != nil {
		fatal(err)
	}
}

func run(width, height, ticks int, imagePath, out string, opts []wallpaper.Option) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	var w io.Writer
	if out == "" || out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PNG data to a terminal, use -o")
		}
		w = os.Stdout
	}

	b := software.New()
	s, err := wallpaper.NewSession(b, width, height, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	if imagePath != "" {
		fd, err := os.Open(imagePath)
		if err != nil {
			return err
		}
		img, err := imagefit.Decode(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", imagePath, err)
		}
		if err := s.ReplaceImage(img); err != nil {
			return err
		}
	}

	for range ticks {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	if err := s.Draw(); err != nil {
		return err
	}

	if w != nil {
		return png.Encode(w, b.Frame())
	}
	fd, err := os.Create(out)
	if err != nil {
		return err
	}
	err = png.Encode(fd, b.Frame())
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "wallgen:", err)
	os.Exit(1)
}
