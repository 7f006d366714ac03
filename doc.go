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

// Package wallpaper renders seamless, symmetric wallpaper patterns.
//
// A small square texture is generated from a seed (a coloured Voronoi
// diagram, see package cell) or cut from a user supplied image.  The
// texture is made periodic by mirroring (package seamless), and copies of
// it are placed across the viewport with the symmetry of one of the
// wallpaper groups pmm, p4m, p3m1 or p6m (package tiling).  While the
// pattern is animated, the part of the texture which is shown drifts
// slowly along a randomly wandering heading (package wander).
//
// A [Session] owns the current texture and a [Renderer], which holds the
// per-viewport state.  Drawing is delegated to a [Backend]; the packages
// backend/software and backend/gpu provide a CPU reference implementation
// and an ebiten implementation.
package wallpaper

//go:generate go run ./raster/testcases/genpdf -o raster/testdata/reference
