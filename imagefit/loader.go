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

package imagefit

import (
	"context"
	"image"
	"io"
	"sync/atomic"
)

// Result is the outcome of one Load request.
type Result struct {
	Gen   uint64
	Image image.Image
	Err   error
}

// Loader decodes images in the background.  Only the most recent request
// is current; results of older requests are still delivered, and the
// receiver uses Current to discard them.
type Loader struct {
	gen     atomic.Uint64
	results chan Result
}

// NewLoader returns a loader which buffers up to queue undelivered
// results.
func NewLoader(queue int) *Loader {
	return &Loader{results: make(chan Result, max(queue, 1))}
}

// Load starts decoding the image read from r and returns the generation
// number of the request.  If ctx is cancelled before the result has been
// delivered, the result is dropped.
func (l *Loader) Load(ctx context.Context, r io.Reader) uint64 {
	gen := l.gen.Add(1)
	go func() {
		img, err := Decode(r)
		if err == nil {
			err = ctx.Err()
		}
		select {
		case l.results <- Result{Gen: gen, Image: img, Err: err}:
		case <-ctx.Done():
		}
	}()
	return gen
}

// Results returns the channel on which decoded images are delivered.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Current reports whether gen belongs to the most recent Load call.
func (l *Loader) Current(gen uint64) bool {
	return l.gen.Load() == gen
}
