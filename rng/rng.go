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

// Package rng provides the deterministic random source used for all
// procedural generation.
//
// A Source is fully determined by its seed and stream number: two sources
// created with the same arguments produce the same sequence of values,
// regardless of where they are used.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// Streams used by the generators.  Distinct streams of one seed are
// statistically independent.
const (
	StreamPalette uint64 = 1
	StreamPoints  uint64 = 2
	StreamMotion  uint64 = 3
)

// goldenGamma is the splitmix64 increment.
const goldenGamma = 0x9e3779b97f4a7c15

// Source is a seeded pseudo-random number generator.
//
// A Source is not safe for concurrent use.
type Source struct {
	r *rand.Rand
}

// New returns a Source for stream 0 of the given seed.
func New(seed uint64) *Source {
	return NewStream(seed, 0)
}

// NewStream returns a Source for the given seed and stream number.
func NewStream(seed, stream uint64) *Source {
	s1 := mix(seed + goldenGamma*(2*stream+1))
	s2 := mix(seed ^ mix(stream+goldenGamma))
	return &Source{r: rand.New(rand.NewPCG(s1, s2))}
}

// Uint64 returns the next 64-bit value of the sequence.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Range returns an integer in the half-open interval [min, max).
// It panics if max <= min.
func (s *Source) Range(min, max int) int {
	if max <= min {
		panic(fmt.Sprintf("rng: empty range [%d, %d)", min, max))
	}
	return min + s.r.IntN(max-min)
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// mix is the splitmix64 finalizer.  It spreads nearby seeds across the
// whole state space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
