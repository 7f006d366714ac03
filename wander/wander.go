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

// Package wander produces a smoothly changing random heading.
//
// The angular velocity follows a damped random walk with bounded speed,
// so that the heading drifts slowly without sudden turns.
package wander

import (
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/wallpaper/rng"
)

// Params describe the random walk of the angular velocity.
type Params struct {
	Damping     float64 // velocity retained per tick, in (0, 1]
	Noise       float64 // maximal random velocity change per tick
	MaxVelocity float64 // bound for |velocity|, in radians per tick
}

// DefaultParams gives a slow, smooth drift.
var DefaultParams = Params{
	Damping:     0.999,
	Noise:       0.0002,
	MaxVelocity: 0.02,
}

// Generator holds the state of one wandering heading.
// A Generator is not safe for concurrent use.
type Generator struct {
	r     *rng.Source
	p     Params
	angle float64
	v     float64
}

// New returns a generator with a random initial heading in [0, 2π) and
// velocity zero.
func New(r *rng.Source, p Params) *Generator {
	return &Generator{r: r, p: p, angle: r.Uniform(0, 2*math.Pi)}
}

// Next advances the walk by one tick and returns the new heading in
// [0, 2π).
func (g *Generator) Next() float64 {
	noise := g.r.Uniform(-g.p.Noise, g.p.Noise)
	g.v = clamp(g.p.Damping*g.v+noise, -g.p.MaxVelocity, g.p.MaxVelocity)

	a := math.Mod(g.angle+g.v, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	g.angle = a
	return a
}

// Reset sets angle and velocity back to zero.
func (g *Generator) Reset() {
	g.angle = 0
	g.v = 0
}

// Angle returns the current heading.
func (g *Generator) Angle() float64 {
	return g.angle
}

// Velocity returns the current angular velocity.
func (g *Generator) Velocity() float64 {
	return g.v
}

func clamp[N constraints.Integer | constraints.Float](x, lo, hi N) N {
	return max(lo, min(x, hi))
}
