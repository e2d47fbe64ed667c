/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package emerald is the public surface of this module: a thin mirror
// over the internal generator, vector and platform-arithmetic packages.
package emerald

import (
	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/generator"
	"github.com/speedrun-tools/emeraldgen/internal/rng"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

// Re-exported types and constants; callers never need to import the
// internal packages directly.
type (
	ID       = emerald.ID
	Emerald  = emerald.Emerald
	Vector   = vector.Vector
	Layout   = emerald.StageLayout
	Platform = fparith.Name
	RNG      = rng.RNG
)

const (
	PreGrabbed = emerald.PreGrabbed
	Unset      = emerald.Unset

	PlatformDesktop = fparith.NameDesktop
	PlatformConsole = fparith.NameConsole
)

const (
	// Seed is the fixed seed used for all core use.
	Seed uint32 = rng.Seed
)

// NewRNG constructs the RNG for the given platform and seed.
func NewRNG(platform Platform, seed uint32) (RNG, bool) {
	switch platform {
	case fparith.NameDesktop:
		return rng.New(rng.Desktop, seed), true
	case fparith.NameConsole:
		return rng.New(rng.Console, seed), true
	default:
		return RNG{}, false
	}
}

// Generate runs one three-slot generation: the exposed entry point
// described for this repository's core, Generate(layout, platform,
// rng) -> (p1, p2, p3, rng'). Pre-grabbed slots are signalled by
// passing that slot's Emerald with ID == PreGrabbed in preset.
func Generate(layout Layout, platform Platform, r RNG, preset [3]Emerald) (p1, p2, p3 Emerald, rngOut RNG, ok bool) {
	arith, ok := fparith.For(platform)
	if !ok {
		return Emerald{}, Emerald{}, Emerald{}, RNG{}, false
	}
	res := generator.Generate(layout, arith, r, generator.Preset{P1: preset[0], P2: preset[1], P3: preset[2]})
	return res.P1, res.P2, res.P3, res.RNG, true
}
