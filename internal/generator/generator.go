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

// Package generator implements the three-slot emerald piece selection
// routine: a uniform draw for slot 1, and two distance/collinearity
// weighted draws for slots 2 and 3, all stepping a single LCG.
package generator

import (
	"sort"

	"github.com/speedrun-tools/emeraldgen/assert"
	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/rng"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

// Preset carries the caller-supplied slot values; a slot whose ID is
// emerald.PreGrabbed is treated as already chosen: its Position feeds
// subsequent geometry but no RNG draw is consumed for it.
type Preset struct {
	P1, P2, P3 emerald.Emerald
}

// Result is one completed three-slot generation.
type Result struct {
	P1, P2, P3 emerald.Emerald
	RNG        rng.RNG
}

// Generate runs one three-slot selection against layout, starting from
// r (already advanced by layout.PreCalls draws by the caller) and using
// arith for every geometric computation. layout is consumed by value;
// its Enemy pool is mutated on a private copy only.
func Generate(layout emerald.StageLayout, arith fparith.Arith, r rng.RNG, preset Preset) Result {
	working := layout.Clone()
	out := Result{P1: preset.P1, P2: preset.P2, P3: preset.P3, RNG: r}

	if out.P1.ID != emerald.PreGrabbed {
		out.P1 = selectSlot1(&working, arith, &out.RNG)
	}
	if out.P2.ID != emerald.PreGrabbed {
		out.P2 = selectSlot2(&working, arith, &out.RNG, out.P1)
	}
	if out.P3.ID != emerald.PreGrabbed {
		out.P3 = selectSlot3(&working, arith, &out.RNG, out.P1, out.P2)
	}
	return out
}

// drawFraction computes draw/32768*n in f32; callers truncate it toward
// zero with int(), matching both platforms' non-negative float-to-int
// conversion.
func drawFraction(draw uint16, n int) float32 {
	return (float32(draw) / 32768.0) * float32(n)
}

func selectSlot1(layout *emerald.StageLayout, arith fparith.Arith, r *rng.RNG) emerald.Emerald {
	n := len(layout.Slot1) + len(layout.Enemy)
	assert.Require(n > 0, "slot1 selection requires a non-empty slot1+enemy pool")

	draw := r.Next()
	idx := int(drawFraction(draw, n))

	if idx < len(layout.Slot1) {
		return layout.Slot1[idx]
	}
	return swapRemove(&layout.Enemy, idx-len(layout.Slot1))
}

// swapRemove removes and returns pool[i], moving the last element into
// its place. Order of remaining elements is not preserved.
func swapRemove(pool *[]emerald.Emerald, i int) emerald.Emerald {
	p := *pool
	chosen := p[i]
	last := len(p) - 1
	p[i] = p[last]
	*pool = p[:last]
	return chosen
}

func selectSlot2(layout *emerald.StageLayout, arith fparith.Arith, r *rng.RNG, p1 emerald.Emerald) emerald.Emerald {
	candidates := make([]emerald.Emerald, 0, len(layout.Slot2)+len(layout.Enemy))
	candidates = append(candidates, layout.Slot2...)
	candidates = append(candidates, layout.Enemy...)
	assert.Require(len(candidates) > 0, "slot2 selection requires a non-empty slot2+enemy candidate list")

	sort.SliceStable(candidates, func(i, j int) bool {
		di := vector.Distance(arith, candidates[i].Position, p1.Position)
		dj := vector.Distance(arith, candidates[j].Position, p1.Position)
		return di < dj
	})

	return weightedPick(candidates, r)
}

func selectSlot3(layout *emerald.StageLayout, arith fparith.Arith, r *rng.RNG, p1, p2 emerald.Emerald) emerald.Emerald {
	candidates := append([]emerald.Emerald(nil), layout.Slot3...)
	assert.Require(len(candidates) > 0, "slot3 selection requires a non-empty slot3 pool")

	sort.SliceStable(candidates, func(i, j int) bool {
		mi := collinearity(arith, candidates[i].Position, p1.Position, p2.Position)
		mj := collinearity(arith, candidates[j].Position, p1.Position, p2.Position)
		return mi < mj
	})

	return weightedPick(candidates, r)
}

// collinearity measures how far c is from the line through p1 and p2:
// the magnitude of (c-p2) x (c-p1).
func collinearity(arith fparith.Arith, c, p1, p2 vector.Vector) float32 {
	a := vector.Sub(c, p2)
	b := vector.Sub(c, p1)
	return vector.Magnitude(arith, vector.Cross(arith, a, b))
}

// weightedPick implements the shared slot-2/slot-3 index formula: it
// lands in the candidate list's upper half, more heavily toward its
// very end as draw approaches 0.
func weightedPick(candidates []emerald.Emerald, r *rng.RNG) emerald.Emerald {
	n := len(candidates)
	draw := r.Next()
	idxF := float32(n) - drawFraction(draw, n)/2.0
	idx := int(idxF)
	if idx >= n {
		idx = n - 1
	}
	return candidates[idx]
}
