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

// Package layoutio is a minimal stand-in for a full game-data parser: a
// small JSON loader for a StageLayout, and a constructor for the
// synthetic golden-test layout that layouts A and B share. The core generator never reinterprets a piece identifier -
// classifying pieces into pools is entirely this collaborator's job.
package layoutio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

type jsonEmerald struct {
	ID uint16  `json:"id"`
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
	Z  float32 `json:"z"`
}

type jsonLayout struct {
	Slot1    []jsonEmerald `json:"slot1"`
	Slot2    []jsonEmerald `json:"slot2"`
	Slot3    []jsonEmerald `json:"slot3"`
	Enemy    []jsonEmerald `json:"enemy"`
	PreCalls int           `json:"pre_calls"`
}

func toEmeralds(in []jsonEmerald) []emerald.Emerald {
	out := make([]emerald.Emerald, len(in))
	for i, e := range in {
		out[i] = emerald.Emerald{
			ID:       emerald.ID(e.ID),
			Position: vector.Vector{X: e.X, Y: e.Y, Z: e.Z},
		}
	}
	return out
}

// Load parses a StageLayout from r. The JSON document has four piece
// arrays ("slot1", "slot2", "slot3", "enemy") and a "pre_calls" integer.
func Load(r io.Reader) (emerald.StageLayout, error) {
	var jl jsonLayout
	if err := json.NewDecoder(r).Decode(&jl); err != nil {
		return emerald.StageLayout{}, fmt.Errorf("layoutio: decode layout: %w", err)
	}
	return emerald.StageLayout{
		Slot1:    toEmeralds(jl.Slot1),
		Slot2:    toEmeralds(jl.Slot2),
		Slot3:    toEmeralds(jl.Slot3),
		Enemy:    toEmeralds(jl.Enemy),
		PreCalls: jl.PreCalls,
	}, nil
}

// NewSyntheticLayout builds one of the two trivial golden-test layouts
// described in this repository's test suite: a single candidate per
// slot and an empty enemy pool, so selection is deterministic
// regardless of the RNG draw or platform. Both "A" and "B" return the
// identical layout; the distinction between them is which platform the
// caller runs it against.
func NewSyntheticLayout() emerald.StageLayout {
	return emerald.StageLayout{
		Slot1: []emerald.Emerald{{ID: 0x0101, Position: vector.Vector{X: 0, Y: 0, Z: 0}}},
		Slot2: []emerald.Emerald{{ID: 0x0001, Position: vector.Vector{X: 1, Y: 0, Z: 0}}},
		Slot3: []emerald.Emerald{{ID: 0x0401, Position: vector.Vector{X: 0, Y: 1, Z: 0}}},
	}
}
