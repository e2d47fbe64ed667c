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

// Package emerald holds the piece and stage-layout data model: the
// Emerald value type, its reserved sentinel identifiers, and the
// StageLayout the generator consumes.
package emerald

import "github.com/speedrun-tools/emeraldgen/internal/vector"

// ID is an emerald's 16-bit identifier. The high byte is the "major"
// (pool/category), the low byte the "minor" (index within category).
type ID uint16

const (
	// PreGrabbed marks an output slot as already chosen in a previous
	// life: generation treats the slot's current position as fixed
	// input and consumes no RNG draw for it.
	PreGrabbed ID = 0xFE00

	// Unset is the default/unset piece identifier.
	Unset ID = 0xFF00
)

// Major returns the category byte of the identifier.
func (id ID) Major() byte {
	return byte(id >> 8)
}

// Minor returns the index-within-category byte of the identifier.
func (id ID) Minor() byte {
	return byte(id)
}

// Emerald is a single collectible piece: its identifier and position.
type Emerald struct {
	ID       ID
	Position vector.Vector
}

// IsPreGrabbed reports whether this emerald's identifier is the
// pre-grab sentinel.
func (e Emerald) IsPreGrabbed() bool {
	return e.ID == PreGrabbed
}
