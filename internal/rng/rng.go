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

// Package rng implements the 32-bit linear congruential generator used by
// the host game to drive piece selection. It is parametric in its
// multiplier/addend pair so the same recurrence can reproduce either the
// console or the desktop build's sequence from a shared seed.
//
// RNG is a tiny value type wrapping a single word of state, with no
// hidden global state and no I/O.
package rng

// Const is one platform's LCG parameter pair.
type Const struct {
	Mult uint32
	Add  uint32
}

// Desktop holds the x86 build's LCG constants.
var Desktop = Const{Mult: 0x000343FD, Add: 0x00269EC3}

// Console holds the PowerPC build's LCG constants.
var Console = Const{Mult: 0x41C64E6D, Add: 0x00003039}

// Seed is the fixed seed used for all core generation.
const Seed uint32 = 0xDEAD0CAB

// RNG is a 32-bit LCG state word bound to one platform's constants.
type RNG struct {
	state uint32
	c     Const
}

// New creates an RNG at the given seed using the given constants.
func New(c Const, seed uint32) RNG {
	return RNG{state: seed, c: c}
}

// NewDesktop creates an RNG seeded with Seed using the desktop constants.
func NewDesktop() RNG {
	return New(Desktop, Seed)
}

// NewConsole creates an RNG seeded with Seed using the console constants.
func NewConsole() RNG {
	return New(Console, Seed)
}

// State returns the current 32-bit state word.
func (r RNG) State() uint32 {
	return r.state
}

// Next advances the state by one LCG step and returns the 15-bit draw
// taken from bits 16..30 of the new state.
func (r *RNG) Next() uint16 {
	r.state = r.state*r.c.Mult + r.c.Add
	return uint16((r.state >> 16) & 0x7FFF)
}

// Advance calls Next n times, discarding the draws, and returns the
// resulting state. Used to replay a layout's pre_calls before a
// generation begins.
func (r *RNG) Advance(n int) uint32 {
	for i := 0; i < n; i++ {
		r.Next()
	}
	return r.state
}
