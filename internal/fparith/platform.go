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

// Package fparith implements the two platform-specific floating-point
// capability sets the piece generator depends on: a single-precision
// square root, a 3-vector cross product and a vector magnitude. The
// desktop variant defers to host IEEE-754; the console variant emulates
// the PowerPC Gekko/Broadway frsqrte/fres hardware instructions bit for
// bit, including their documented quirks.
//
// Both variants are concrete structs. A caller picks one per run and
// passes it as an Arith interface value to generator.Generate; the sort
// comparators in the piece generator make one interface call per
// distance/magnitude evaluation.
package fparith

import "github.com/speedrun-tools/emeraldgen/internal/vector"

// Arith is the capability set the piece generator and the vector helpers
// depend on. DesktopArith and ConsoleArith are the only two
// implementations; the caller chooses one per generation run.
type Arith interface {
	Sqrt(x float32) float32
	Cross(a, b vector.Vector) vector.Vector
	Magnitude(v vector.Vector) float32
}

// Name identifies which platform a generator run targets.
type Name int

const (
	// NameDesktop selects host IEEE-754 arithmetic.
	NameDesktop Name = iota
	// NameConsole selects emulated PowerPC Gekko/Broadway arithmetic.
	NameConsole
)

// String implements fmt.Stringer.
func (n Name) String() string {
	switch n {
	case NameDesktop:
		return "desktop"
	case NameConsole:
		return "console"
	default:
		return "unknown"
	}
}

// For returns the Arith implementation for the named platform, or nil
// and false for an unrecognized name.
func For(n Name) (Arith, bool) {
	switch n {
	case NameDesktop:
		return DesktopArith{}, true
	case NameConsole:
		return ConsoleArith{}, true
	default:
		return nil, false
	}
}

// ParseName maps the config-file/flag spelling ("desktop"/"console") to
// a Name. Used by cmd/emeraldgen, which takes the platform as a string
// from the config file or a flag.
func ParseName(s string) (Name, bool) {
	switch s {
	case "desktop":
		return NameDesktop, true
	case "console":
		return NameConsole, true
	default:
		return 0, false
	}
}
