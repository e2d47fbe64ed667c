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

package fparith

import (
	"math"

	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

// DesktopArith is the x86 build's arithmetic: host IEEE-754 single
// precision throughout, no emulation.
type DesktopArith struct{}

// Sqrt returns the correctly-rounded single-precision square root.
// Computing in float64 and narrowing back is exact for sqrt: float64
// has enough precision to represent the float32 result before rounding.
func (DesktopArith) Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Cross returns the standard f32 cross product, lanes in source order.
func (DesktopArith) Cross(a, b vector.Vector) vector.Vector {
	return vector.Vector{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the standard f32 vector length.
func (d DesktopArith) Magnitude(v vector.Vector) float32 {
	return d.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
