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

// ConsoleArith emulates the PowerPC Gekko/Broadway FP semantics the
// console binary runs on: frsqrte/fres-based square roots, single-rounded
// fused multiply-add for cross, and a single-rounded x*x term in
// magnitude.
type ConsoleArith struct{}

const (
	signMask64 = 0x8000000000000000
	expMask64  = 0x7FF0000000000000 // exponent field, kept in its bit position
	mantMask64 = 0x000FFFFFFFFFFFFF
	expLsb64   = 1 << 52
)

// frsqrte emulates the PowerPC frsqrte instruction: an estimate of
// 1/sqrt(v), returned as raw float64 bits.
func frsqrte(v float64) float64 {
	bits := math.Float64bits(v)
	sign := bits & signMask64
	exp := bits & expMask64
	mant := bits & mantMask64

	switch {
	case mant == 0 && exp == 0:
		// +-0 -> +-Inf
		return math.Float64frombits(sign | expMask64)
	case exp == expMask64 && mant == 0:
		if sign == 0 {
			return 0.0
		}
		return math.NaN()
	case exp == expMask64 && mant != 0:
		return v + 0.0
	case sign != 0:
		return math.NaN()
	}

	resultExp := (uint64(0x3FF)<<52 - (exp-uint64(0x3FE)<<52)/2) & expMask64

	index := ((exp&expLsb64)^expLsb64 | mant) >> 37
	seg := frsqrteTable[index/2048]
	mantOut := (seg.base - seg.dec*(index%2048)) << 26

	return math.Float64frombits(sign | resultExp | mantOut)
}

// fres emulates the PowerPC fres instruction: an estimate of 1/v,
// returned as raw float64 bits.
func fres(v float64) float64 {
	bits := math.Float64bits(v)
	sign := bits & signMask64
	exp := bits & expMask64
	mant := bits & mantMask64

	switch {
	case exp == 0:
		// subnormal or zero -> +-Inf
		return math.Float64frombits(sign | expMask64)
	case exp < uint64(895)<<52:
		// quirk: no sign correction, replicated from the original binary
		return math.Float64frombits(0x7FEFFFFFFFFFFFFF)
	case exp >= uint64(1149)<<52:
		return 0.0
	}

	newExp := uint64(0x7FD)<<52 - exp
	m := mant >> 37
	seg := fresTable[m/1024]
	interp := (seg.base - (seg.dec*(m%1024)+1)/2) << 29

	return math.Float64frombits(sign | newExp | interp)
}

// Sqrt emulates the console's fres(frsqrte(x)) reciprocal-of-reciprocal
// square root sequence, computed in float64 and narrowed to float32.
func (ConsoleArith) Sqrt(x float32) float32 {
	return float32(fres(frsqrte(float64(x))))
}

// fmuls emulates a PowerPC "floating multiply single": the product is
// formed at double precision and rounded once to single.
func fmuls(a, c float32) float32 {
	return float32(float64(a) * float64(c))
}

// fmadds emulates a PowerPC "floating multiply-add single": a*c+b is
// formed at double precision and rounded once to single.
func fmadds(a, c, b float32) float32 {
	return float32(float64(a)*float64(c) + float64(b))
}

// Cross emulates the console's single-rounded FMA cross product.
func (ConsoleArith) Cross(a, b vector.Vector) vector.Vector {
	return vector.Vector{
		X: fmadds(a.Y, b.Z, -fmuls(a.Z, b.Y)),
		Y: fmadds(a.Z, b.X, -fmuls(a.X, b.Z)),
		Z: fmadds(a.X, b.Y, -fmuls(a.Y, b.X)),
	}
}

// Magnitude emulates the console's accumulation order: the x term goes
// through fmuls (single-rounded, then widened back to f64 for the sum),
// the y and z terms are plain f64 multiplies. This asymmetry is
// deliberate and must be preserved.
func (c ConsoleArith) Magnitude(v vector.Vector) float32 {
	sum := float64(fmuls(v.X, v.X)) + float64(v.Y)*float64(v.Y) + float64(v.Z)*float64(v.Z)
	return float32(fres(frsqrte(sum)))
}
