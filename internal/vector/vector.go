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

// Package vector implements the 3-component single-precision position
// type shared by every emerald, and the geometry ops (sub, cross,
// magnitude, distance) the piece generator needs. Cross and magnitude
// are dispatched to an fparith.Arith implementation since the console
// build computes them with emulated PowerPC FP semantics that differ
// bit-for-bit from the desktop build's host arithmetic.
package vector

// Arith is the subset of fparith.Arith the vector package depends on.
// Declared locally (rather than importing fparith directly) so this
// package has no dependency on which platform variants exist - it only
// needs something that can take a square root, a cross product and a
// magnitude.
type Arith interface {
	Sqrt(x float32) float32
	Cross(a, b Vector) Vector
	Magnitude(v Vector) float32
}

// Vector is a three-component single-precision position. Value type,
// freely copied; no identity.
type Vector struct {
	X, Y, Z float32
}

// Sub returns a-b, componentwise, in host f32 arithmetic on both
// platforms - this op never differs between platforms.
func Sub(a, b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Cross returns the platform's cross product of a and b.
func Cross(ar Arith, a, b Vector) Vector {
	return ar.Cross(a, b)
}

// Magnitude returns the platform's magnitude (vector length) of v.
func Magnitude(ar Arith, v Vector) float32 {
	return ar.Magnitude(v)
}

// distanceCutoff is the squared-distance threshold below which distance
// snaps to zero, replicating a game-side coincident-point check. Must
// not be removed even though it is mathematically redundant once sqrt
// is applied - the game itself skips the sqrt call entirely below this
// threshold, and the platform-specific sqrt would not necessarily
// return exactly 0 for a tiny nonzero input.
const distanceCutoff = 0.025

// Distance computes ||a-b|| with the squared-distance term always
// evaluated in host f32 arithmetic on both platforms (the game computes
// dist^2 in scalar code, not through the platform's vector FMA chain),
// then dispatches the final sqrt to the platform.
func Distance(ar Arith, a, b Vector) float32 {
	d := Sub(a, b)
	sq := d.X*d.X + d.Y*d.Y + d.Z*d.Z
	if sq < distanceCutoff {
		return 0.0
	}
	return ar.Sqrt(sq)
}
