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

package emerald

// StageLayout is the fixed input to one generation run: the three
// output-slot pools, the enemy pool eligible for slots 1 and 2, and the
// number of RNG draws the host game performed before piece generation
// was invoked.
type StageLayout struct {
	Slot1    []Emerald
	Slot2    []Emerald
	Slot3    []Emerald
	Enemy    []Emerald
	PreCalls int
}

// Clone returns a deep-enough copy of the layout: the slices are
// reallocated so a generation run can destructively consume its own
// Enemy pool without mutating the caller's layout.
func (l StageLayout) Clone() StageLayout {
	clone := StageLayout{PreCalls: l.PreCalls}
	clone.Slot1 = append([]Emerald(nil), l.Slot1...)
	clone.Slot2 = append([]Emerald(nil), l.Slot2...)
	clone.Slot3 = append([]Emerald(nil), l.Slot3...)
	clone.Enemy = append([]Emerald(nil), l.Enemy...)
	return clone
}
