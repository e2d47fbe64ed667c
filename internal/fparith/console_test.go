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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrsqrteGoldenVectors(t *testing.T) {
	cases := []struct {
		in, out uint64
	}{
		{0x3ea8792d45540000, 0x40924c1090000000},
		{0x3f00293b64599c80, 0x406683d560000000},
		{0x0000000000000000, 0x7ff0000000000000},
		{0x3ef4d01b63e44000, 0x406c0ed800000000},
		{0x3e6b34191b000000, 0x40b15a8c80000000},
	}
	for _, c := range cases {
		got := math.Float64bits(frsqrte(math.Float64frombits(c.in)))
		assert.Equal(t, c.out, got, "frsqrte(0x%016x)", c.in)
	}
}

func TestFresGoldenVectors(t *testing.T) {
	cases := []struct {
		in, out uint64
	}{
		{0x40b15a8c80000000, 0x3f2d8186c0000000},
		{0x7ff0000000000000, 0x0000000000000000},
		{0x408103dcfc000000, 0x3f5e16cc20000000},
		{0x4059e10cb8000000, 0x3f83c8ea80000000},
		{0x4054ca52ec000000, 0x3f88a0eee0000000},
	}
	for _, c := range cases {
		got := math.Float64bits(fres(math.Float64frombits(c.in)))
		assert.Equal(t, c.out, got, "fres(0x%016x)", c.in)
	}
}

func TestConsoleSqrtComposesFrsqrteAndFres(t *testing.T) {
	c := ConsoleArith{}
	got := c.Sqrt(4.0)
	assert.InDelta(t, 2.0, got, 0.02)
}
