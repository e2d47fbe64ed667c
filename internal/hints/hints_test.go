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

package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
)

func TestLookupNamedSentinels(t *testing.T) {
	assert.Equal(t, "pre-grabbed", Lookup(emerald.PreGrabbed))
	assert.Equal(t, "unset", Lookup(emerald.Unset))
}

func TestLookupGenericFallback(t *testing.T) {
	assert.Equal(t, "slot1/01", Lookup(emerald.ID(0x0101)))
	assert.Equal(t, "slot3/0a", Lookup(emerald.ID(0x040a)))
	assert.Equal(t, "unknown/05", Lookup(emerald.ID(0xFA05)))
}
