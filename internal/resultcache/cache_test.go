/*
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

package resultcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

func TestNewSizing(t *testing.T) {
	c := New(1)
	assert.True(t, c.maxNumberOfEntries > 0)
	assert.Equal(t, int(c.maxNumberOfEntries), cap(c.data))

	c = New(0)
	assert.EqualValues(t, 0, c.maxNumberOfEntries)
}

func TestPutAndProbe(t *testing.T) {
	c := New(1)
	key := Key{Seed: 0xDEAD0CAB, PreCalls: 3, Platform: fparith.NameDesktop}
	p1 := emerald.Emerald{ID: 0x0101, Position: vector.Vector{X: 1}}
	p2 := emerald.Emerald{ID: 0x0201, Position: vector.Vector{X: 2}}
	p3 := emerald.Emerald{ID: 0x0301, Position: vector.Vector{X: 3}}

	_, ok := c.Probe(key)
	assert.False(t, ok)

	c.Put(key, p1, p2, p3, 0x12345678)
	assert.EqualValues(t, 1, c.Len())

	e, ok := c.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, p1.ID, e.P1)
	assert.Equal(t, p2.ID, e.P2)
	assert.Equal(t, p3.ID, e.P3)
	assert.Equal(t, p1.Position, e.P1Pos)
	assert.EqualValues(t, 0x12345678, e.RNGState)
}

func TestProbeMissDistinguishesPlatform(t *testing.T) {
	c := New(1)
	desktopKey := Key{Seed: 1, PreCalls: 0, Platform: fparith.NameDesktop}
	consoleKey := Key{Seed: 1, PreCalls: 0, Platform: fparith.NameConsole}

	p1 := emerald.Emerald{ID: 0x0101}
	c.Put(desktopKey, p1, p1, p1, 0xAAAA)

	// Same seed and pre_calls but a different platform is a different
	// key entirely and must not probe as a hit.
	_, ok := c.Probe(consoleKey)
	assert.False(t, ok)
}

func TestClearResetsEntries(t *testing.T) {
	c := New(1)
	key := Key{Seed: 7, PreCalls: 0, Platform: fparith.NameDesktop}
	p1 := emerald.Emerald{ID: 0x0101}
	c.Put(key, p1, p1, p1, 0)
	assert.EqualValues(t, 1, c.Len())

	c.Clear()
	assert.EqualValues(t, 0, c.Len())
	_, ok := c.Probe(key)
	assert.False(t, ok)
}

func TestCollisionOverwritesUnrelatedEntry(t *testing.T) {
	c := New(1) // thousands of slots; 64 keys may or may not collide
	p1 := emerald.Emerald{ID: 0x0101}

	var keys []Key
	for i := 0; i < 64; i++ {
		keys = append(keys, Key{Seed: uint32(i), PreCalls: 0, Platform: fparith.NameDesktop})
	}
	for _, k := range keys {
		c.Put(k, p1, p1, p1, uint32(k.Seed))
	}

	// Whatever key currently occupies a given slot must probe correctly
	// for that exact key, even if it was overwritten by later puts.
	for _, k := range keys {
		e, ok := c.Probe(k)
		if ok {
			assert.Equal(t, k.Seed, e.RNGState)
		}
	}
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	c := New(1)
	assert.Equal(t, 0, c.Hashfull())
	key := Key{Seed: 1, PreCalls: 0, Platform: fparith.NameDesktop}
	p1 := emerald.Emerald{ID: 0x0101}
	c.Put(key, p1, p1, p1, 0)
	assert.True(t, c.Hashfull() >= 0)

	// Fill at least one permill of the slots; Hashfull must then be > 0.
	for s := uint32(2); c.Len()*1000 < c.maxNumberOfEntries; s++ {
		c.Put(Key{Seed: s, PreCalls: 0, Platform: fparith.NameDesktop}, p1, p1, p1, 0)
	}
	assert.True(t, c.Hashfull() > 0)
}
