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

// Package resultcache implements a fixed-size, direct-mapped cache from
// a generation key (seed, pre_calls, platform) to its three-slot
// result. It is the one piece of core-adjacent state that persists
// across generations, used by the seed scanner to avoid recomputing a
// generation it has already seen.
//
// ResultCache is not thread safe and must be synchronized externally
// if shared across goroutines; the seed scanner instead gives each
// worker its own cache and merges matches, sidestepping synchronization
// entirely.
package resultcache

import (
	"math"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
	"github.com/speedrun-tools/emeraldgen/logging"
	"github.com/speedrun-tools/emeraldgen/util"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog("cache")

// EntrySize is the size in bytes of each Entry.
const EntrySize = int(unsafe.Sizeof(Entry{}))

// MaxSizeInMB is the maximal memory usage of a ResultCache.
const MaxSizeInMB = 65_536

// Key identifies one generation run: a seed, the number of RNG draws
// already consumed before generation starts, and the platform.
type Key struct {
	Seed     uint32
	PreCalls int
	Platform fparith.Name
}

// Entry is one cached generation result.
type Entry struct {
	key      Key
	valid    bool
	P1, P2, P3 emerald.ID
	P1Pos, P2Pos, P3Pos vector.Vector
	RNGState uint32
}

// Stats holds statistical data on cache usage.
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// ResultCache is the actual cache object holding data and state.
// Create with New.
type ResultCache struct {
	data               []Entry
	sizeInByte         uint64
	keyMask            uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              Stats
}

// New creates a ResultCache with the given number of bytes as a maximum
// of memory usage. Actual size will be determined by the number of
// entries fitting into this size, which must be a power of 2 for
// efficient hashing/addressing via bit masks.
func New(sizeInMByte int) *ResultCache {
	c := &ResultCache{}
	c.Resize(sizeInMByte)
	return c
}

// Resize resizes the cache. All entries are cleared.
func (c *ResultCache) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		log.Error(out.Sprintf("Requested size for result cache of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	c.sizeInByte = uint64(sizeInMByte) * util.MB
	if c.sizeInByte == 0 {
		c.maxNumberOfEntries = 0
	} else {
		c.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(c.sizeInByte)/float64(EntrySize))))
	}
	c.keyMask = c.maxNumberOfEntries - 1
	c.sizeInByte = c.maxNumberOfEntries * uint64(EntrySize)

	c.data = make([]Entry, c.maxNumberOfEntries)

	log.Info(out.Sprintf("Result cache size %d MByte, capacity %d entries (size=%d Byte) (requested %d MByte)",
		c.sizeInByte/util.MB, c.maxNumberOfEntries, EntrySize, sizeInMByte))
	log.Debug(util.MemStat())
}

// Clear clears all entries of the cache.
func (c *ResultCache) Clear() {
	c.data = make([]Entry, c.maxNumberOfEntries)
	c.numberOfEntries = 0
	c.Stats = Stats{}
}

// Probe looks up key. ok is false on a cache miss (including an
// occupied-by-a-different-key slot).
func (c *ResultCache) Probe(key Key) (Entry, bool) {
	c.Stats.numberOfProbes++
	if c.maxNumberOfEntries == 0 {
		c.Stats.numberOfMisses++
		return Entry{}, false
	}
	e := &c.data[c.hash(key)]
	if e.valid && e.key == key {
		c.Stats.numberOfHits++
		return *e, true
	}
	c.Stats.numberOfMisses++
	return Entry{}, false
}

// Put stores the result for key, overwriting whatever previously
// occupied that slot.
func (c *ResultCache) Put(key Key, p1, p2, p3 emerald.Emerald, rngState uint32) {
	if c.maxNumberOfEntries == 0 {
		return
	}
	c.Stats.numberOfPuts++

	slot := &c.data[c.hash(key)]
	if slot.valid && slot.key != key {
		c.Stats.numberOfCollisions++
		c.Stats.numberOfOverwrites++
	}
	if !slot.valid {
		c.numberOfEntries++
	}

	slot.key = key
	slot.valid = true
	slot.P1, slot.P1Pos = p1.ID, p1.Position
	slot.P2, slot.P2Pos = p2.ID, p2.Position
	slot.P3, slot.P3Pos = p3.ID, p3.Position
	slot.RNGState = rngState
}

// Hashfull returns how full the cache is, in permill.
func (c *ResultCache) Hashfull() int {
	if c.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * c.numberOfEntries) / c.maxNumberOfEntries)
}

// Len returns the number of occupied entries in the cache.
func (c *ResultCache) Len() uint64 {
	return c.numberOfEntries
}

// String returns a string representation of this ResultCache instance.
func (c *ResultCache) String() string {
	return out.Sprintf("ResultCache: size %d MB max entries %d of size %d Bytes entries %d (%d) puts %d "+
		"collisions %d overwrites %d probes %d hits %d (%d) misses %d (%d)",
		c.sizeInByte/util.MB, c.maxNumberOfEntries, EntrySize, c.numberOfEntries, c.Hashfull(),
		c.Stats.numberOfPuts, c.Stats.numberOfCollisions, c.Stats.numberOfOverwrites, c.Stats.numberOfProbes,
		c.Stats.numberOfHits, (c.Stats.numberOfHits*100)/(1+c.Stats.numberOfProbes),
		c.Stats.numberOfMisses, (c.Stats.numberOfMisses*100)/(1+c.Stats.numberOfProbes))
}

// hash generates the internal index for the data array.
func (c *ResultCache) hash(key Key) uint64 {
	h := uint64(key.Seed)
	h = h*31 + uint64(uint32(key.PreCalls))
	h = h*31 + uint64(key.Platform)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h & c.keyMask
}
