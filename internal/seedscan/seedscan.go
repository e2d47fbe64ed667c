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

// Package seedscan is a worked example of the class of tool a real
// route-planning front-end would wrap: it enumerates a range of
// candidate seeds, runs Generate once per seed against a fixed layout,
// platform and pre_calls, and reports the seeds whose (p1, p2, p3)
// satisfy a caller-supplied predicate. Workers fan out across the
// range with errgroup, each owning its own layout copy, RNG and result
// cache, matching the core's no-shared-mutable-state guarantee.
package seedscan

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/generator"
	"github.com/speedrun-tools/emeraldgen/internal/resultcache"
	"github.com/speedrun-tools/emeraldgen/internal/rng"
	"github.com/speedrun-tools/emeraldgen/logging"
)

var log = logging.GetLog("search")

// Match is one seed that satisfied the scan predicate.
type Match struct {
	Seed       uint32
	P1, P2, P3 emerald.ID
	RNGState   uint32
}

// Predicate reports whether a generation result is of interest.
type Predicate func(p1, p2, p3 emerald.Emerald) bool

// Config parameterizes one scan.
type Config struct {
	Layout      emerald.StageLayout
	Platform    fparith.Name
	SeedFrom    uint32
	SeedTo      uint32 // exclusive
	Workers     int
	CacheSizeMB int
}

// Scan enumerates [SeedFrom, SeedTo) and returns every seed whose
// generation result satisfies pred, sorted by seed for determinism
// regardless of worker count or scheduling order.
func Scan(ctx context.Context, cfg Config, pred Predicate) ([]Match, error) {
	arith, ok := fparith.For(cfg.Platform)
	if !ok {
		return nil, errUnsupportedPlatform(cfg.Platform)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if cfg.SeedTo < cfg.SeedFrom {
		return nil, fmt.Errorf("seedscan: SeedTo 0x%08X is below SeedFrom 0x%08X", cfg.SeedTo, cfg.SeedFrom)
	}
	total := int(cfg.SeedTo - cfg.SeedFrom)
	if total <= 0 {
		return nil, nil
	}
	chunk := (total + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	results := make([][]Match, workers)

	for w := 0; w < workers; w++ {
		w := w
		start := cfg.SeedFrom + uint32(w*chunk)
		end := cfg.SeedFrom + uint32(total)
		if int(start-cfg.SeedFrom) >= total {
			continue
		}
		if w != workers-1 {
			candidateEnd := cfg.SeedFrom + uint32((w+1)*chunk)
			if candidateEnd < end {
				end = candidateEnd
			}
		}
		g.Go(func() error {
			results[w] = scanRange(gctx, cfg.Layout, arith, start, end, cfg.CacheSizeMB, pred)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Match
	for _, r := range results {
		all = append(all, r...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	log.Debugf("seed scan [%d, %d) found %d matches", cfg.SeedFrom, cfg.SeedTo, len(all))
	return all, nil
}

func scanRange(ctx context.Context, layout emerald.StageLayout, arith fparith.Arith, from, to uint32, cacheSizeMB int, pred Predicate) []Match {
	cache := resultcache.New(cacheSizeMB)
	var matches []Match

	for seed := from; seed < to; seed++ {
		select {
		case <-ctx.Done():
			return matches
		default:
		}

		key := resultcache.Key{Seed: seed, PreCalls: layout.PreCalls, Platform: nameOf(arith)}
		if e, ok := cache.Probe(key); ok {
			if pred(emerald.Emerald{ID: e.P1, Position: e.P1Pos}, emerald.Emerald{ID: e.P2, Position: e.P2Pos}, emerald.Emerald{ID: e.P3, Position: e.P3Pos}) {
				matches = append(matches, Match{Seed: seed, P1: e.P1, P2: e.P2, P3: e.P3, RNGState: e.RNGState})
			}
			continue
		}

		r := advanced(seed, arith, layout.PreCalls)
		res := generator.Generate(layout, arith, r, generator.Preset{})
		cache.Put(key, res.P1, res.P2, res.P3, res.RNG.State())

		if pred(res.P1, res.P2, res.P3) {
			matches = append(matches, Match{Seed: seed, P1: res.P1.ID, P2: res.P2.ID, P3: res.P3.ID, RNGState: res.RNG.State()})
		}
	}
	return matches
}

// advanced constructs the RNG for seed under arith's platform and
// advances it by pre_calls draws.
func advanced(seed uint32, arith fparith.Arith, preCalls int) rng.RNG {
	var r rng.RNG
	switch arith.(type) {
	case fparith.ConsoleArith:
		r = rng.New(rng.Console, seed)
	default:
		r = rng.New(rng.Desktop, seed)
	}
	r.Advance(preCalls)
	return r
}

func nameOf(arith fparith.Arith) fparith.Name {
	if _, ok := arith.(fparith.ConsoleArith); ok {
		return fparith.NameConsole
	}
	return fparith.NameDesktop
}

type errUnsupportedPlatform fparith.Name

func (e errUnsupportedPlatform) Error() string {
	return "seedscan: unsupported platform " + fparith.Name(e).String()
}
