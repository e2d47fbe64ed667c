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

package seedscan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/vector"
)

func testLayout() emerald.StageLayout {
	return emerald.StageLayout{
		Slot1: []emerald.Emerald{
			{ID: 0x0101, Position: vector.Vector{X: 0, Y: 0, Z: 0}},
			{ID: 0x0102, Position: vector.Vector{X: 5, Y: 0, Z: 0}},
		},
		Slot2: []emerald.Emerald{
			{ID: 0x0201, Position: vector.Vector{X: 1, Y: 0, Z: 0}},
			{ID: 0x0202, Position: vector.Vector{X: 2, Y: 0, Z: 0}},
		},
		Slot3: []emerald.Emerald{
			{ID: 0x0301, Position: vector.Vector{X: 0, Y: 1, Z: 0}},
			{ID: 0x0302, Position: vector.Vector{X: 0, Y: 2, Z: 0}},
		},
	}
}

func anyPredicate(p1, p2, p3 emerald.Emerald) bool {
	return p1.ID == 0x0101
}

func TestScanSequentialVsParallelAgree(t *testing.T) {
	layout := testLayout()
	cfg := Config{
		Layout:      layout,
		Platform:    fparith.NameDesktop,
		SeedFrom:    0xDEAD0000,
		SeedTo:      0xDEAD0200,
		CacheSizeMB: 1,
	}

	cfg.Workers = 1
	sequential, err := Scan(context.Background(), cfg, anyPredicate)
	assert.NoError(t, err)

	cfg.Workers = 8
	parallel, err := Scan(context.Background(), cfg, anyPredicate)
	assert.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	assert.NotEmpty(t, sequential)
}

func TestScanUnsupportedPlatform(t *testing.T) {
	cfg := Config{
		Layout:   testLayout(),
		Platform: fparith.Name(99),
		SeedFrom: 0,
		SeedTo:   10,
	}
	_, err := Scan(context.Background(), cfg, anyPredicate)
	assert.Error(t, err)
}

func TestScanEmptyRangeReturnsNoMatches(t *testing.T) {
	cfg := Config{
		Layout:   testLayout(),
		Platform: fparith.NameDesktop,
		SeedFrom: 100,
		SeedTo:   100,
	}
	matches, err := Scan(context.Background(), cfg, anyPredicate)
	assert.NoError(t, err)
	assert.Empty(t, matches)
}
