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

package layoutio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
)

const sampleLayout = `{
	"slot1": [{"id": 257, "x": 0, "y": 0, "z": 0}],
	"slot2": [{"id": 1, "x": 1, "y": 0, "z": 0}],
	"slot3": [{"id": 1025, "x": 0, "y": 1, "z": 0}],
	"enemy": [],
	"pre_calls": 3
}`

func TestLoadParsesPoolsAndPreCalls(t *testing.T) {
	layout, err := Load(strings.NewReader(sampleLayout))
	assert.NoError(t, err)
	assert.Equal(t, 3, layout.PreCalls)
	assert.Len(t, layout.Slot1, 1)
	assert.Equal(t, emerald.ID(0x0101), layout.Slot1[0].ID)
	assert.Empty(t, layout.Enemy)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestNewSyntheticLayoutMatchesGoldenIDs(t *testing.T) {
	layout := NewSyntheticLayout()
	assert.Equal(t, emerald.ID(0x0101), layout.Slot1[0].ID)
	assert.Equal(t, emerald.ID(0x0001), layout.Slot2[0].ID)
	assert.Equal(t, emerald.ID(0x0401), layout.Slot3[0].ID)
	assert.Empty(t, layout.Enemy)
}
