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

// Package hints is a minimal stand-in for a full hint-text table: it
// maps an emerald's major/minor identifier to a short human-readable
// string, exercised by cmd/emeraldgen's result printer.
package hints

import (
	"fmt"

	"github.com/speedrun-tools/emeraldgen/internal/emerald"
)

// named holds hand-picked hints for a handful of well-known pieces,
// keyed by the raw 16-bit identifier.
var named = map[emerald.ID]string{
	emerald.PreGrabbed: "pre-grabbed",
	emerald.Unset:      "unset",
}

// Lookup returns a short human-readable hint for id: a named hint if
// one is registered, otherwise a generic "slotN/NN"-style label derived
// from the major/minor split.
func Lookup(id emerald.ID) string {
	if h, ok := named[id]; ok {
		return h
	}
	return genericHint(id)
}

func genericHint(id emerald.ID) string {
	label, ok := majorLabels[id.Major()]
	if !ok {
		label = "unknown"
	}
	return fmt.Sprintf("%s/%02x", label, id.Minor())
}

var majorLabels = map[byte]string{
	0x00: "slot2",
	0x01: "slot1",
	0x02: "slot2",
	0x03: "slot3",
	0x04: "slot3",
}
