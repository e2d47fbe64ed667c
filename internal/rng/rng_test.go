/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterminism(t *testing.T) {
	a := NewDesktop()
	b := NewDesktop()
	for k := 0; k < 10_000; k++ {
		da := a.Next()
		db := b.Next()
		assert.Equal(t, da, db, "draw %d diverged", k)
		assert.Equal(t, a.State(), b.State())
	}
}

func TestRecurrenceMatchesManualStep(t *testing.T) {
	r := NewDesktop()
	state := uint32(Seed)
	for k := 0; k < 1_000; k++ {
		draw := r.Next()
		state = state*Desktop.Mult + Desktop.Add
		wantDraw := uint16((state >> 16) & 0x7FFF)
		assert.Equal(t, wantDraw, draw)
		assert.Equal(t, state, r.State())
	}
}

func TestAdvanceEqualsRepeatedNext(t *testing.T) {
	a := NewConsole()
	b := NewConsole()
	for i := 0; i < 7; i++ {
		a.Next()
	}
	b.Advance(7)
	assert.Equal(t, a.State(), b.State())
}

func TestDrawRange(t *testing.T) {
	r := NewConsole()
	for i := 0; i < 100_000; i++ {
		d := r.Next()
		assert.Less(t, int(d), 32768)
	}
}
