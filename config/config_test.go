/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "console", Settings.Generation.Platform)
	assert.EqualValues(t, 0xDEAD0CAB, Settings.Generation.Seed)
	assert.Equal(t, 16, Settings.Generation.ResultCacheMB)
}

func TestSetupIdempotent(t *testing.T) {
	Setup()
	lvl := LogLevel
	Setup()
	assert.Equal(t, lvl, LogLevel)
}
