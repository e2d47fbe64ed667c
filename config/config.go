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

// Package config holds globally available configuration values for the
// generator: default platform, default seed and log levels. Values are
// either defaults, read from a TOML settings file, or overwritten by
// command line options.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/speedrun-tools/emeraldgen/util"
)

// globally available config values
var (
	// LogLevel defines the general log level set by default or given by the command line arguments
	LogLevel = 2

	// ConfFile is the path to the TOML settings file read by Setup.
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log        logConfiguration
	Generation generationConfiguration
}

// Setup reads ConfFile (if present) and applies its values on top of the
// compiled-in defaults. Safe to call more than once; only the first call
// has effect.
func Setup() {
	if initialized {
		return
	}

	confFile, err := util.ResolveFile(ConfFile)
	if err != nil {
		fmt.Println(err)
	} else if _, err := toml.DecodeFile(confFile, &Settings); err != nil {
		fmt.Println(err)
	}

	setupLogLvl()
	setupGeneration()

	initialized = true
}
