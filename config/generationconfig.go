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

package config

// generationConfiguration holds the defaults for a piece generation run:
// which platform to simulate and the fixed seed the game reseeds from.
type generationConfiguration struct {
	Platform     string // "desktop" or "console"
	Seed         uint32
	ResultCacheMB int
}

// sets defaults which might be overwritten by the config file
func init() {
	Settings.Generation.Platform = "console"
	Settings.Generation.Seed = 0xDEAD0CAB
	Settings.Generation.ResultCacheMB = 16
}

func setupGeneration() {
	if Settings.Generation.Seed == 0 {
		Settings.Generation.Seed = 0xDEAD0CAB
	}
	if Settings.Generation.ResultCacheMB <= 0 {
		Settings.Generation.ResultCacheMB = 16
	}
}
