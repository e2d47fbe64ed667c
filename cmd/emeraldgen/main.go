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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/speedrun-tools/emeraldgen/config"
	"github.com/speedrun-tools/emeraldgen/internal/emerald"
	"github.com/speedrun-tools/emeraldgen/internal/fparith"
	"github.com/speedrun-tools/emeraldgen/internal/generator"
	"github.com/speedrun-tools/emeraldgen/internal/hints"
	"github.com/speedrun-tools/emeraldgen/internal/layoutio"
	"github.com/speedrun-tools/emeraldgen/internal/rng"
	"github.com/speedrun-tools/emeraldgen/internal/seedscan"
	"github.com/speedrun-tools/emeraldgen/logging"
)

var out = message.NewPrinter(language.German)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	// go tool pprof -http=localhost:8080 emeraldgen cpu.pprof

	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	layoutFile := flag.String("layout", "", "path to a JSON stage layout; if empty, uses the built-in synthetic layout")
	platformFlag := flag.String("platform", "", "platform to simulate\n(desktop|console), overrides config default")
	seedFlag := flag.Uint64("seed", 0, "starting seed; 0 uses the configured default")
	scanFrom := flag.Uint64("scanfrom", 0, "if scanto is also set, scans [scanfrom, scanto) instead of a single seed")
	scanTo := flag.Uint64("scanto", 0, "exclusive end of the scan range")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers for -scanfrom/-scanto")
	cpuProfile := flag.Bool("cpuprofile", false, "wrap the run in a CPU profile (writes cpu.pprof to the working directory)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog("generator")

	platformName := config.Settings.Generation.Platform
	if *platformFlag != "" {
		platformName = *platformFlag
	}
	platform, ok := fparith.ParseName(platformName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown platform %q\n", platformName)
		os.Exit(1)
	}
	arith, _ := fparith.For(platform)

	layout := layoutio.NewSyntheticLayout()
	if *layoutFile != "" {
		f, err := os.Open(*layoutFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		layout, err = layoutio.Load(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *scanTo > *scanFrom {
		runScan(layout, platform, uint32(*scanFrom), uint32(*scanTo), *workers)
		return
	}

	seed := config.Settings.Generation.Seed
	if *seedFlag != 0 {
		seed = uint32(*seedFlag)
	}

	var r rng.RNG
	if platform == fparith.NameConsole {
		r = rng.New(rng.Console, seed)
	} else {
		r = rng.New(rng.Desktop, seed)
	}
	r.Advance(layout.PreCalls)

	res := generator.Generate(layout, arith, r, generator.Preset{})
	log.Info(out.Sprintf("seed=0x%08X platform=%s -> p1=%s p2=%s p3=%s rng'=0x%08X",
		seed, platform, hints.Lookup(res.P1.ID), hints.Lookup(res.P2.ID), hints.Lookup(res.P3.ID), res.RNG.State()))
	out.Printf("p1=%s p2=%s p3=%s rng'=0x%08X\n",
		hints.Lookup(res.P1.ID), hints.Lookup(res.P2.ID), hints.Lookup(res.P3.ID), res.RNG.State())
}

// runScan runs the seed scanner over [from, to) and prints every seed
// whose slot-1 piece matches the stage's own slot-1 pool (a stand-in
// predicate; the real front-end would take this from the user).
func runScan(layout emerald.StageLayout, platform fparith.Name, from, to uint32, workers int) {
	slot1IDs := make(map[emerald.ID]bool, len(layout.Slot1))
	for _, e := range layout.Slot1 {
		slot1IDs[e.ID] = true
	}
	pred := func(p1, p2, p3 emerald.Emerald) bool { return slot1IDs[p1.ID] }

	cfg := seedscan.Config{
		Layout:      layout,
		Platform:    platform,
		SeedFrom:    from,
		SeedTo:      to,
		Workers:     workers,
		CacheSizeMB: config.Settings.Generation.ResultCacheMB,
	}
	matches, err := seedscan.Scan(context.Background(), cfg, pred)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, m := range matches {
		out.Printf("seed=0x%08X p1=%s p2=%s p3=%s rng'=0x%08X\n",
			m.Seed, hints.Lookup(m.P1), hints.Lookup(m.P2), hints.Lookup(m.P3), m.RNGState)
	}
	out.Printf("%d matches in [0x%08X, 0x%08X)\n", len(matches), from, to)
}

func printVersionInfo() {
	out.Println("emeraldgen")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
