//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command perftbench drives perft and fixed-time search benchmarks from
// the command line, with an optional CPU profile of the run.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eligolfer91/endamat-chess/internal/config"
	"github.com/eligolfer91/endamat-chess/internal/logging"
	"github.com/eligolfer91/endamat-chess/internal/movegen"
	"github.com/eligolfer91/endamat-chess/internal/position"
	"github.com/eligolfer91/endamat-chess/internal/search"
	"github.com/eligolfer91/endamat-chess/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "fen for perft and search benchmarks")
	perftDepth := flag.Int("perft", 0, "run perft on -fen up to the given depth, printing each depth's node count")
	searchTime := flag.Int("searchtime", 0, "run a fixed-time search on -fen for the given number of milliseconds")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
	}
	if *searchTime > 0 {
		runSearch(*fen, time.Duration(*searchTime)*time.Millisecond)
	}
	if *perftDepth == 0 && *searchTime == 0 {
		flag.Usage()
	}
}

func runPerft(fen string, maxDepth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Println(err)
		return
	}
	out.Println("Perft on", fen)
	for depth := 1; depth <= maxDepth; depth++ {
		result := movegen.Perft(p, depth)
		out.Printf("Depth %2d: nodes %d captures %d checks %d time %s nps %d\n",
			depth, result.Nodes, result.Captures, result.Checks, result.Duration, result.NodesPerSec)
	}
}

func runSearch(fen string, moveTime time.Duration) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Println(err)
		return
	}
	s := search.NewSearch()
	sl := search.NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = moveTime
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	out.Println(result.String())
	out.Println("NPS:", util.Nps(s.NodesVisited(), result.SearchTime))
}
