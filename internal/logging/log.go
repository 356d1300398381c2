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

// Package logging is a thin helper around "github.com/op/go-logging" so
// every package that wants a logger can get one preconfigured in a
// single line instead of repeating backend/formatter boilerplate.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/eligolfer91/endamat-chess/internal/config"
	"github.com/eligolfer91/endamat-chess/internal/util"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard Logger, preconfigured with an os.Stdout
// backend and the general config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetTestLog returns a Logger for use from _test.go files, leveled by
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, standardFormat))
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetSearchTraceLog returns the search Logger. In addition to stdout it
// also appends to a single file, search.log, under config.Settings.Log.LogPath
// so a full search trace can be inspected after the fact without
// cluttering the engine's regular stdout stream.
func GetSearchTraceLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend1, standardFormat))
	backend1Leveled.SetLevel(logging.Level(config.SearchLogLevel), "")

	folder, err := util.ResolveCreateFolder(config.Settings.Log.LogPath)
	if err != nil {
		searchLog.SetBackend(backend1Leveled)
		return searchLog
	}

	logFile, err := os.OpenFile(filepath.Join(folder, "search.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		searchLog.SetBackend(backend1Leveled)
		return searchLog
	}
	backend2 := logging.NewLogBackend(logFile, "", log.Lmsgprefix)
	backend2Leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend2, standardFormat))
	backend2Leveled.SetLevel(logging.Level(config.SearchLogLevel), "")

	searchLog.SetBackend(logging.SetBackend(backend1Leveled, backend2Leveled))
	return searchLog
}
