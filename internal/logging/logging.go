// seehuhn.de/go/sunburst - procedurally generated ray patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"seehuhn.de/go/sunburst/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level converts a level name to a zerolog level. Unknown names map to
// the info level.
func Level(name string) (zerolog.Level, bool) {
	l, ok := logLevelMatches[strings.ToUpper(name)]
	if !ok {
		return zerolog.InfoLevel, false
	}
	return l, true
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) && runtime.GOOS != "windows"
}

// Setup configures the global logger from the log section of the
// configuration. Log messages go to stderr, so that commands can write
// their results to stdout. If a log file is configured, the returned
// function closes it; otherwise the returned function is nil.
func Setup(cfg config.Log) (func(), error) {
	if isTerminalAttached() {
		log.Logger = log.Output(consoleWriter(os.Stderr))
	} else {
		log.Logger = log.Output(os.Stderr)
	}
	level, _ := Level(cfg.Level)
	zerolog.SetGlobalLevel(level)

	if cfg.File == "" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.Logger = log.Output(f)
	return func() {
		_ = f.Close()
	}, nil
}
