// internal/logger/logger.go

// Package logger builds the stderr diagnostic logger. Package listings
// go to stdout; everything the tool has to say about its own work goes
// through here.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// level is shared by every handler New builds, so verbosity can be
// raised after flag parsing without rebuilding the logger
var level = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

// SetVerbose switches between the default warnings-only level and
// full debug output
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}

// New returns a tint-backed logger writing to w. Color is used only
// when w is an interactive terminal, and timestamps are dropped; a
// one-shot CLI has no use for them.
func New(w io.Writer) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
