// Package telemetry centralizes structured logging for the cmd/petrinet
// CLI behind a single thin seam, built on github.com/joeycumines/logiface
// and its stumpy JSON writer backend. The CLI feeds it to the symbolic and
// ilp packages through their Logger interfaces; the other packages do not
// log.
package telemetry

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the concrete logger type threaded through this module: a
// logiface.Logger specialized on stumpy's JSON event type.
type Logger = logiface.Logger[*stumpy.Event]

// New returns a Logger that writes newline-delimited JSON to w.
func New(w io.Writer) *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
	)
}

// Stderr returns a Logger writing to os.Stderr, the default destination
// for the cmd/petrinet CLI.
func Stderr() *Logger { return New(os.Stderr) }

// Noop returns a Logger with logging disabled entirely (logiface.LevelDisabled),
// for library callers and tests that want the telemetry seam present but
// silent.
func Noop() *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(io.Discard)),
		logiface.WithLevel[*stumpy.Event](logiface.LevelDisabled),
	)
}
