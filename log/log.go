// Package log is the build's logging surface. It is a thin wrapper around
// jwalterweatherman so call sites stay as short as log.Process("step", "msg").
package log

import (
	"os"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
	"go.uber.org/atomic"
)

var warnings = atomic.NewInt64(0)

// Init sets the stdout threshold. Interactive runs get the step-by-step
// process log; non-interactive runs only warnings and errors.
func Init() {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		jww.SetStdoutThreshold(jww.LevelInfo)
	} else {
		jww.SetStdoutThreshold(jww.LevelWarn)
	}
}

// Process logs one step of the build pipeline.
func Process(step, msg string) {
	jww.INFO.Printf("%s: %s", step, msg)
}

// Warnf logs a recoverable per-item problem and counts it.
func Warnf(format string, args ...any) {
	warnings.Inc()
	jww.WARN.Printf(format, args...)
}

// Errorf logs a fatal, run-aborting problem.
func Errorf(format string, args ...any) {
	jww.ERROR.Printf(format, args...)
}

// Warnings returns the number of warnings logged so far in this run.
func Warnings() int64 {
	return warnings.Load()
}
