// Package logging builds the diagnostic logger written to stderr.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every diagnostic line.
const Prefix = "pb"

// New returns a logger writing to w at the named level. Unknown levels fall
// back to warn.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
