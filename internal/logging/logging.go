/*
Package logging is the one place the degrade-gracefully diagnostics in
this module go through: configuration clamps and missing-dictionary
warnings log here instead of writing directly to stderr, so none of it
ever needs to propagate as an error to a library caller. Malformed
lexicon lines are skipped without a log entry, and a job submitted to a
closed pool is dropped without one.

It wraps github.com/charmbracelet/log, the structured stderr logger the
bastiangx-wordserve packages in this corpus use for the same shape of
library-internal diagnostics.
*/
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "autocorrect",
})

// Warnf logs a non-fatal, clamp-or-degrade diagnostic.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs a diagnostic for a failure that still leaves the library
// in a safe, empty-result state.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
