// Package diag reports non-fatal problems found while loading data.
//
// A diagnostic never stops a load: the caller substitutes a safe default and
// keeps going. Reporters only decide where the message ends up.
package diag

import (
	"fmt"
	"log"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
)

// Reporter receives non-fatal diagnostics.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

// Report calls f(err).
func (f ReporterFunc) Report(err error) { f(err) }

// Logger reports diagnostics through a standard logger.
type Logger struct {
	Logger *log.Logger
}

// Report writes one line per diagnostic, prefixed with its severity and code.
func (l Logger) Report(err error) {
	if err == nil {
		return
	}
	code := apperrors.GetCode(err)
	severity := "warning"
	if code.Fatal() {
		severity = "error"
	}
	line := fmt.Sprintf("%s [%s] %v", severity, code, err)
	if l.Logger == nil {
		log.Print(line)
		return
	}
	l.Logger.Print(line)
}

// Default returns a reporter writing to the standard logger.
func Default() Reporter {
	return Logger{}
}

// Or returns r, or Default when r is nil.
func Or(r Reporter) Reporter {
	if r == nil {
		return Default()
	}
	return r
}

// Recorder keeps every reported diagnostic in memory.
type Recorder struct {
	Errors []error
}

// Report appends err.
func (r *Recorder) Report(err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, err)
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	return len(r.Errors)
}

// Codes returns the codes of the recorded diagnostics in report order.
func (r *Recorder) Codes() []apperrors.Code {
	codes := make([]apperrors.Code, 0, len(r.Errors))
	for _, err := range r.Errors {
		codes = append(codes, apperrors.GetCode(err))
	}
	return codes
}
