package fieldset

import (
	"errors"
	"fmt"
)

// ErrConfigParse reports a configuration payload that is absent, malformed,
// or not an object.
var ErrConfigParse = errors.New("config-parse")

// ParseError carries the reason a payload was rejected.
type ParseError struct {
	Format string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "fieldset: config-parse"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfigParse}
	}
	return []error{ErrConfigParse, e.Err}
}

func parseErrorf(format, reasonFormat string, args ...any) *ParseError {
	return &ParseError{Format: format, Reason: fmt.Sprintf(reasonFormat, args...)}
}
