package semcommit

import (
	"fmt"
	"strings"
)

// FormatError is returned when the stored version value is absent, e.g. the
// descriptor has no version element or the element is empty.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return "version must be a string"
	}
	return "version must be a string: " + e.Reason
}

// ValidationError is returned when the version text does not fit N.N.N.
type ValidationError struct {
	Value  string
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("version %q does not fit the semantic version format N.N.N", e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// MissingSignalError is returned when none of the scanned commits carries a
// release keyword. No default bump is ever assumed.
type MissingSignalError struct {
	Keywords Keywords
	Scanned  int
}

func (e *MissingSignalError) Error() string {
	kws := []string{e.Keywords.Major, e.Keywords.Minor, e.Keywords.Patch}
	return fmt.Sprintf("no release keyword found in %d commit(s); use one of %s as keyword(scope): description",
		e.Scanned, strings.Join(kws, ", "))
}
