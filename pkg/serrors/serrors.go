// Package serrors provides semantic error kinds for the analyzer. A kind is
// a comparable sentinel describing the category of a failure (bad input,
// missing configuration, ...) that callers can test with errors.Is while the
// concrete cause stays wrapped underneath.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the marker interface implemented by all semantic kinds created
// with NewKind. It distinguishes kind sentinels from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new comparable error kind sentinel with the given name.
func NewKind(name string) Kind { return kind{s: name} }

// The analyzer's error taxonomy. Everything at the row or key level is
// recoverable and reported through diagnostics rather than raised; these
// kinds cover the failures that must surface to the caller.
var (
	// ErrNotFound indicates a required input file or market key was absent.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadInput indicates input data that cannot be interpreted at all
	// (e.g. a schedule file with no usable columns). Individual malformed
	// rows are skipped and counted instead.
	ErrBadInput = NewKind("BAD_INPUT")
	// ErrConfig indicates missing or inconsistent static configuration
	// (no focus airports, no seasons, empty group tables). This is the only
	// fatal category: a run cannot start without it.
	ErrConfig = NewKind("CONFIG")
	// ErrInternal indicates a bug or an unexpected state in the analyzer.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and
// an optional message. It supports errors.Is/As against both the kind and
// the cause chain.
//
// Error string formatting:
//   - msg and cause set: "<msg>: <cause>"
//   - only msg set: "<msg>"
//   - only cause set: "<cause>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps a concrete
// cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches type assertions against either the kind sentinel or the wrapped
// cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
