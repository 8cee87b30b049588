// Package errs provides kind-coded errors shared by the generation engine.
package errs

import (
	"errors"
	"fmt"
	"os"
)

// Kind classifies an engine failure. Kinds are stable and may be relied
// upon in tests and for exit reporting.
type Kind string

const (
	// NotFound is returned for a missing path or file.
	NotFound Kind = "NotFound"
	// NotADirectory is returned when a directory was expected.
	NotADirectory Kind = "NotADirectory"
	// IO is a generic filesystem failure.
	IO Kind = "Io"
	// StripPrefix is a relative path computation failure.
	StripPrefix Kind = "StripPrefix"
	// Git is a remote acquisition or branch resolution failure.
	Git Kind = "GitError"
	// URL is a source string parse failure.
	URL Kind = "Url"
	// TemplatingEngine is a render failure, e.g. a missing strict-mode variable.
	TemplatingEngine Kind = "TemplatingEngine"
	// RegEx is a placeholder substitution pattern failure.
	RegEx Kind = "RegEx"
	// Generic is an unclassified failure.
	Generic Kind = "Error"
)

// Error is an error tagged with a Kind. A wrapped cause is optional.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Msg)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality, so errors.Is(err, &Error{Kind: k}) matches any
// error of kind k.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// New creates an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with a kind and a message. Returns nil for a nil err.
func Wrap(err error, kind Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Wrapf tags err with a kind and a formatted message. Returns nil for a nil err.
func Wrapf(err error, kind Kind, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// WrapFS tags a filesystem error, mapping non-existence to NotFound and
// anything else to IO. Returns nil for a nil err.
func WrapFS(err error, msg string) *Error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return &Error{Kind: NotFound, Msg: msg, Err: err}
	}
	return &Error{Kind: IO, Msg: msg, Err: err}
}

// KindOf returns the kind of err: the tagged kind for engine errors, Generic
// for foreign errors and the empty kind for nil.
func KindOf(err error) Kind {
	if err == nil {
		return Kind("")
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Generic
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
