// Package serrors defines the semantic error kinds used across the scan
// resolution pipeline. Every failure in the pipeline is terminal for the
// current attempt and is classified by exactly one Kind, so callers can map
// errors to exit codes and HTTP statuses with errors.Is.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Pipeline error kinds. The first six form the resolution-pipeline taxonomy;
// the remainder are transport-level categories used by the HTTP boundary.
var (
	// ErrConfiguration indicates missing required credentials or parameters;
	// the caller must fix its input or environment.
	ErrConfiguration = NewKind("CONFIGURATION")
	// ErrAuthentication indicates the catalog login exchange was rejected.
	ErrAuthentication = NewKind("AUTHENTICATION")
	// ErrSearch indicates the catalog search call itself failed.
	ErrSearch = NewKind("SEARCH")
	// ErrNotFound indicates a query succeeded but matched nothing.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrResolution indicates an unextractable or unusable search result.
	ErrResolution = NewKind("RESOLUTION")
	// ErrCartMutation indicates the remote cart write failed. Transient and
	// permanent causes are not distinguished.
	ErrCartMutation = NewKind("CART_MUTATION")

	// ErrUnauthorized indicates missing or invalid ingest credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict, e.g. a duplicate scan.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind (sentinel), an optional wrapped
// cause, a human-readable message, and optional diagnostic details (search
// term, candidate payload, product id) for the caller to report. It fully
// supports errors.Is/errors.As and unwrapping.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind    Kind
	err     error
	msg     string
	details map[string]any
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause and attaches a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Detail attaches a named diagnostic value to the error and returns it for
// chaining. Details end up in the structured failure objects rendered by the
// CLI and the HTTP boundary.
func (e *Error) Detail(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value

	return e
}

// Details returns the diagnostic values attached to this error, or nil.
func (e *Error) Details() map[string]any {
	if e == nil {
		return nil
	}

	return e.details
}

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

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As to traverse
// the chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the semantic kind sentinel or the wrapped cause.
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

// As enables type assertions against either the kind sentinel or the wrapped
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the human-readable message attached to this error.
func (e *Error) Message() string { return e.msg }
