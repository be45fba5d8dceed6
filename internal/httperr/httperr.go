// Package httperr classifies failures that can occur while serving a single
// connection. None of them is fatal to the server.
package httperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	MalformedRequest Kind = iota
	ReadFailure
	WriteFailure
	ResolveFailure
)

func (k Kind) String() string {
	switch k {
	case MalformedRequest:
		return "malformed request"
	case ReadFailure:
		return "read failure"
	case WriteFailure:
		return "write failure"
	case ResolveFailure:
		return "resolve failure"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

// Error wraps an underlying error with its Kind.
type Error struct {
	Kind       Kind
	underlying error
}

func New(kind Kind, underlying error) *Error {
	return &Error{Kind: kind, underlying: underlying}
}

func (e *Error) Error() string {
	if e.underlying != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.underlying)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.underlying
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
