package queue

import (
	"errors"
	"strings"
)

// Error kinds. Every *Error carries one of them, so callers can branch with
// errors.Is(err, queue.ErrTransport) and so on.
var (
	// ErrValidation marks an operation invoked without its preconditions.
	ErrValidation = errors.New("validation error")
	// ErrTransport marks a failed request or a response reporting failure.
	ErrTransport = errors.New("transport failure")
	// ErrRetryExhausted marks the end of polling after too many
	// consecutive failures.
	ErrRetryExhausted = errors.New("retries exhausted")
)

// Causes.
var (
	ErrNotInQueue      = errors.New("not in queue")
	ErrEnterInProgress = errors.New("enter already in progress")
	ErrDestroyed       = errors.New("client destroyed")
	ErrSessionMismatch = errors.New("status belongs to another session")
	ErrRejected        = errors.New("request rejected by server")
	ErrInvalidSession  = errors.New("invalid session in response")
)

// Error is the failure type returned and published by [Client].
type Error struct {
	// Op is the failing operation: "new", "enter" or "poll".
	Op string
	// Kind is one of ErrValidation, ErrTransport or ErrRetryExhausted.
	Kind error
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("queue ")
	b.WriteString(e.Op)
	if e.Kind != nil {
		b.WriteString(": ")
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func validationError(op string, cause error) *Error {
	return &Error{Op: op, Kind: ErrValidation, Err: cause}
}

func transportError(op string, cause error) *Error {
	return &Error{Op: op, Kind: ErrTransport, Err: cause}
}
