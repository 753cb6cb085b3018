// Package domainerr defines the error kinds shared by every engine component.
//
// Processor packages declare their own sentinel errors with New so callers can match
// either the specific sentinel or the broad kind:
//
//	errors.Is(err, processor.ErrEnrollmentNotPending) // specific
//	errors.Is(err, domainerr.ErrInvalidState)         // kind
package domainerr

import (
	"errors"
	"fmt"
)

// Error kinds
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidState     = errors.New("invalid state")
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrPolicyConflict   = errors.New("policy conflict")
	ErrUnavailable      = errors.New("unavailable")
)

var kinds = []error{
	ErrInvalidArgument,
	ErrInvalidState,
	ErrNotFound,
	ErrCapacityExceeded,
	ErrPolicyConflict,
	ErrUnavailable,
}

// Error carries an operation name and a kind alongside an optional cause.
type Error struct {
	Op      string
	Kind    error
	Message string
	Err     error
}

// New creates an Error of the given kind.
func New(op string, kind error, message string) *Error {
	return &Error{Op: op, Kind: kind, Message: message}
}

// Wrap attaches a kind to an underlying error.
func Wrap(op string, kind error, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the first known kind found in err's chain, or nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
