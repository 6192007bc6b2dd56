// Package ledgererr defines the error kinds the ledger service returns to
// its transport. Every failure crossing the service boundary is one of
// these tagged values so the caller can map it to a status convention.
package ledgererr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// InvalidInput marks a missing or malformed required field.
	InvalidInput Kind = iota + 1
	// NotFound marks an absent account.
	NotFound
	// UnknownLedger marks a ledger name the account does not carry.
	UnknownLedger
	// NoPriorBalance marks an as-of query that predates all history.
	NoPriorBalance
	// Conflict marks an attempt to create an account id that exists.
	Conflict
	// StoreUnavailable wraps an underlying persistence failure.
	StoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	case UnknownLedger:
		return "unknown_ledger"
	case NoPriorBalance:
		return "no_prior_balance"
	case Conflict:
		return "conflict"
	case StoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error carries a kind, a caller-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns an error of the given kind with an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if err == nil {
		return 0
	}
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
