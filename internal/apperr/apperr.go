// Package apperr defines the error kinds every external call site wraps its
// failures into. Kinds are stable strings so they can be returned to API
// clients as error codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnknown             Kind = ""
	KindProviderMissing     Kind = "PROVIDER_MISSING"
	KindUserRejected        Kind = "USER_REJECTED"
	KindNotConnected        Kind = "NOT_CONNECTED"
	KindNetworkMismatch     Kind = "NETWORK_MISMATCH"
	KindNetworkSwitchFailed Kind = "NETWORK_SWITCH_FAILED"
	KindRemoteCallFailed    Kind = "REMOTE_CALL_FAILED"
	KindStorageFailed       Kind = "STORAGE_FAILED"
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindNotFound            Kind = "NOT_FOUND"
	KindForbidden           Kind = "FORBIDDEN"
)

// Error is a classified error with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotConnected) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// Sentinels usable with errors.Is.
var (
	ErrProviderMissing     = &Error{Kind: KindProviderMissing}
	ErrUserRejected        = &Error{Kind: KindUserRejected}
	ErrNotConnected        = &Error{Kind: KindNotConnected}
	ErrNetworkMismatch     = &Error{Kind: KindNetworkMismatch}
	ErrNetworkSwitchFailed = &Error{Kind: KindNetworkSwitchFailed}
	ErrRemoteCallFailed    = &Error{Kind: KindRemoteCallFailed}
	ErrStorageFailed       = &Error{Kind: KindStorageFailed}
	ErrInvalidInput        = &Error{Kind: KindInvalidInput}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrForbidden           = &Error{Kind: KindForbidden}
)

// New returns an error of the given kind without a cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies err. A nil err yields nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the outermost classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// RemoteCallFailed wraps a failed chain or HTTP call. Already classified
// errors keep their kind so a rejection deep in a call stays a rejection.
func RemoteCallFailed(message string, err error) error {
	if err == nil {
		return nil
	}
	if k := KindOf(err); k != KindUnknown {
		return &Error{Kind: k, Message: message, Err: err}
	}
	return &Error{Kind: KindRemoteCallFailed, Message: message, Err: err}
}
