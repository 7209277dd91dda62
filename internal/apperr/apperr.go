// Package apperr is the error taxonomy shared by handlers and services.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

// Error carries a client-facing message and an optional cause.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// ValidationFields reports a validation failure with per-field details.
func ValidationFields(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf reports the kind of err; errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Status maps err to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
