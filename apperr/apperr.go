// Package apperr defines the error kinds shared by the stores, the cart
// service and the HTTP layer, plus their mapping to status codes.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // bad input shape or values
	KindNotFound               // unknown cookie, cart line or order id
	KindStorage                // backing file or session store I/O failure
	KindAuth                   // missing or invalid admin credentials
)

// Error carries a kind and a message safe to show to clients. The wrapped
// error (if any) is for logs only and never leaves the server.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func Validation(msg string) *Error { return &Error{kind: KindValidation, msg: msg} }

func NotFound(msg string) *Error { return &Error{kind: KindNotFound, msg: msg} }

func Storage(msg string, err error) *Error { return &Error{kind: KindStorage, msg: msg, err: err} }

func Auth(msg string) *Error { return &Error{kind: KindAuth, msg: msg} }

// IsKind reports whether err is an apperr.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == kind
}

// Status maps an error to the HTTP status code the boundary layer responds with.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Unknown error types get a
// generic message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return "Internal server error"
}
