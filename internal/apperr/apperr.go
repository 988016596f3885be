package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so handlers can map it to an HTTP status
// without inspecting error strings.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindPrecondition
	KindValidation
	KindUpstream
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Kind() Kind { return e.kind }

func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

func Forbidden(msg string) error {
	return &Error{kind: KindForbidden, msg: msg}
}

func Precondition(msg string) error {
	return &Error{kind: KindPrecondition, msg: msg}
}

func Validation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

func Validationf(format string, args ...any) error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// Upstream wraps a failure from the LLM provider or object storage. The
// cause stays attached for logs; Message hides it from callers.
func Upstream(msg string, err error) error {
	return &Error{kind: KindUpstream, msg: msg, err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}

func Status(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindPrecondition:
		return http.StatusUnprocessableEntity
	case KindValidation:
		return http.StatusBadRequest
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message is the caller-facing text. Upstream causes are collapsed to a
// generic message so provider details never leak past the logs.
func Message(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "internal server error"
	}
	if e.kind == KindUpstream {
		return "generation failed"
	}
	return e.msg
}
