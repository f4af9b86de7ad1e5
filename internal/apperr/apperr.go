// Package apperr — два класса ошибок, видимых клиенту:
// невалидный запрос и сбой внешнего движка.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	}
	return "unknown"
}

// Error — ошибка с классом. Msg показывается клиенту, Err — исходная причина.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Upstream оборачивает сбой движка. Уже классифицированная ошибка
// возвращается как есть, validation не превращается в upstream.
func Upstream(msg string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}

func IsUpstream(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUpstream
}

// PublicMessage — текст, который можно отдать клиенту: для validation целиком,
// для upstream без причины.
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Internal server error"
	}
	return e.Msg
}
