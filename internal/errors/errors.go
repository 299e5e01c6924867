package errors

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибки продажи и валидации
type Kind string

const (
	KindInvalidSeat       Kind = "invalid_seat"
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindSeatTaken         Kind = "seat_taken"
	KindInvalidCustomerID Kind = "invalid_customer_id"
	KindMissingField      Kind = "missing_field"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindUpstreamFailure   Kind = "upstream_failure"
)

// Error is a domain error carrying a kind and, for form validation,
// a field-keyed message map
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Fields)
	}
	return e.Message
}

// E creates a domain error of the given kind
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Ef creates a domain error with a formatted message
func Ef(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FieldErrors creates a validation error keyed by field name
func FieldErrors(kind Kind, fields map[string]string) *Error {
	return &Error{Kind: kind, Message: "validation failed", Fields: fields}
}

// KindOf returns the kind of err, or empty if err is not a domain error
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// FieldsOf returns the field messages of err, or nil when err is not
// a validation error
func FieldsOf(err error) map[string]string {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// Is reports whether err is a domain error of the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
