// Package apperr defines the application error taxonomy shared by the
// service layer and the HTTP handlers. Services classify failures here;
// handlers map codes to status codes without inspecting error strings.
package apperr

import (
	"fmt"
	"net/http"
)

// Code identifies the class of failure.
type Code int

const (
	CodeInternal Code = iota
	CodeValidation
	CodeNotFound
	CodeConflict
	CodeUnauthorized
	CodeForbidden
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application error. Err, when set, carries the
// underlying cause for logging; it is never serialized to clients.
type Error struct {
	Code    Code
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a field-level validation error.
func Validation(fields ...FieldError) *Error {
	msg := "Validation failed"
	if len(fields) == 1 {
		msg = fields[0].Message
	}
	return &Error{Code: CodeValidation, Message: msg, Fields: fields}
}

// Field is shorthand for a FieldError.
func Field(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// NotFound builds a missing-entity error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict builds a uniqueness-violation error.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Unauthorized builds an authentication failure.
func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

// Forbidden builds an authorization failure (valid identity, insufficient
// role). Unused with a single role, but the distinction exists.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

// Internal wraps an unexpected failure. The message is what clients see;
// cause stays server-side.
func Internal(message string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: cause}
}

// CodeOf extracts the Code from err, defaulting to CodeInternal for
// unclassified errors.
func CodeOf(err error) Code {
	if ae, ok := err.(*Error); ok {
		return ae.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the HTTP status code the gateway should return.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// FieldsOf returns the field-level details of a validation error, or nil.
func FieldsOf(err error) []FieldError {
	if ae, ok := err.(*Error); ok {
		return ae.Fields
	}
	return nil
}
