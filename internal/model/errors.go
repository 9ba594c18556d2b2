package model

import (
	"errors"
	"fmt"

	"github.com/nimasrn/customer-billing/internal/validate"
)

// Error kinds. Match with errors.Is; recover details with errors.As(*Error).
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrPersistence      = errors.New("persistence failure")
	ErrMalformedRequest = errors.New("malformed request")
)

type Error struct {
	Kind    error
	Message string
	Fields  validate.Errors // set for ErrValidation only
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewValidationError(fields validate.Errors) *Error {
	return &Error{Kind: ErrValidation, Message: "One or more validation errors occurred.", Fields: fields}
}

func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func NewPersistenceError(err error, message string) *Error {
	return &Error{Kind: ErrPersistence, Message: message, Err: err}
}

func NewMalformedRequestError(message string, err error) *Error {
	return &Error{Kind: ErrMalformedRequest, Message: message, Err: err}
}
