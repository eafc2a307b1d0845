package booking

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a commit failed.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validationError"
	KindPriceLookup ErrorKind = "priceLookupError"
	KindPersistence ErrorKind = "persistenceError"
)

// BookingError is returned by every failed commit. Message is the text shown in
// the structured {error} result.
type BookingError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil && e.Kind != KindPersistence {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BookingError) Unwrap() error { return e.Err }

func NewValidationError(field, msg string) error {
	return &BookingError{Kind: KindValidation, Field: field, Message: msg}
}

func NewPriceLookupError(destination, class string) error {
	return &BookingError{
		Kind:    KindPriceLookup,
		Field:   "ticket_class",
		Message: fmt.Sprintf("No fare for %q in class %q", destination, class),
	}
}

// NewPersistenceError carries the store failure text in its message.
func NewPersistenceError(err error) error {
	return &BookingError{
		Kind:    KindPersistence,
		Message: fmt.Sprintf("Booking process failed: %v", err),
		Err:     err,
	}
}

func kindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

func IsValidation(err error) bool  { return kindOf(err) == KindValidation }
func IsPriceLookup(err error) bool { return kindOf(err) == KindPriceLookup }
func IsPersistence(err error) bool { return kindOf(err) == KindPersistence }
