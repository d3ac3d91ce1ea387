package errs

import (
	"errors"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotCancellable  = errors.New("only active reservations can be cancelled")
	ErrAlreadyReturned = errors.New("book has already been returned")
	ErrPaymentRequired = errors.New("borrow has an outstanding fine: a payment method (cash, card, online) is required")
	ErrConfirmRequired = errors.New("cancellation must be confirmed")
	ErrJournal         = errors.New("journal service unavailable")
)

type validationError struct {
	err error
}

func (e validationError) Error() string {
	return e.err.Error()
}

func (e validationError) Unwrap() []error {
	return []error{ErrValidation, e.err}
}

// Invalid marks err as a validation failure keeping its message.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return validationError{err: err}
}

type ErrorResponse struct {
	Message string `json:"message"`
}
