package errs

import (
	"errors"
)

var (
	ErrDuplicate    = errors.New("event already journaled")
	ErrInvalidEvent = errors.New("event id and type are required")
	ErrLimit        = errors.New("limit must be between 1 and 500")
)

type ErrorResponse struct {
	Message string `json:"message"`
}
