package errors

import (
	"errors"
)

var (
	ErrEmptyAuth          = errors.New("missing token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPayload     = errors.New("invalid payload for creating/updating order")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTokenInvalid       = errors.New("invalid token")
)
