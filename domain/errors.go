package domain

import "errors"

// Sentinel errors shared by services and mapped to HTTP statuses in the rest layer.
var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("duplicate record")
	ErrUnauthorized      = errors.New("invalid credentials")
	ErrForbidden         = errors.New("account disabled")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("illegal order status transition")
)
