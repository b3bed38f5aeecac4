package services

import "errors"

var (
	// ErrNotFound: no registration (or other record) matches the input.
	// Handlers surface this as a soft success:false payload, not a 4xx,
	// so responses do not reveal which field mismatched.
	ErrNotFound = errors.New("record not found")

	// ErrValidation: missing or malformed input.
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized: admin credentials or session rejected.
	ErrUnauthorized = errors.New("unauthorized")
)
