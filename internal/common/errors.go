// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorStorageCorrupt = errors.New("stored data is corrupt")

	// Account errors.
	ErrorEmailAlreadyExists = errors.New("email already exists")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
