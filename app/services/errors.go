package services

import "errors"

var (
	// ErrValidation marks client-input failures so controllers can map
	// them to a 400 without inspecting validator internals.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on any login mismatch. A wrong
	// email and a wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
