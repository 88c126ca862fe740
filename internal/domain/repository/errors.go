package repository

import "medicita/pkg/apperror"

var (
	// ErrLoginTaken is returned when a new user's login matches an existing
	// one, ignoring case.
	ErrLoginTaken = apperror.NewConflictError("El usuario ya existe")
)
