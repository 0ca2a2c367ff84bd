// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would leave two
	// users with the same email address.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
