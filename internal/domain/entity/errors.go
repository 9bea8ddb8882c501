package entity

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or a value
	// cannot be coerced to its declared type.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken is returned when a user with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrNoIdentity is returned when no actor identity can be resolved for a
	// mutation that requires one.
	ErrNoIdentity = errors.New("no actor identity resolved")
)
