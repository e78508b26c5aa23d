package utils

import "errors"

var (
	ErrUserNotFound                = errors.New("user not found")
	ErrDestinationNotFound         = errors.New("destination not found")
	ErrActivityNotFound            = errors.New("activity not found")
	ErrNotInFavorites              = errors.New("destination is not in user favorites")
	ErrEmailAlreadyExists          = errors.New("email already exists")
	ErrInvalidDestinationReference = errors.New("referenced destination does not exist")
	ErrInvalidID                   = errors.New("invalid id parameter")
	ErrDatabaseError               = errors.New("database error")

	ErrEcoServiceUnavailable = errors.New("eco suggestion service unavailable")
	ErrEcoServiceTimeout     = errors.New("eco suggestion service timeout")
	ErrEcoServiceFailed      = errors.New("eco suggestion service error")
)
