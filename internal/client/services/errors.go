package services

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistence wraps storage read/write failures. The store's in-memory
	// state is unchanged when a mutation returns it.
	ErrPersistence = errors.New("persistence failure")

	// ErrAlreadyAuthenticated rejects a login or register for a different
	// role than the one currently logged in.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrOperationInProgress  = errors.New("another login or register is in progress")
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
