package client

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrAccountExists   = errors.New("account already exists")
	ErrInvalidUserType = errors.New("invalid user type")
	ErrTokenMismatch   = errors.New("token does not belong to user")
)
