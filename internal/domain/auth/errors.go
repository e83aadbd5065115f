package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Email or password is incorrect")
	ErrInvalidToken       = errors.New("Invalid or expired token")
)
