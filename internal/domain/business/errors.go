package business

import "errors"

var (
	ErrBusinessNotFound = errors.New("Business not found")
)
