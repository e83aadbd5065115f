package account

import "errors"

var (
	ErrAccountNotFound        = errors.New("Account not found")
	ErrEmailAlreadyExists     = errors.New("An account with this email already exists")
	ErrAccountAlreadyInactive = errors.New("Account is already deactivated")
	ErrAccountNotDeleted      = errors.New("Account is not deactivated")
	ErrOwnerAccessRequired    = errors.New("Owner access required")
	ErrManagerAccessRequired  = errors.New("Manager access required")
)
