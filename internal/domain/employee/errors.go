package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("Employee not found")
	ErrEmployeeAlreadyInactive = errors.New("Employee is already deactivated")
	ErrEmployeeNotDeleted      = errors.New("Employee is not deactivated")
	ErrOwnRecordsOnly          = errors.New("You can only access your own records")
)
