package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("Leave not found")
	ErrLeaveAlreadyProcessed = errors.New("Leave request has already been processed")
	ErrLeaveNotPending       = errors.New("Only pending leave requests can be modified")
)
