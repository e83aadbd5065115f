package advance

import "errors"

var (
	ErrAdvanceNotFound         = errors.New("Advance request not found")
	ErrAdvanceAlreadyProcessed = errors.New("Advance request has already been processed")
	ErrAdvanceNotPending       = errors.New("Only pending advance requests can be modified")
)
