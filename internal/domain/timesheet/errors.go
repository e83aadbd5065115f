package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("Timesheet not found")
)
