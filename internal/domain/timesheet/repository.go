package timesheet

import "context"

// TimesheetRepository - interface for the timesheets table.
type TimesheetRepository interface {
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (Timesheet, error)
	List(ctx context.Context, ownerAccountID, employeeID string, filter Filter) ([]Timesheet, int64, error)
	ListByEmployee(ctx context.Context, ownerAccountID, employeeID string, year int, month int) ([]Timesheet, error)
	Update(ctx context.Context, ownerAccountID, employeeID, id string, req UpdateTimesheetRequest, hoursWorked *float64) (Timesheet, error)
	Delete(ctx context.Context, ownerAccountID, employeeID, id string) error
}
