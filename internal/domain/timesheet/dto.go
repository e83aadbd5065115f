package timesheet

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

type CreateTimesheetRequest struct {
	Date          string   `json:"date"`
	Status        *string  `json:"status,omitempty"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	// Date
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = append(errs, validateTimesheetFields(r.Status, r.CheckInTime, r.CheckOutTime, r.OvertimeHours, r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimesheetRequest struct {
	Date          *string  `json:"date,omitempty"`
	Status        *string  `json:"status,omitempty"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateTimesheetFields(r.Status, r.CheckInTime, r.CheckOutTime, r.OvertimeHours, r.Notes)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateTimesheetFields(status, checkInTime, checkOutTime *string, overtimeHours *float64, notes *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	// Status
	if status != nil && !IsValidStatus(*status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known timesheet status",
		})
	}

	// Check times
	if checkInTime != nil && !validator.IsValidClockTime(*checkInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM format",
		})
	}
	if checkOutTime != nil && !validator.IsValidClockTime(*checkOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM format",
		})
	}

	// Overtime
	if overtimeHours != nil && *overtimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hours",
			Message: "overtime_hours must not be negative",
		})
	}

	// Notes
	if notes != nil && len(*notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	return errs
}

// Filter narrows timesheet listings.
type Filter struct {
	Status string
	Year   int
	Month  int
	Page   int
	Limit  int
}

type TimesheetResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	CheckInTime   *string   `json:"check_in_time,omitempty"`
	CheckOutTime  *string   `json:"check_out_time,omitempty"`
	HoursWorked   float64   `json:"total_hours_worked"`
	OvertimeHours float64   `json:"overtime_hours"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewTimesheetResponse(t Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:            t.ID,
		EmployeeID:    t.EmployeeID,
		Date:          t.Date.Format("2006-01-02"),
		Status:        t.Status,
		CheckInTime:   t.CheckInTime,
		CheckOutTime:  t.CheckOutTime,
		HoursWorked:   t.HoursWorked,
		OvertimeHours: t.OvertimeHours,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func NewTimesheetResponses(timesheets []Timesheet) []TimesheetResponse {
	result := make([]TimesheetResponse, 0, len(timesheets))
	for _, t := range timesheets {
		result = append(result, NewTimesheetResponse(t))
	}
	return result
}

type Statistics struct {
	TotalDays          int            `json:"total_days"`
	WorkDays           int            `json:"work_days"`
	LeaveDays          int            `json:"leave_days"`
	AbsentDays         int            `json:"absent_days"`
	HalfDays           int            `json:"half_days"`
	HolidayDays        int            `json:"holiday_days"`
	ByStatus           map[string]int `json:"by_status"`
	TotalHoursWorked   float64        `json:"total_hours_worked"`
	TotalOvertimeHours float64        `json:"total_overtime_hours"`
}
