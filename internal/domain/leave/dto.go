package leave

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Type
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of günlük, yıllık, mazeret",
		})
	}

	// Dates
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// Reason
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRequest struct {
	Type      *string `json:"type,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !IsValidType(*r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of günlük, yıllık, mazeret",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	Status       string  `json:"status"`
	ApprovalNote *string `json:"approval_note,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidDecision(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either approved or rejected",
		})
	}
	if r.ApprovalNote != nil && len(*r.ApprovalNote) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "approval_note",
			Message: "approval_note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateDates enforces the request window rules: the leave may not start
// in the past and may not end before it starts.
func ValidateDates(start, end time.Time) error {
	var errs validator.ValidationErrors

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date cannot be in the past",
		})
	}
	if end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date cannot be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows leave listings.
type Filter struct {
	Status string
	Type   string
	Page   int
	Limit  int
}

type LeaveResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Type         string     `json:"type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Days         int        `json:"days"`
	Reason       *string    `json:"reason,omitempty"`
	Status       Status     `json:"status"`
	ApprovedBy   *string    `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovalNote *string    `json:"approval_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		Type:         l.Type,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       l.Status,
		ApprovedBy:   l.ApprovedBy,
		ApprovedAt:   l.ApprovedAt,
		ApprovalNote: l.ApprovalNote,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func NewLeaveResponses(leaves []Leave) []LeaveResponse {
	result := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, NewLeaveResponse(l))
	}
	return result
}

type Statistics struct {
	Total        int            `json:"total"`
	Approved     int            `json:"approved"`
	Pending      int            `json:"pending"`
	Rejected     int            `json:"rejected"`
	ByType       map[string]int `json:"by_type"`
	ByStatus     map[string]int `json:"by_status"`
	TotalDays    int            `json:"total_days"`
	ApprovedDays int            `json:"approved_days"`
}
