package advance

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason *string         `json:"reason,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	// Amount
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
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

type UpdateAdvanceRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason *string          `json:"reason,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
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

type DecideAdvanceRequest struct {
	Status       string  `json:"status"`
	ApprovalNote *string `json:"approval_note,omitempty"`
}

func (r *DecideAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if Status(r.Status) != StatusApproved && Status(r.Status) != StatusRejected {
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

// Filter narrows advance listings.
type Filter struct {
	Status     string
	EmployeeID string
	Page       int
	Limit      int
}

type AdvanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       *string         `json:"reason,omitempty"`
	Status       Status          `json:"status"`
	RequestDate  time.Time       `json:"request_date"`
	ResponseDate *time.Time      `json:"response_date,omitempty"`
	ApprovedBy   *string         `json:"approved_by,omitempty"`
	ApprovalNote *string         `json:"approval_note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewAdvanceResponse(a Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Amount:       a.Amount,
		Reason:       a.Reason,
		Status:       a.Status,
		RequestDate:  a.RequestDate,
		ResponseDate: a.ResponseDate,
		ApprovedBy:   a.ApprovedBy,
		ApprovalNote: a.ApprovalNote,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func NewAdvanceResponses(advances []Advance) []AdvanceResponse {
	result := make([]AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, NewAdvanceResponse(a))
	}
	return result
}

type Statistics struct {
	Total          int             `json:"total"`
	Approved       int             `json:"approved"`
	Pending        int             `json:"pending"`
	Rejected       int             `json:"rejected"`
	ByStatus       map[string]int  `json:"by_status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	RejectedAmount decimal.Decimal `json:"rejected_amount"`
}
