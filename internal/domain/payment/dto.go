package payment

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryPaymentRequest struct {
	PayrollID     *string         `json:"payroll_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      *string         `json:"currency,omitempty"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Description   *string         `json:"description,omitempty"`
}

func (r *CreateSalaryPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	// Amount
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	// Payment method
	if r.PaymentMethod != nil && !IsValidMethod(*r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must be either Banka Havalesi or Nakit",
		})
	}

	// Payment date
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Description
	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSalaryPaymentRequest struct {
	PayrollID     *string          `json:"payroll_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Description   *string          `json:"description,omitempty"`
}

func (r *UpdateSalaryPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if r.PaymentMethod != nil && !IsValidMethod(*r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must be either Banka Havalesi or Nakit",
		})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Description != nil && len(*r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter narrows salary payment listings.
type Filter struct {
	PaymentMethod string
	Year          int
	Month         int
	Page          int
	Limit         int
}

type SalaryPaymentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	PayrollID     *string         `json:"payroll_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	Description   *string         `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewSalaryPaymentResponse(p SalaryPayment) SalaryPaymentResponse {
	return SalaryPaymentResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		PayrollID:     p.PayrollID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func NewSalaryPaymentResponses(payments []SalaryPayment) []SalaryPaymentResponse {
	result := make([]SalaryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, NewSalaryPaymentResponse(p))
	}
	return result
}

type MethodTotals struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type Statistics struct {
	TotalPayments  int                     `json:"total_payments"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	AveragePayment decimal.Decimal         `json:"average_payment"`
	ByMethod       map[string]MethodTotals `json:"by_payment_method"`
	ByMonth        map[string]MethodTotals `json:"by_month"`
}
