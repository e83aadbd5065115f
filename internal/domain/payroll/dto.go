package payroll

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	PeriodMonth       string           `json:"period_month"`
	PeriodYear        string           `json:"period_year"`
	GrossSalary       decimal.Decimal  `json:"gross_salary"`
	NetSalary         *decimal.Decimal `json:"net_salary,omitempty"`
	TotalDeductions   *decimal.Decimal `json:"total_deductions,omitempty"`
	InsuranceEmployee *decimal.Decimal `json:"insurance_premium_employee_share,omitempty"`
	InsuranceEmployer *decimal.Decimal `json:"insurance_premium_employer_share,omitempty"`
	TaxDeduction      *decimal.Decimal `json:"tax_deduction,omitempty"`
	OtherAdditions    *decimal.Decimal `json:"other_additions,omitempty"`
	Currency          *string          `json:"currency,omitempty"`
	PayrollDate       *string          `json:"payroll_date,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	// Period
	if !validator.IsValidPeriodMonth(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be in MM format (01-12)",
		})
	}
	if !validator.IsValidPeriodYear(r.PeriodYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year must be in YYYY format",
		})
	}

	// Gross salary
	if !r.GrossSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must be a positive number",
		})
	}

	errs = append(errs, validateAmounts(r.NetSalary, r.TotalDeductions, r.InsuranceEmployee, r.InsuranceEmployer, r.TaxDeduction, r.OtherAdditions)...)

	// Payroll date
	if r.PayrollDate != nil {
		if _, ok := validator.IsValidDate(*r.PayrollDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payroll_date",
				Message: "payroll_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePayrollRequest struct {
	GrossSalary       *decimal.Decimal `json:"gross_salary,omitempty"`
	TotalDeductions   *decimal.Decimal `json:"total_deductions,omitempty"`
	InsuranceEmployee *decimal.Decimal `json:"insurance_premium_employee_share,omitempty"`
	InsuranceEmployer *decimal.Decimal `json:"insurance_premium_employer_share,omitempty"`
	TaxDeduction      *decimal.Decimal `json:"tax_deduction,omitempty"`
	OtherAdditions    *decimal.Decimal `json:"other_additions,omitempty"`
	Currency          *string          `json:"currency,omitempty"`
	PayrollDate       *string          `json:"payroll_date,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossSalary != nil && !r.GrossSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must be a positive number",
		})
	}

	errs = append(errs, validateAmounts(nil, r.TotalDeductions, r.InsuranceEmployee, r.InsuranceEmployer, r.TaxDeduction, r.OtherAdditions)...)

	if r.PayrollDate != nil {
		if _, ok := validator.IsValidDate(*r.PayrollDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payroll_date",
				Message: "payroll_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TouchesSalaryComponents reports whether the patch changes any input of
// the net-salary derivation.
func (r *UpdatePayrollRequest) TouchesSalaryComponents() bool {
	return r.GrossSalary != nil || r.TotalDeductions != nil || r.OtherAdditions != nil
}

var amountFields = []string{
	"net_salary",
	"total_deductions",
	"insurance_premium_employee_share",
	"insurance_premium_employer_share",
	"tax_deduction",
	"other_additions",
}

func validateAmounts(amounts ...*decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, amount := range amounts {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   amountFields[i],
				Message: amountFields[i] + " must not be negative",
			})
		}
	}
	return errs
}

// Filter narrows payroll listings.
type Filter struct {
	Status string
	Year   string
	Month  string
	Page   int
	Limit  int
}

type PayrollResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	PeriodMonth       string          `json:"period_month"`
	PeriodYear        string          `json:"period_year"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	InsuranceEmployee decimal.Decimal `json:"insurance_premium_employee_share"`
	InsuranceEmployer decimal.Decimal `json:"insurance_premium_employer_share"`
	TaxDeduction      decimal.Decimal `json:"tax_deduction"`
	OtherAdditions    decimal.Decimal `json:"other_additions"`
	Currency          string          `json:"currency"`
	PayrollDate       time.Time       `json:"payroll_date"`
	Status            Status          `json:"status"`
	PaymentDate       *time.Time      `json:"payment_date,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewPayrollResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		PeriodMonth:       p.PeriodMonth,
		PeriodYear:        p.PeriodYear,
		GrossSalary:       p.GrossSalary,
		NetSalary:         p.NetSalary,
		TotalDeductions:   p.TotalDeductions,
		InsuranceEmployee: p.InsuranceEmployee,
		InsuranceEmployer: p.InsuranceEmployer,
		TaxDeduction:      p.TaxDeduction,
		OtherAdditions:    p.OtherAdditions,
		Currency:          p.Currency,
		PayrollDate:       p.PayrollDate,
		Status:            p.Status,
		PaymentDate:       p.PaymentDate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func NewPayrollResponses(payrolls []Payroll) []PayrollResponse {
	result := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		result = append(result, NewPayrollResponse(p))
	}
	return result
}

type MonthTotals struct {
	GrossSalary decimal.Decimal `json:"gross_salary"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	Status      Status          `json:"status"`
}

type Statistics struct {
	TotalPayrolls          int                    `json:"total_payrolls"`
	PaidPayrolls           int                    `json:"paid_payrolls"`
	PendingPayrolls        int                    `json:"pending_payrolls"`
	TotalGrossSalary       decimal.Decimal        `json:"total_gross_salary"`
	TotalNetSalary         decimal.Decimal        `json:"total_net_salary"`
	TotalDeductions        decimal.Decimal        `json:"total_deductions"`
	TotalTaxDeductions     decimal.Decimal        `json:"total_tax_deductions"`
	TotalInsurancePremiums decimal.Decimal        `json:"total_insurance_premiums"`
	ByStatus               map[string]int         `json:"by_status"`
	ByMonth                map[string]MonthTotals `json:"by_month"`
}
