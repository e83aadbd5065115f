package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPaid    Status = "Ödendi"
	StatusPending Status = "Beklemede"
)

const DefaultCurrency = "TL"

type Payroll struct {
	ID                 string
	OwnerAccountID     string
	EmployeeID         string
	PeriodMonth        string // "07"
	PeriodYear         string // "2025"
	GrossSalary        decimal.Decimal
	NetSalary          decimal.Decimal
	TotalDeductions    decimal.Decimal
	InsuranceEmployee  decimal.Decimal
	InsuranceEmployer  decimal.Decimal
	TaxDeduction       decimal.Decimal
	OtherAdditions     decimal.Decimal
	Currency           string
	PayrollDate        time.Time
	Status             Status
	PaymentDate        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CalculateNetSalary derives the net amount as gross minus total
// deductions plus other additions, rounded to two decimals.
func CalculateNetSalary(gross, totalDeductions, otherAdditions decimal.Decimal) decimal.Decimal {
	return gross.Sub(totalDeductions).Add(otherAdditions).Round(2)
}

func (p *Payroll) IsPaid() bool {
	return p.Status == StatusPaid
}

// Period formats the payroll period as "YYYY-MM".
func (p *Payroll) Period() string {
	return p.PeriodYear + "-" + p.PeriodMonth
}
