package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods, bank transfer / cash
var Methods = []string{"Banka Havalesi", "Nakit"}

const (
	DefaultMethod   = "Banka Havalesi"
	DefaultCurrency = "TL"
)

func IsValidMethod(m string) bool {
	for _, known := range Methods {
		if known == m {
			return true
		}
	}
	return false
}

type SalaryPayment struct {
	ID             string
	OwnerAccountID string
	EmployeeID     string
	PayrollID      *string
	Amount         decimal.Decimal
	Currency       string
	PaymentDate    time.Time
	PaymentMethod  string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
