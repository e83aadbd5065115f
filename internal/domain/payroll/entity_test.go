package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateNetSalary(t *testing.T) {
	cases := []struct {
		name       string
		gross      string
		deductions string
		additions  string
		want       string
	}{
		{"deductions and additions", "10000", "1500", "200", "8700"},
		{"no additions", "10000", "1500", "0", "8500"},
		{"rounded to two decimals", "10000.555", "0.111", "0", "10000.44"},
		{"deductions exceed gross", "1000", "1500", "0", "-500"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateNetSalary(
				decimal.RequireFromString(c.gross),
				decimal.RequireFromString(c.deductions),
				decimal.RequireFromString(c.additions),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"got %s, want %s", got, c.want)
		})
	}
}

func TestPayroll_Period(t *testing.T) {
	p := Payroll{PeriodMonth: "07", PeriodYear: "2025"}
	assert.Equal(t, "2025-07", p.Period())
}

func TestPayroll_IsPaid(t *testing.T) {
	assert.True(t, (&Payroll{Status: StatusPaid}).IsPaid())
	assert.False(t, (&Payroll{Status: StatusPending}).IsPaid())
}
