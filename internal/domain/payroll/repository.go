package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollRepository - interface for the payrolls table. Inserts map the
// per-period unique index violation to ErrPayrollPeriodExists so concurrent
// creates cannot slip past the service-level check.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (Payroll, error)
	GetByPeriod(ctx context.Context, ownerAccountID, employeeID, month, year string) (Payroll, error)
	List(ctx context.Context, ownerAccountID, employeeID string, filter Filter) ([]Payroll, int64, error)
	ListByEmployeeYear(ctx context.Context, ownerAccountID, employeeID, year string) ([]Payroll, error)
	Update(ctx context.Context, ownerAccountID, employeeID, id string, req UpdatePayrollRequest, netSalary *decimal.Decimal) (Payroll, error)
	// MarkAsPaid flips a pending payroll to paid and stamps the payment
	// date. It affects no rows when the payroll is already paid.
	MarkAsPaid(ctx context.Context, ownerAccountID, employeeID, id string) (Payroll, error)
	Delete(ctx context.Context, ownerAccountID, employeeID, id string) error
}
