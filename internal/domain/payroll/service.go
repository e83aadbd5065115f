package payroll

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type PayrollService interface {
	// Create rejects a second payroll for the same employee and period with
	// a conflict. When no net salary is supplied it is derived from the
	// other components.
	Create(ctx context.Context, scope account.Scope, req CreatePayrollRequest) (PayrollResponse, error)
	Get(ctx context.Context, scope account.Scope, id string) (PayrollResponse, error)
	List(ctx context.Context, scope account.Scope, filter Filter) ([]PayrollResponse, int64, error)
	// Update recomputes the net salary when a salary component changes.
	Update(ctx context.Context, scope account.Scope, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	// MarkAsPaid is one-way; paying an already paid payroll is a conflict.
	MarkAsPaid(ctx context.Context, scope account.Scope, id string) (PayrollResponse, error)
	Delete(ctx context.Context, scope account.Scope, id string) error
	Statistics(ctx context.Context, scope account.Scope, year string) (Statistics, error)
	// Payslip renders the payroll as a PDF document.
	Payslip(ctx context.Context, scope account.Scope, id string) ([]byte, string, error)
}
