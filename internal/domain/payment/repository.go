package payment

import "context"

// SalaryPaymentRepository - interface for the salary_payments table.
type SalaryPaymentRepository interface {
	Create(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (SalaryPayment, error)
	List(ctx context.Context, ownerAccountID, employeeID string, filter Filter) ([]SalaryPayment, int64, error)
	ListByEmployee(ctx context.Context, ownerAccountID, employeeID string, year int) ([]SalaryPayment, error)
	Update(ctx context.Context, ownerAccountID, employeeID, id string, req UpdateSalaryPaymentRequest) (SalaryPayment, error)
	Delete(ctx context.Context, ownerAccountID, employeeID, id string) error
}
