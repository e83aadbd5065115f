package payment

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type SalaryPaymentService interface {
	Create(ctx context.Context, scope account.Scope, req CreateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	Get(ctx context.Context, scope account.Scope, id string) (SalaryPaymentResponse, error)
	List(ctx context.Context, scope account.Scope, filter Filter) ([]SalaryPaymentResponse, int64, error)
	Update(ctx context.Context, scope account.Scope, id string, req UpdateSalaryPaymentRequest) (SalaryPaymentResponse, error)
	Delete(ctx context.Context, scope account.Scope, id string) error
	Statistics(ctx context.Context, scope account.Scope, year int) (Statistics, error)
}
