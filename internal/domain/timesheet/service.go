package timesheet

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
)

type TimesheetService interface {
	// Create derives total hours worked from the check times when both are
	// present.
	Create(ctx context.Context, scope account.Scope, req CreateTimesheetRequest) (TimesheetResponse, error)
	Get(ctx context.Context, scope account.Scope, id string) (TimesheetResponse, error)
	List(ctx context.Context, scope account.Scope, filter Filter) ([]TimesheetResponse, int64, error)
	// Update recomputes the derived hours whenever either check time
	// changes.
	Update(ctx context.Context, scope account.Scope, id string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Delete(ctx context.Context, scope account.Scope, id string) error
	Statistics(ctx context.Context, scope account.Scope, year int, month int) (Statistics, error)
}
