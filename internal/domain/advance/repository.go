package advance

import "context"

// AdvanceRepository - interface for the advances table.
type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, ownerAccountID, employeeID, id string) (Advance, error)
	List(ctx context.Context, ownerAccountID, employeeID string, filter Filter) ([]Advance, int64, error)
	// ListByOwner returns advances across every employee in the owner's
	// namespace, for the business-wide queue.
	ListByOwner(ctx context.Context, ownerAccountID string, filter Filter) ([]Advance, int64, error)
	ListByEmployee(ctx context.Context, ownerAccountID, employeeID string) ([]Advance, error)
	Update(ctx context.Context, ownerAccountID, employeeID, id string, req UpdateAdvanceRequest) (Advance, error)
	Decide(ctx context.Context, ownerAccountID, employeeID, id string, status Status, decidedBy string, note *string) (Advance, error)
	Delete(ctx context.Context, ownerAccountID, employeeID, id string) error
}
