package business

import "context"

type BusinessRepository interface {
	Create(ctx context.Context, newBusiness Business) (Business, error)
	GetByID(ctx context.Context, id string) (Business, error)
	GetByOwnerAccountID(ctx context.Context, ownerAccountID string) (Business, error)
	SetOwner(ctx context.Context, id string, ownerAccountID string) error
	Update(ctx context.Context, id string, req UpdateBusinessRequest) (Business, error)
}
