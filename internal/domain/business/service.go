package business

import "context"

type BusinessService interface {
	GetOwn(ctx context.Context, ownerAccountID string) (BusinessResponse, error)
	UpdateOwn(ctx context.Context, ownerAccountID string, req UpdateBusinessRequest) (BusinessResponse, error)
}
