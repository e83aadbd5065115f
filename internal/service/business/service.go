package business

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
)

type BusinessServiceImpl struct {
	business.BusinessRepository
}

func NewBusinessService(businessRepository business.BusinessRepository) business.BusinessService {
	return &BusinessServiceImpl{
		BusinessRepository: businessRepository,
	}
}

// GetOwn implements business.BusinessService.
func (s *BusinessServiceImpl) GetOwn(ctx context.Context, ownerAccountID string) (business.BusinessResponse, error) {
	businessData, err := s.BusinessRepository.GetByOwnerAccountID(ctx, ownerAccountID)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	return business.NewBusinessResponse(businessData), nil
}

// UpdateOwn implements business.BusinessService.
func (s *BusinessServiceImpl) UpdateOwn(ctx context.Context, ownerAccountID string, req business.UpdateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	businessData, err := s.BusinessRepository.GetByOwnerAccountID(ctx, ownerAccountID)
	if err != nil {
		return business.BusinessResponse{}, err
	}

	updated, err := s.BusinessRepository.Update(ctx, businessData.ID, req)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	return business.NewBusinessResponse(updated), nil
}
