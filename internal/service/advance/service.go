package advance

import (
	"context"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/advance"
	"github.com/shopspring/decimal"
)

type AdvanceServiceImpl struct {
	advance.AdvanceRepository
}

func NewAdvanceService(advanceRepository advance.AdvanceRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		AdvanceRepository: advanceRepository,
	}
}

// Create implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Create(ctx context.Context, scope account.Scope, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	// Requests always enter the queue pending, regardless of who files them.
	created, err := s.AdvanceRepository.Create(ctx, advance.Advance{
		OwnerAccountID: scope.OwnerAccountID,
		EmployeeID:     scope.EmployeeID,
		Amount:         req.Amount,
		Reason:         req.Reason,
		Status:         advance.StatusPending,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(created), nil
}

// Get implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Get(ctx context.Context, scope account.Scope, id string) (advance.AdvanceResponse, error) {
	advanceData, err := s.AdvanceRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(advanceData), nil
}

// List implements advance.AdvanceService.
func (s *AdvanceServiceImpl) List(ctx context.Context, scope account.Scope, filter advance.Filter) ([]advance.AdvanceResponse, int64, error) {
	normalizeFilter(&filter)

	advances, total, err := s.AdvanceRepository.List(ctx, scope.OwnerAccountID, scope.EmployeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return advance.NewAdvanceResponses(advances), total, nil
}

// ListBusiness implements advance.AdvanceService.
func (s *AdvanceServiceImpl) ListBusiness(ctx context.Context, ownerAccountID string, filter advance.Filter) ([]advance.AdvanceResponse, int64, error) {
	normalizeFilter(&filter)

	advances, total, err := s.AdvanceRepository.ListByOwner(ctx, ownerAccountID, filter)
	if err != nil {
		return nil, 0, err
	}
	return advance.NewAdvanceResponses(advances), total, nil
}

// Update implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Update(ctx context.Context, actor account.Actor, scope account.Scope, id string, req advance.UpdateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	advanceData, err := s.AdvanceRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !actor.IsManager() && advanceData.IsDecided() {
		return advance.AdvanceResponse{}, advance.ErrAdvanceNotPending
	}

	updated, err := s.AdvanceRepository.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, id, req)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(updated), nil
}

// Decide implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Decide(ctx context.Context, actor account.Actor, scope account.Scope, id string, req advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.AdvanceRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id); err != nil {
		return advance.AdvanceResponse{}, err
	}

	decided, err := s.AdvanceRepository.Decide(ctx, scope.OwnerAccountID, scope.EmployeeID, id, advance.Status(req.Status), actor.AccountID, req.ApprovalNote)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(decided), nil
}

// Delete implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Delete(ctx context.Context, actor account.Actor, scope account.Scope, id string) error {
	advanceData, err := s.AdvanceRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return err
	}
	if !actor.IsManager() && advanceData.IsDecided() {
		return advance.ErrAdvanceNotPending
	}

	return s.AdvanceRepository.Delete(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
}

// Statistics implements advance.AdvanceService.
func (s *AdvanceServiceImpl) Statistics(ctx context.Context, scope account.Scope, year int) (advance.Statistics, error) {
	advances, err := s.AdvanceRepository.ListByEmployee(ctx, scope.OwnerAccountID, scope.EmployeeID)
	if err != nil {
		return advance.Statistics{}, err
	}

	stats := advance.Statistics{
		ByStatus:       make(map[string]int),
		TotalAmount:    decimal.Zero,
		ApprovedAmount: decimal.Zero,
		PendingAmount:  decimal.Zero,
		RejectedAmount: decimal.Zero,
	}

	for _, a := range advances {
		if year > 0 && a.RequestDate.Year() != year {
			continue
		}

		stats.Total++
		stats.ByStatus[string(a.Status)]++
		stats.TotalAmount = stats.TotalAmount.Add(a.Amount)

		switch a.Status {
		case advance.StatusApproved:
			stats.Approved++
			stats.ApprovedAmount = stats.ApprovedAmount.Add(a.Amount)
		case advance.StatusPending:
			stats.Pending++
			stats.PendingAmount = stats.PendingAmount.Add(a.Amount)
		case advance.StatusRejected:
			stats.Rejected++
			stats.RejectedAmount = stats.RejectedAmount.Add(a.Amount)
		}
	}

	return stats, nil
}

func normalizeFilter(filter *advance.Filter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
}
