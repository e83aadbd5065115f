package leave

import (
	"context"
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, scope account.Scope, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if err := leave.ValidateDates(startDate, endDate); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Requests always enter the queue pending, regardless of who files them.
	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		OwnerAccountID: scope.OwnerAccountID,
		EmployeeID:     scope.EmployeeID,
		Type:           req.Type,
		StartDate:      startDate,
		EndDate:        endDate,
		Reason:         req.Reason,
		Status:         leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, scope account.Scope, id string) (leave.LeaveResponse, error) {
	leaveData, err := s.LeaveRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(leaveData), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, scope account.Scope, filter leave.Filter) ([]leave.LeaveResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	leaves, total, err := s.LeaveRepository.List(ctx, scope.OwnerAccountID, scope.EmployeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return leave.NewLeaveResponses(leaves), total, nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, actor account.Actor, scope account.Scope, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	leaveData, err := s.LeaveRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !actor.IsManager() && leaveData.IsDecided() {
		return leave.LeaveResponse{}, leave.ErrLeaveNotPending
	}

	startDate := leaveData.StartDate
	endDate := leaveData.EndDate
	if req.StartDate != nil {
		startDate, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		endDate, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if req.StartDate != nil || req.EndDate != nil {
		if err := leave.ValidateDates(startDate, endDate); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	updated, err := s.LeaveRepository.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, id, req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(updated), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, actor account.Actor, scope account.Scope, id string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.LeaveRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id); err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRepository.Decide(ctx, scope.OwnerAccountID, scope.EmployeeID, id, leave.Status(req.Status), actor.AccountID, req.ApprovalNote)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(decided), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actor account.Actor, scope account.Scope, id string) error {
	leaveData, err := s.LeaveRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return err
	}
	if !actor.IsManager() && leaveData.IsDecided() {
		return leave.ErrLeaveNotPending
	}

	return s.LeaveRepository.Delete(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
}

// Statistics implements leave.LeaveService.
func (s *LeaveServiceImpl) Statistics(ctx context.Context, scope account.Scope, year int) (leave.Statistics, error) {
	leaves, err := s.LeaveRepository.ListByEmployee(ctx, scope.OwnerAccountID, scope.EmployeeID)
	if err != nil {
		return leave.Statistics{}, err
	}

	stats := leave.Statistics{
		ByType:   make(map[string]int),
		ByStatus: make(map[string]int),
	}

	for _, l := range leaves {
		if year > 0 && l.StartDate.Year() != year {
			continue
		}

		stats.Total++
		stats.ByType[l.Type]++
		stats.ByStatus[string(l.Status)]++

		days := l.Days()
		stats.TotalDays += days

		switch l.Status {
		case leave.StatusApproved:
			stats.Approved++
			stats.ApprovedDays += days
		case leave.StatusPending:
			stats.Pending++
		case leave.StatusRejected:
			stats.Rejected++
		}
	}

	return stats, nil
}
