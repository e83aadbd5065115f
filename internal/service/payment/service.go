package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payment"
	"github.com/shopspring/decimal"
)

type SalaryPaymentServiceImpl struct {
	payment.SalaryPaymentRepository
}

func NewSalaryPaymentService(paymentRepository payment.SalaryPaymentRepository) payment.SalaryPaymentService {
	return &SalaryPaymentServiceImpl{
		SalaryPaymentRepository: paymentRepository,
	}
}

// Create implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) Create(ctx context.Context, scope account.Scope, req payment.CreateSalaryPaymentRequest) (payment.SalaryPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.SalaryPaymentResponse{}, err
	}

	newPayment := payment.SalaryPayment{
		OwnerAccountID: scope.OwnerAccountID,
		EmployeeID:     scope.EmployeeID,
		PayrollID:      req.PayrollID,
		Amount:         req.Amount,
		Currency:       payment.DefaultCurrency,
		PaymentDate:    time.Now().UTC(),
		PaymentMethod:  payment.DefaultMethod,
		Description:    req.Description,
	}
	if req.Currency != nil {
		newPayment.Currency = *req.Currency
	}
	if req.PaymentMethod != nil {
		newPayment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDate != nil {
		if t, err := time.Parse("2006-01-02", *req.PaymentDate); err == nil {
			newPayment.PaymentDate = t
		}
	}

	created, err := s.SalaryPaymentRepository.Create(ctx, newPayment)
	if err != nil {
		return payment.SalaryPaymentResponse{}, err
	}
	return payment.NewSalaryPaymentResponse(created), nil
}

// Get implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) Get(ctx context.Context, scope account.Scope, id string) (payment.SalaryPaymentResponse, error) {
	paymentData, err := s.SalaryPaymentRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return payment.SalaryPaymentResponse{}, err
	}
	return payment.NewSalaryPaymentResponse(paymentData), nil
}

// List implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) List(ctx context.Context, scope account.Scope, filter payment.Filter) ([]payment.SalaryPaymentResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payments, total, err := s.SalaryPaymentRepository.List(ctx, scope.OwnerAccountID, scope.EmployeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return payment.NewSalaryPaymentResponses(payments), total, nil
}

// Update implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) Update(ctx context.Context, scope account.Scope, id string, req payment.UpdateSalaryPaymentRequest) (payment.SalaryPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.SalaryPaymentResponse{}, err
	}

	updated, err := s.SalaryPaymentRepository.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, id, req)
	if err != nil {
		return payment.SalaryPaymentResponse{}, err
	}
	return payment.NewSalaryPaymentResponse(updated), nil
}

// Delete implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) Delete(ctx context.Context, scope account.Scope, id string) error {
	return s.SalaryPaymentRepository.Delete(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
}

// Statistics implements payment.SalaryPaymentService.
func (s *SalaryPaymentServiceImpl) Statistics(ctx context.Context, scope account.Scope, year int) (payment.Statistics, error) {
	payments, err := s.SalaryPaymentRepository.ListByEmployee(ctx, scope.OwnerAccountID, scope.EmployeeID, year)
	if err != nil {
		return payment.Statistics{}, err
	}

	stats := payment.Statistics{
		TotalAmount:    decimal.Zero,
		AveragePayment: decimal.Zero,
		ByMethod:       make(map[string]payment.MethodTotals),
		ByMonth:        make(map[string]payment.MethodTotals),
	}

	for _, p := range payments {
		stats.TotalPayments++
		stats.TotalAmount = stats.TotalAmount.Add(p.Amount)

		method := stats.ByMethod[p.PaymentMethod]
		method.Count++
		method.Amount = method.Amount.Add(p.Amount)
		stats.ByMethod[p.PaymentMethod] = method

		monthKey := fmt.Sprintf("%04d-%02d", p.PaymentDate.Year(), int(p.PaymentDate.Month()))
		month := stats.ByMonth[monthKey]
		month.Count++
		month.Amount = month.Amount.Add(p.Amount)
		stats.ByMonth[monthKey] = month
	}

	if stats.TotalPayments > 0 {
		stats.AveragePayment = stats.TotalAmount.DivRound(decimal.NewFromInt(int64(stats.TotalPayments)), 2)
	}

	return stats, nil
}
