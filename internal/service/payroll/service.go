package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, scope account.Scope, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	// Pre-check for a readable conflict; the per-period unique index catches
	// concurrent creates the check cannot see.
	if _, err := s.payrollRepo.GetByPeriod(ctx, scope.OwnerAccountID, scope.EmployeeID, req.PeriodMonth, req.PeriodYear); err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollPeriodExists
	} else if err != payroll.ErrPayrollNotFound {
		return payroll.PayrollResponse{}, err
	}

	newPayroll := payroll.Payroll{
		OwnerAccountID: scope.OwnerAccountID,
		EmployeeID:     scope.EmployeeID,
		PeriodMonth:    req.PeriodMonth,
		PeriodYear:     req.PeriodYear,
		GrossSalary:    req.GrossSalary,
		Currency:       payroll.DefaultCurrency,
		PayrollDate:    time.Now().UTC(),
		Status:         payroll.StatusPending,
	}

	if req.TotalDeductions != nil {
		newPayroll.TotalDeductions = *req.TotalDeductions
	}
	if req.InsuranceEmployee != nil {
		newPayroll.InsuranceEmployee = *req.InsuranceEmployee
	}
	if req.InsuranceEmployer != nil {
		newPayroll.InsuranceEmployer = *req.InsuranceEmployer
	}
	if req.TaxDeduction != nil {
		newPayroll.TaxDeduction = *req.TaxDeduction
	}
	if req.OtherAdditions != nil {
		newPayroll.OtherAdditions = *req.OtherAdditions
	}
	if req.Currency != nil {
		newPayroll.Currency = *req.Currency
	}
	if req.PayrollDate != nil {
		if t, err := time.Parse("2006-01-02", *req.PayrollDate); err == nil {
			newPayroll.PayrollDate = t
		}
	}

	if req.NetSalary != nil {
		newPayroll.NetSalary = *req.NetSalary
	} else {
		newPayroll.NetSalary = payroll.CalculateNetSalary(newPayroll.GrossSalary, newPayroll.TotalDeductions, newPayroll.OtherAdditions)
	}

	created, err := s.payrollRepo.Create(ctx, newPayroll)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, scope account.Scope, id string) (payroll.PayrollResponse, error) {
	payrollData, err := s.payrollRepo.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(payrollData), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, scope account.Scope, filter payroll.Filter) ([]payroll.PayrollResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 12
	}

	payrolls, total, err := s.payrollRepo.List(ctx, scope.OwnerAccountID, scope.EmployeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return payroll.NewPayrollResponses(payrolls), total, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, scope account.Scope, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var netSalary *decimal.Decimal
	if req.TouchesSalaryComponents() {
		current, err := s.payrollRepo.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}

		gross := current.GrossSalary
		deductions := current.TotalDeductions
		additions := current.OtherAdditions
		if req.GrossSalary != nil {
			gross = *req.GrossSalary
		}
		if req.TotalDeductions != nil {
			deductions = *req.TotalDeductions
		}
		if req.OtherAdditions != nil {
			additions = *req.OtherAdditions
		}

		net := payroll.CalculateNetSalary(gross, deductions, additions)
		netSalary = &net
	}

	updated, err := s.payrollRepo.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, id, req, netSalary)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(updated), nil
}

// MarkAsPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkAsPaid(ctx context.Context, scope account.Scope, id string) (payroll.PayrollResponse, error) {
	if _, err := s.payrollRepo.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id); err != nil {
		return payroll.PayrollResponse{}, err
	}

	paid, err := s.payrollRepo.MarkAsPaid(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(paid), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, scope account.Scope, id string) error {
	return s.payrollRepo.Delete(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
}

// Statistics implements payroll.PayrollService.
func (s *PayrollServiceImpl) Statistics(ctx context.Context, scope account.Scope, year string) (payroll.Statistics, error) {
	payrolls, err := s.payrollRepo.ListByEmployeeYear(ctx, scope.OwnerAccountID, scope.EmployeeID, year)
	if err != nil {
		return payroll.Statistics{}, err
	}

	stats := payroll.Statistics{
		TotalGrossSalary:       decimal.Zero,
		TotalNetSalary:         decimal.Zero,
		TotalDeductions:        decimal.Zero,
		TotalTaxDeductions:     decimal.Zero,
		TotalInsurancePremiums: decimal.Zero,
		ByStatus:               make(map[string]int),
		ByMonth:                make(map[string]payroll.MonthTotals),
	}

	for _, p := range payrolls {
		stats.TotalPayrolls++
		stats.ByStatus[string(p.Status)]++
		if p.IsPaid() {
			stats.PaidPayrolls++
		} else {
			stats.PendingPayrolls++
		}

		stats.TotalGrossSalary = stats.TotalGrossSalary.Add(p.GrossSalary)
		stats.TotalNetSalary = stats.TotalNetSalary.Add(p.NetSalary)
		stats.TotalDeductions = stats.TotalDeductions.Add(p.TotalDeductions)
		stats.TotalTaxDeductions = stats.TotalTaxDeductions.Add(p.TaxDeduction)
		stats.TotalInsurancePremiums = stats.TotalInsurancePremiums.Add(p.InsuranceEmployee).Add(p.InsuranceEmployer)

		stats.ByMonth[p.PeriodMonth] = payroll.MonthTotals{
			GrossSalary: p.GrossSalary,
			NetSalary:   p.NetSalary,
			Status:      p.Status,
		}
	}

	return stats, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, scope account.Scope, id string) ([]byte, string, error) {
	payrollData, err := s.payrollRepo.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return nil, "", err
	}

	employeeData, err := s.employeeRepo.GetByIDAny(ctx, scope.OwnerAccountID, scope.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeData.FullName()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", employeeData.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", payrollData.Period()))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross salary: %s %s", payrollData.GrossSalary.StringFixed(2), payrollData.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s %s", payrollData.TotalDeductions.StringFixed(2), payrollData.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax deduction: %s %s", payrollData.TaxDeduction.StringFixed(2), payrollData.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Insurance (employee share): %s %s", payrollData.InsuranceEmployee.StringFixed(2), payrollData.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Other additions: %s %s", payrollData.OtherAdditions.StringFixed(2), payrollData.Currency))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s %s", payrollData.NetSalary.StringFixed(2), payrollData.Currency))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", payrollData.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", employeeData.ID, payrollData.Period())
	return buf.Bytes(), filename, nil
}
