package employee

import (
	"context"
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, ownerAccountID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		OwnerAccountID:    ownerAccountID,
		EmployeeCode:      req.EmployeeCode,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		ProfilePictureURL: req.ProfilePictureURL,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		NationalID:        req.NationalID,
		DateOfBirth:       parseDate(req.DateOfBirth),
		Gender:            req.Gender,
		Address:           req.Address,
		Position:          req.Position,
		Department:        req.Department,
		ContractType:      employee.DefaultContractType,
		WorkMode:          employee.DefaultWorkMode,
		WorkingHours:      employee.DefaultWorkingHoursPerDay,
		StartDate:         parseDate(req.StartDate),
		Salary: employee.Salary{
			Currency: employee.DefaultCurrency,
		},
	}

	if req.ContractType != nil {
		newEmployee.ContractType = *req.ContractType
	}
	if req.WorkMode != nil {
		newEmployee.WorkMode = *req.WorkMode
	}
	if req.WorkingHours != nil {
		newEmployee.WorkingHours = *req.WorkingHours
	}
	if req.Salary != nil {
		if req.Salary.GrossAmount != nil {
			newEmployee.Salary.GrossAmount = *req.Salary.GrossAmount
		}
		if req.Salary.NetAmount != nil {
			newEmployee.Salary.NetAmount = *req.Salary.NetAmount
		}
		if req.Salary.Currency != nil {
			newEmployee.Salary.Currency = *req.Salary.Currency
		}
		newEmployee.Salary.BankName = req.Salary.BankName
		newEmployee.Salary.IBAN = req.Salary.IBAN
	}
	if req.Insurance != nil {
		newEmployee.Insurance = employee.InsuranceInfo{
			RegistrationNo: req.Insurance.RegistrationNo,
			StartDate:      parseDate(req.Insurance.StartDate),
		}
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(created, account.RoleOwner), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, actor account.Actor, scope account.Scope) (employee.EmployeeResponse, error) {
	employeeData, err := s.employeeRepo.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(employeeData, actor.Role), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, ownerAccountID string, filter employee.Filter) ([]employee.EmployeeResponse, int64, error) {
	normalizeFilter(&filter)

	employees, total, err := s.employeeRepo.List(ctx, ownerAccountID, filter)
	if err != nil {
		return nil, 0, err
	}
	return employee.NewEmployeeResponses(employees, account.RoleOwner), total, nil
}

// ListDeleted implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDeleted(ctx context.Context, ownerAccountID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListDeleted(ctx, ownerAccountID)
	if err != nil {
		return nil, err
	}
	return employee.NewEmployeeResponses(employees, account.RoleOwner), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, actor account.Actor, scope account.Scope, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated, actor.Role), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, ownerAccountID, id string) (employee.EmployeeResponse, error) {
	employeeData, err := s.employeeRepo.GetByIDAny(ctx, ownerAccountID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !employeeData.IsActive {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyInactive
	}

	terminationDate := time.Now().UTC()
	updated, err := s.employeeRepo.SetActive(ctx, ownerAccountID, id, false, &terminationDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated, account.RoleOwner), nil
}

// Restore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Restore(ctx context.Context, ownerAccountID, id string) (employee.EmployeeResponse, error) {
	employeeData, err := s.employeeRepo.GetByIDAny(ctx, ownerAccountID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if employeeData.IsActive {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotDeleted
	}

	updated, err := s.employeeRepo.SetActive(ctx, ownerAccountID, id, true, nil)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated, account.RoleOwner), nil
}

// Statistics implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Statistics(ctx context.Context, ownerAccountID string) (employee.Statistics, error) {
	employees, err := s.employeeRepo.ListAll(ctx, ownerAccountID)
	if err != nil {
		return employee.Statistics{}, err
	}

	stats := employee.Statistics{
		ByDepartment: make(map[string]int),
		ByPosition:   make(map[string]int),
		ByGender:     make(map[string]int),
	}

	salarySum := decimal.Zero
	salaryCount := 0

	for _, e := range employees {
		stats.Total++
		if e.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
			continue
		}

		if e.Department != nil && *e.Department != "" {
			stats.ByDepartment[*e.Department]++
		}
		if e.Position != nil && *e.Position != "" {
			stats.ByPosition[*e.Position]++
		}
		if e.Gender != nil && *e.Gender != "" {
			stats.ByGender[*e.Gender]++
		}

		if e.Salary.GrossAmount.IsPositive() {
			salarySum = salarySum.Add(e.Salary.GrossAmount)
			salaryCount++
		}
	}

	if salaryCount > 0 {
		stats.AverageSalary = salarySum.DivRound(decimal.NewFromInt(int64(salaryCount)), 2)
	}

	return stats, nil
}

func normalizeFilter(filter *employee.Filter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
