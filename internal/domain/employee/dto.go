package employee

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryInput struct {
	GrossAmount *decimal.Decimal `json:"gross_amount,omitempty"`
	NetAmount   *decimal.Decimal `json:"net_amount,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	BankName    *string          `json:"bank_name,omitempty"`
	IBAN        *string          `json:"iban,omitempty"`
}

type InsuranceInput struct {
	RegistrationNo *string `json:"registration_no,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeCode      *string         `json:"employee_code,omitempty"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	ProfilePictureURL *string         `json:"profile_picture_url,omitempty"`
	Email             string          `json:"email"`
	PhoneNumber       *string         `json:"phone_number,omitempty"`
	NationalID        *string         `json:"national_id,omitempty"`
	DateOfBirth       *string         `json:"date_of_birth,omitempty"`
	Gender            *string         `json:"gender,omitempty"`
	Address           *string         `json:"address,omitempty"`
	Position          *string         `json:"position,omitempty"`
	Department        *string         `json:"department,omitempty"`
	ContractType      *string         `json:"contract_type,omitempty"`
	WorkMode          *string         `json:"work_mode,omitempty"`
	WorkingHours      *int            `json:"working_hours_per_day,omitempty"`
	StartDate         *string         `json:"start_date,omitempty"`
	Salary            *SalaryInput    `json:"salary,omitempty"`
	Insurance         *InsuranceInput `json:"insurance_info,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// First name
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	// Last name
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	errs = append(errs, validateEmployeeFields(
		r.ContractType, r.WorkMode, r.WorkingHours,
		r.DateOfBirth, r.StartDate, r.Salary, r.Insurance,
	)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeCode      *string         `json:"employee_code,omitempty"`
	FirstName         *string         `json:"first_name,omitempty"`
	LastName          *string         `json:"last_name,omitempty"`
	ProfilePictureURL *string         `json:"profile_picture_url,omitempty"`
	Email             *string         `json:"email,omitempty"`
	PhoneNumber       *string         `json:"phone_number,omitempty"`
	NationalID        *string         `json:"national_id,omitempty"`
	DateOfBirth       *string         `json:"date_of_birth,omitempty"`
	Gender            *string         `json:"gender,omitempty"`
	Address           *string         `json:"address,omitempty"`
	Position          *string         `json:"position,omitempty"`
	Department        *string         `json:"department,omitempty"`
	ContractType      *string         `json:"contract_type,omitempty"`
	WorkMode          *string         `json:"work_mode,omitempty"`
	WorkingHours      *int            `json:"working_hours_per_day,omitempty"`
	StartDate         *string         `json:"start_date,omitempty"`
	Salary            *SalaryInput    `json:"salary,omitempty"`
	Insurance         *InsuranceInput `json:"insurance_info,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	errs = append(errs, validateEmployeeFields(
		r.ContractType, r.WorkMode, r.WorkingHours,
		r.DateOfBirth, r.StartDate, r.Salary, r.Insurance,
	)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateEmployeeFields(contractType, workMode *string, workingHours *int, dateOfBirth, startDate *string, salary *SalaryInput, insurance *InsuranceInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	// Contract type
	if contractType != nil && !IsValidContractType(*contractType) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type is not a known contract type",
		})
	}

	// Work mode
	if workMode != nil && !IsValidWorkMode(*workMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_mode",
			Message: "work_mode is not a known work mode",
		})
	}

	// Working hours
	if workingHours != nil && (*workingHours <= 0 || *workingHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours_per_day",
			Message: "working_hours_per_day must be between 1 and 24",
		})
	}

	// Dates
	if dateOfBirth != nil {
		if _, ok := validator.IsValidDate(*dateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}
	if startDate != nil {
		if _, ok := validator.IsValidDate(*startDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if insurance != nil && insurance.StartDate != nil {
		if _, ok := validator.IsValidDate(*insurance.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "insurance_info.start_date",
				Message: "insurance_info.start_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Salary amounts
	if salary != nil {
		if salary.GrossAmount != nil && salary.GrossAmount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "salary.gross_amount",
				Message: "salary.gross_amount must not be negative",
			})
		}
		if salary.NetAmount != nil && salary.NetAmount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "salary.net_amount",
				Message: "salary.net_amount must not be negative",
			})
		}
	}

	return errs
}

// Filter narrows employee listings.
type Filter struct {
	Search     string
	Department string
	Page       int
	Limit      int
}

type SalaryResponse struct {
	GrossAmount *decimal.Decimal `json:"gross_amount,omitempty"`
	NetAmount   *decimal.Decimal `json:"net_amount,omitempty"`
	Currency    string           `json:"currency"`
	BankName    *string          `json:"bank_name,omitempty"`
	IBAN        *string          `json:"iban,omitempty"`
}

type InsuranceResponse struct {
	RegistrationNo *string `json:"registration_no,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
}

type EmployeeResponse struct {
	ID                string             `json:"id"`
	AccountID         *string            `json:"account_id,omitempty"`
	EmployeeCode      *string            `json:"employee_code,omitempty"`
	FirstName         string             `json:"first_name"`
	LastName          string             `json:"last_name"`
	ProfilePictureURL *string            `json:"profile_picture_url,omitempty"`
	Email             string             `json:"email"`
	PhoneNumber       *string            `json:"phone_number,omitempty"`
	NationalID        *string            `json:"national_id,omitempty"`
	DateOfBirth       *string            `json:"date_of_birth,omitempty"`
	Gender            *string            `json:"gender,omitempty"`
	Address           *string            `json:"address,omitempty"`
	Position          *string            `json:"position,omitempty"`
	Department        *string            `json:"department,omitempty"`
	ContractType      string             `json:"contract_type"`
	WorkMode          string             `json:"work_mode"`
	WorkingHours      int                `json:"working_hours_per_day"`
	StartDate         *string            `json:"start_date,omitempty"`
	TerminationDate   *string            `json:"termination_date,omitempty"`
	Salary            SalaryResponse     `json:"salary"`
	Insurance         *InsuranceResponse `json:"insurance_info,omitempty"`
	IsActive          bool               `json:"is_active"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewEmployeeResponse projects an employee for the given caller role.
// Employee-role callers never see salary amounts or insurance details,
// only the salary currency.
func NewEmployeeResponse(e Employee, role account.Role) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                e.ID,
		AccountID:         e.AccountID,
		EmployeeCode:      e.EmployeeCode,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		ProfilePictureURL: e.ProfilePictureURL,
		Email:             e.Email,
		PhoneNumber:       e.PhoneNumber,
		NationalID:        e.NationalID,
		DateOfBirth:       formatDate(e.DateOfBirth),
		Gender:            e.Gender,
		Address:           e.Address,
		Position:          e.Position,
		Department:        e.Department,
		ContractType:      e.ContractType,
		WorkMode:          e.WorkMode,
		WorkingHours:      e.WorkingHours,
		StartDate:         formatDate(e.StartDate),
		TerminationDate:   formatDate(e.TerminationDate),
		Salary:            SalaryResponse{Currency: e.Salary.Currency},
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}

	if role == account.RoleEmployee {
		return resp
	}

	gross := e.Salary.GrossAmount
	net := e.Salary.NetAmount
	resp.Salary = SalaryResponse{
		GrossAmount: &gross,
		NetAmount:   &net,
		Currency:    e.Salary.Currency,
		BankName:    e.Salary.BankName,
		IBAN:        e.Salary.IBAN,
	}
	resp.Insurance = &InsuranceResponse{
		RegistrationNo: e.Insurance.RegistrationNo,
		StartDate:      formatDate(e.Insurance.StartDate),
	}
	return resp
}

func NewEmployeeResponses(employees []Employee, role account.Role) []EmployeeResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, NewEmployeeResponse(e, role))
	}
	return result
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

type Statistics struct {
	Total         int             `json:"total"`
	Active        int             `json:"active"`
	Inactive      int             `json:"inactive"`
	ByDepartment  map[string]int  `json:"by_department"`
	ByPosition    map[string]int  `json:"by_position"`
	ByGender      map[string]int  `json:"by_gender"`
	AverageSalary decimal.Decimal `json:"average_salary"`
}
