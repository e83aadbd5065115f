package auth

import (
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validatePassword(r.Password)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Employee ID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validatePassword(r.Password)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateEmail(r.Email)...)

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateEmail(email string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if len(email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}
	if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	return errs
}

func validatePassword(password string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	return errs
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type LoginResponse struct {
	Account account.AccountResponse `json:"account"`
	Token   TokenResponse           `json:"token"`
}

type RegisterResponse struct {
	Account  account.AccountResponse   `json:"account"`
	Business business.BusinessResponse `json:"business"`
	Token    TokenResponse             `json:"token"`
}

type RegisterEmployeeResponse struct {
	Account account.AccountResponse `json:"account"`
	Token   TokenResponse           `json:"token"`
}
