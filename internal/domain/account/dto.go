package account

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

type AccountResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	BusinessID  *string    `json:"business_id,omitempty"`
	EmployeeID  *string    `json:"employee_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewAccountResponse projects an account without its credential fields.
func NewAccountResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        a.Role,
		BusinessID:  a.BusinessID,
		EmployeeID:  a.EmployeeID,
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewAccountResponses(accounts []Account) []AccountResponse {
	result := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, NewAccountResponse(a))
	}
	return result
}

type UpdateAccountRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Role == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name or role is required",
		})
	}

	// Name
	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	// Role
	if r.Role != nil && !IsValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of owner, manager, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAccountPatch carries the fields a repository update may touch.
type UpdateAccountPatch struct {
	Name *string
	Role *Role
}
