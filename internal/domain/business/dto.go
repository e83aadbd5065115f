package business

import (
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

type BusinessResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	LogoURL        string    `json:"logo_url"`
	OwnerAccountID *string   `json:"owner_account_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewBusinessResponse(b Business) BusinessResponse {
	return BusinessResponse{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		Phone:          b.Phone,
		Email:          b.Email,
		LogoURL:        b.LogoURL,
		OwnerAccountID: b.OwnerAccountID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type UpdateBusinessRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

func (r *UpdateBusinessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name == nil && r.Address == nil && r.Phone == nil && r.Email == nil && r.LogoURL == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "at least one field is required",
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

	// Email
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
