package account

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Business owner - full access
	RoleManager  Role = "manager"  // Can manage personnel and approve requests
	RoleEmployee Role = "employee" // Regular employee, own records only
)

// IsValidRole reports whether s is one of the known role literals.
func IsValidRole(s string) bool {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	BusinessID   *string
	EmployeeID   *string
	// OwnerAccountID is set on employee accounts when they are linked to an
	// employee record; it pins the tenancy scope the account may reach.
	OwnerAccountID *string
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsOwner checks if the account is a business owner
func (a *Account) IsOwner() bool {
	return a.Role == RoleOwner
}

// IsManager checks if the account is a manager or owner
func (a *Account) IsManager() bool {
	return a.Role == RoleManager || a.Role == RoleOwner
}

// CanApprove checks if the account can decide leave/advance requests
func (a *Account) CanApprove() bool {
	return a.IsManager()
}
