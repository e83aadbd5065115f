package account

// Actor identifies the authenticated caller as seen by the service layer.
type Actor struct {
	AccountID  string
	Role       Role
	EmployeeID *string
}

// IsManager checks if the actor is a manager or owner
func (a Actor) IsManager() bool {
	return a.Role == RoleManager || a.Role == RoleOwner
}

// Scope pins a request to one employee under one owning account. All
// employee-scoped repository queries filter by both ids.
type Scope struct {
	OwnerAccountID string
	EmployeeID     string
}
