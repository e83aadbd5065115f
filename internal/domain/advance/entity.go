package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Advance struct {
	ID             string
	OwnerAccountID string
	EmployeeID     string
	Amount         decimal.Decimal
	Reason         *string
	Status         Status
	RequestDate    time.Time
	ResponseDate   *time.Time
	ApprovedBy     *string
	ApprovalNote   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *Advance) IsDecided() bool {
	return a.Status != StatusPending
}
