package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave types, daily / annual / excuse
var Types = []string{"günlük", "yıllık", "mazeret"}

func IsValidType(t string) bool {
	for _, known := range Types {
		if known == t {
			return true
		}
	}
	return false
}

func IsValidDecision(s string) bool {
	return Status(s) == StatusApproved || Status(s) == StatusRejected
}

type Leave struct {
	ID             string
	OwnerAccountID string
	EmployeeID     string
	Type           string
	StartDate      time.Time
	EndDate        time.Time
	Reason         *string
	Status         Status
	ApprovedBy     *string
	ApprovedAt     *time.Time
	ApprovalNote   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Days counts calendar days covered by the leave, both ends inclusive.
func (l *Leave) Days() int {
	return DaysBetween(l.StartDate, l.EndDate)
}

func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func (l *Leave) IsDecided() bool {
	return l.Status != StatusPending
}
