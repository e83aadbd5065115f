package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract types
var ContractTypes = []string{
	"Belirsiz Süreli",
	"Belirli Süreli",
	"Kısmi Süreli",
	"Çağrı Üzerine",
	"Deneme Süreli",
}

// Work modes
var WorkModes = []string{
	"Tam Zamanlı",
	"Yarı Zamanlı",
	"Part-time",
	"Hibrit",
	"Uzaktan (Remote)",
}

const (
	DefaultContractType       = "Belirsiz Süreli"
	DefaultWorkMode           = "Tam Zamanlı"
	DefaultCurrency           = "TL"
	DefaultWorkingHoursPerDay = 8
)

func IsValidContractType(contractType string) bool {
	for _, t := range ContractTypes {
		if t == contractType {
			return true
		}
	}
	return false
}

func IsValidWorkMode(workMode string) bool {
	for _, m := range WorkModes {
		if m == workMode {
			return true
		}
	}
	return false
}

type Salary struct {
	GrossAmount decimal.Decimal
	NetAmount   decimal.Decimal
	Currency    string
	BankName    *string
	IBAN        *string
}

type InsuranceInfo struct {
	RegistrationNo *string
	StartDate      *time.Time
}

type Employee struct {
	ID string
	// OwnerAccountID roots the record in its owner's namespace; no query
	// reaches an employee without it.
	OwnerAccountID    string
	AccountID         *string
	EmployeeCode      *string
	FirstName         string
	LastName          string
	ProfilePictureURL *string
	Email             string
	PhoneNumber       *string
	NationalID        *string
	DateOfBirth       *time.Time
	Gender            *string
	Address           *string
	Position          *string
	Department        *string
	ContractType      string
	WorkMode          string
	WorkingHours      int
	StartDate         *time.Time
	TerminationDate   *time.Time
	Salary            Salary
	Insurance         InsuranceInfo
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
