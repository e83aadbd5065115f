package employee

import (
	"testing"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployee() Employee {
	bank := "Ziraat Bankası"
	iban := "TR330006100519786457841326"
	regNo := "12345678901"
	return Employee{
		ID:           "emp-1",
		FirstName:    "Ayşe",
		LastName:     "Yılmaz",
		Email:        "ayse@example.com",
		ContractType: DefaultContractType,
		WorkMode:     DefaultWorkMode,
		WorkingHours: DefaultWorkingHoursPerDay,
		Salary: Salary{
			GrossAmount: decimal.RequireFromString("45000"),
			NetAmount:   decimal.RequireFromString("38000"),
			Currency:    DefaultCurrency,
			BankName:    &bank,
			IBAN:        &iban,
		},
		Insurance: InsuranceInfo{RegistrationNo: &regNo},
		IsActive:  true,
	}
}

func TestNewEmployeeResponse_ManagerSeesSalary(t *testing.T) {
	resp := NewEmployeeResponse(sampleEmployee(), account.RoleManager)

	require.NotNil(t, resp.Salary.GrossAmount)
	assert.True(t, resp.Salary.GrossAmount.Equal(decimal.RequireFromString("45000")))
	require.NotNil(t, resp.Salary.NetAmount)
	assert.Equal(t, DefaultCurrency, resp.Salary.Currency)
	assert.NotNil(t, resp.Salary.BankName)
	assert.NotNil(t, resp.Salary.IBAN)
	require.NotNil(t, resp.Insurance)
	assert.NotNil(t, resp.Insurance.RegistrationNo)
}

func TestNewEmployeeResponse_EmployeeSeesOnlyCurrency(t *testing.T) {
	resp := NewEmployeeResponse(sampleEmployee(), account.RoleEmployee)

	assert.Nil(t, resp.Salary.GrossAmount)
	assert.Nil(t, resp.Salary.NetAmount)
	assert.Nil(t, resp.Salary.BankName)
	assert.Nil(t, resp.Salary.IBAN)
	assert.Equal(t, DefaultCurrency, resp.Salary.Currency)
	assert.Nil(t, resp.Insurance)
}

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{
		FirstName: "Ayşe",
		LastName:  "Yılmaz",
		Email:     "ayse@example.com",
	}
	assert.NoError(t, valid.Validate())

	missing := CreateEmployeeRequest{Email: "not-an-email"}
	assert.Error(t, missing.Validate())

	badContract := valid
	unknown := "freelance"
	badContract.ContractType = &unknown
	assert.Error(t, badContract.Validate())

	badHours := valid
	hours := 30
	badHours.WorkingHours = &hours
	assert.Error(t, badHours.Validate())

	negativeSalary := valid
	gross := decimal.RequireFromString("-1")
	negativeSalary.Salary = &SalaryInput{GrossAmount: &gross}
	assert.Error(t, negativeSalary.Validate())
}
