package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		name       string
		role       Role
		permission Permission
		want       bool
	}{
		{"owner manages accounts", RoleOwner, PermissionAccountManage, true},
		{"owner manages business", RoleOwner, PermissionBusinessManage, true},
		{"manager views business", RoleManager, PermissionBusinessView, true},
		{"manager cannot manage business", RoleManager, PermissionBusinessManage, false},
		{"manager cannot manage accounts", RoleManager, PermissionAccountManage, false},
		{"manager decides leaves", RoleManager, PermissionLeaveDecide, true},
		{"manager manages payroll", RoleManager, PermissionPayrollManage, true},
		{"employee creates own leave", RoleEmployee, PermissionLeaveCreate, true},
		{"employee cannot decide leaves", RoleEmployee, PermissionLeaveDecide, false},
		{"employee cannot decide advances", RoleEmployee, PermissionAdvanceDecide, false},
		{"employee records own timesheet", RoleEmployee, PermissionTimesheetCreate, true},
		{"employee cannot view all employees", RoleEmployee, PermissionEmployeeViewAll, false},
		{"employee cannot manage payroll", RoleEmployee, PermissionPayrollManage, false},
		{"employee cannot manage payments", RoleEmployee, PermissionPaymentManage, false},
		{"unknown role has nothing", Role("intern"), PermissionViewOwnProfile, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HasPermission(c.role, c.permission))
		})
	}
}

func TestActor_IsManager(t *testing.T) {
	assert.True(t, (&Actor{Role: RoleOwner}).IsManager())
	assert.True(t, (&Actor{Role: RoleManager}).IsManager())
	assert.False(t, (&Actor{Role: RoleEmployee}).IsManager())
}
