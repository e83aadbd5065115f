package account

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Account Administration
	PermissionAccountManage Permission = "account.manage"

	// Business Management
	PermissionBusinessView   Permission = "business.view"
	PermissionBusinessManage Permission = "business.manage"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Advance Management
	PermissionAdvanceViewOwn Permission = "advance.view_own"
	PermissionAdvanceCreate  Permission = "advance.create"
	PermissionAdvanceViewAll Permission = "advance.view_all"
	PermissionAdvanceDecide  Permission = "advance.decide"

	// Timesheet Management
	PermissionTimesheetViewOwn Permission = "timesheet.view_own"
	PermissionTimesheetCreate  Permission = "timesheet.create"
	PermissionTimesheetViewAll Permission = "timesheet.view_all"

	// Payroll Management
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollViewAll Permission = "payroll.view_all"
	PermissionPayrollManage  Permission = "payroll.manage"

	// Salary Payment Management
	PermissionPaymentViewOwn Permission = "payment.view_own"
	PermissionPaymentViewAll Permission = "payment.view_all"
	PermissionPaymentManage  Permission = "payment.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		// Owner has all permissions
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAccountManage,
		PermissionBusinessView,
		PermissionBusinessManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAdvanceViewOwn,
		PermissionAdvanceCreate,
		PermissionAdvanceViewAll,
		PermissionAdvanceDecide,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionTimesheetViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollManage,
		PermissionPaymentViewOwn,
		PermissionPaymentViewAll,
		PermissionPaymentManage,
	},
	RoleManager: {
		// Manager runs day-to-day personnel operations but cannot
		// administer accounts or the business record itself
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionBusinessView,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionAdvanceViewOwn,
		PermissionAdvanceCreate,
		PermissionAdvanceViewAll,
		PermissionAdvanceDecide,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionTimesheetViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollViewAll,
		PermissionPayrollManage,
		PermissionPaymentViewOwn,
		PermissionPaymentViewAll,
		PermissionPaymentManage,
	},
	RoleEmployee: {
		// Employee can read and request against their own records
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionAdvanceViewOwn,
		PermissionAdvanceCreate,
		PermissionTimesheetViewOwn,
		PermissionTimesheetCreate,
		PermissionPayrollViewOwn,
		PermissionPaymentViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
