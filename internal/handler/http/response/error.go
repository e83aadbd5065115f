package response

import (
	"errors"
	"net/http"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/advance"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/leave"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payment"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payroll"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/timesheet"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Access scope errors
	case errors.Is(err, employee.ErrOwnRecordsOnly):
		Forbidden(w, err.Error())
	case errors.Is(err, account.ErrOwnerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, account.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance request not found")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet entry not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payment.ErrSalaryPaymentNotFound):
		NotFound(w, "Salary payment not found")

	// Conflicts
	case errors.Is(err, account.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, account.ErrAccountAlreadyInactive):
		Conflict(w, "Account is already deactivated")
	case errors.Is(err, account.ErrAccountNotDeleted):
		Conflict(w, "Account is not deactivated")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already deactivated")
	case errors.Is(err, employee.ErrEmployeeNotDeleted):
		Conflict(w, "Employee is not deactivated")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Only pending leave requests can be modified")
	case errors.Is(err, advance.ErrAdvanceAlreadyProcessed):
		Conflict(w, "Advance request already processed")
	case errors.Is(err, advance.ErrAdvanceNotPending):
		Conflict(w, "Only pending advance requests can be modified")
	case errors.Is(err, payroll.ErrPayrollPeriodExists):
		Conflict(w, "Payroll already exists for this period")
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		Conflict(w, "Payroll has already been marked as paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
