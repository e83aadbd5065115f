package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("Payroll not found")
	ErrPayrollPeriodExists  = errors.New("Payroll already exists for this period")
	ErrPayrollAlreadyPaid   = errors.New("Payroll has already been marked as paid")
)
