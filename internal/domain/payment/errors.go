package payment

import "errors"

var (
	ErrSalaryPaymentNotFound = errors.New("Salary payment not found")
)
