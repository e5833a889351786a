package payroll

import "errors"

var (
	ErrPayrollRecordNotFound      = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists = errors.New("payroll record for this store and period already exists")
	ErrRecordAlreadyConfirmed     = errors.New("payroll record is already confirmed")
	ErrInvalidPeriod              = errors.New("period start must not be after period end")
)
