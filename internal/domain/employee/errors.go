package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeNameExists      = errors.New("employee with this name already exists in the store")
	ErrNegativeHourlyWage      = errors.New("hourly wage must not be negative")
	ErrFutureHireDate          = errors.New("hire date cannot be in the future")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrUnauthorized            = errors.New("unauthorized to access this employee")
)
