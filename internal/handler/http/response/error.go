package response

import (
	"errors"
	"net/http"

	"github.com/agi040922/HR-Management-sub002/internal/domain/employee"
	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
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
	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store name already in use")
	case errors.Is(err, store.ErrStoreInactive):
		BadRequest(w, "Store is inactive", nil)
	case errors.Is(err, store.ErrUnauthorized):
		Forbidden(w, "Store does not belong to this account")
	case errors.Is(err, store.ErrInvalidTimezone):
		BadRequest(w, "Invalid timezone name", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee with this name already exists in the store")
	case errors.Is(err, employee.ErrNegativeHourlyWage):
		BadRequest(w, "Hourly wage must not be negative", nil)
	case errors.Is(err, employee.ErrFutureHireDate):
		BadRequest(w, "Hire date cannot be in the future", nil)
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Employee does not belong to this account")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTemplateNotFound):
		NotFound(w, "Weekly template not found")
	case errors.Is(err, schedule.ErrNoActiveTemplate):
		NotFound(w, "Store has no active weekly template")
	case errors.Is(err, schedule.ErrTemplateNameExists):
		Conflict(w, "Weekly template name already in use")
	case errors.Is(err, schedule.ErrExceptionNotFound):
		NotFound(w, "Schedule exception not found")
	case errors.Is(err, schedule.ErrExceptionExists):
		Conflict(w, "An exception for this date and employee already exists")
	case errors.Is(err, schedule.ErrInvalidDateFormat),
		errors.Is(err, schedule.ErrInvalidPeriod),
		errors.Is(err, schedule.ErrInvalidDayOfWeek),
		errors.Is(err, schedule.ErrInvalidClockTime),
		errors.Is(err, schedule.ErrInvalidExceptionType),
		errors.Is(err, schedule.ErrBreakOutsideShift):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record for this store and period already exists")
	case errors.Is(err, payroll.ErrRecordAlreadyConfirmed):
		Conflict(w, "Payroll record is already confirmed")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
