package employee

import (
	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	StoreID     string          `json:"store_id"`
	Name        string          `json:"name"`
	Position    *string         `json:"position,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	HireDate    string          `json:"hire_date"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "store_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "hourly wage must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
	HourlyWage  *decimal.Decimal `json:"hourly_wage,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.HourlyWage != nil && r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_wage", Message: "hourly wage must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	Name        string          `json:"name"`
	Position    *string         `json:"position,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	HireDate    string          `json:"hire_date"`
	IsActive    bool            `json:"is_active"`

	// True when the wage sits below the configured statutory minimum.
	// Informational only; the engine never blocks on it.
	BelowMinimumWage bool `json:"below_minimum_wage"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
}
