package payroll

import (
	"strings"

	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputePayrollRequest struct {
	StoreID string `json:"store_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func (r ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "store_id is required"})
	}
	errs = append(errs, validatePeriod(r.From, r.To)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePeriod checks a from/to date pair in isolation.
func ValidatePeriod(from, to string) error {
	if errs := validatePeriod(from, to); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(from, to string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	fromDate, fromOK := validator.IsValidDate(from)
	if !fromOK {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "invalid date format, use YYYY-MM-DD"})
	}
	toDate, toOK := validator.IsValidDate(to)
	if !toOK {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "invalid date format, use YYYY-MM-DD"})
	}
	if fromOK && toOK && fromDate.After(toDate) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: ErrInvalidPeriod.Error()})
	}
	return errs
}

type SaveRecordRequest struct {
	StoreID string `json:"store_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func (r SaveRecordRequest) Validate() error {
	return ComputePayrollRequest(r).Validate()
}

type ConfirmRecordRequest struct {
	ID string `json:"-"`
}

type PayrollDataResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	WeeklyHours   float64 `json:"weekly_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`

	RegularPay  decimal.Decimal `json:"regular_pay"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	NightPay    decimal.Decimal `json:"night_pay"`
	HolidayPay  decimal.Decimal `json:"holiday_pay"`
	TotalPay    decimal.Decimal `json:"total_pay"`

	IsEligibleForHolidayPay bool `json:"is_eligible_for_holiday_pay"`

	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	NetSalary     decimal.Decimal `json:"net_salary"`
}

type PayrollTotalsResponse struct {
	TotalEmployees int `json:"total_employees"`

	WeeklyHours   float64 `json:"weekly_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`

	RegularPay  decimal.Decimal `json:"regular_pay"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	NightPay    decimal.Decimal `json:"night_pay"`
	HolidayPay  decimal.Decimal `json:"holiday_pay"`
	TotalPay    decimal.Decimal `json:"total_pay"`

	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	NetSalary     decimal.Decimal `json:"net_salary"`
}

type StorePayrollResponse struct {
	StoreID   string                `json:"store_id"`
	StoreName string                `json:"store_name"`
	From      string                `json:"from"`
	To        string                `json:"to"`
	Data      []PayrollDataResponse `json:"data"`
	Totals    PayrollTotalsResponse `json:"totals"`
}

// PayrollSummaryResponse is the rollup across every store of the owner,
// with grand totals over all employees.
type PayrollSummaryResponse struct {
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	Stores      []StorePayrollResponse `json:"stores"`
	GrandTotals PayrollTotalsResponse  `json:"grand_totals"`
}

type PayrollRecordResponse struct {
	ID          string                `json:"id"`
	StoreID     string                `json:"store_id"`
	StoreName   string                `json:"store_name,omitempty"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Status      string                `json:"status"`
	Data        []PayrollDataResponse `json:"data"`
	Totals      PayrollTotalsResponse `json:"totals"`
	ConfirmedAt *string               `json:"confirmed_at,omitempty"`
	CreatedAt   string                `json:"created_at"`
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
}

type RecordFilter struct {
	StoreID string
	Status  string
	Page    int
	Limit   int
}

func (f RecordFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Status != "" {
		status := strings.ToLower(f.Status)
		if status != string(RecordStatusDraft) && status != string(RecordStatusConfirmed) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be draft or confirmed"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
