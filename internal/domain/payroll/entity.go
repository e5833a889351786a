package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftResult is the per-shift breakdown derived from (start, end,
// breaks). Hours are rounded to 2 decimal places. Regular/overtime here
// use the daily threshold; the weekly pay computation re-splits summed
// totals and ignores these two fields.
type ShiftResult struct {
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
	NightHours    float64
	IsNightShift  bool
}

// WeeklyHours is one employee's summed hours for a period, split at the
// weekly overtime threshold.
type WeeklyHours struct {
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
	NightHours    float64
}

// PayrollData is the full weekly pay breakdown for one employee.
// Invariant: TotalPay = RegularPay + OvertimePay + NightPay + HolidayPay,
// every component rounded to whole KRW before summing.
type PayrollData struct {
	EmployeeID   string
	EmployeeName string

	WeeklyHours   float64
	RegularHours  float64
	OvertimeHours float64
	NightHours    float64

	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
	NightPay    decimal.Decimal
	HolidayPay  decimal.Decimal
	TotalPay    decimal.Decimal

	IsEligibleForHolidayPay bool

	// Monthly projection from the weekly figures; net is a flat-rate
	// estimate, see Policy.
	MonthlySalary decimal.Decimal
	NetSalary     decimal.Decimal
}

// PayrollTotals is the elementwise sum of PayrollData across a store or
// across all stores. TotalEmployees counts included employees.
type PayrollTotals struct {
	TotalEmployees int

	WeeklyHours   float64
	RegularHours  float64
	OvertimeHours float64
	NightHours    float64

	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
	NightPay    decimal.Decimal
	HolidayPay  decimal.Decimal
	TotalPay    decimal.Decimal

	MonthlySalary decimal.Decimal
	NetSalary     decimal.Decimal
}

// StorePayrollData groups the per-employee breakdowns of one store with
// their rollup.
type StorePayrollData struct {
	StoreID   string
	StoreName string
	Data      []PayrollData
	Totals    PayrollTotals
}

type RecordStatus string

const (
	RecordStatusDraft     RecordStatus = "draft"
	RecordStatusConfirmed RecordStatus = "confirmed"
)

// PayrollRecord is a persisted snapshot of a computed store payroll for a
// period, kept so a confirmed run stays stable when schedules change
// afterwards.
type PayrollRecord struct {
	ID          string
	StoreID     string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      RecordStatus
	Data        []PayrollData
	Totals      PayrollTotals
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	StoreName *string
}
