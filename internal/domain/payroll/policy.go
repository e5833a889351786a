package payroll

import "github.com/shopspring/decimal"

// Policy carries every statutory constant the pay engine consults.
// Values are injected from configuration so yearly updates (minimum wage,
// rate changes) and per-jurisdiction variants need no code change.
type Policy struct {
	// Reference only; surfaced as a warning on employees, never enforced
	// by the engine.
	MinimumWage decimal.Decimal

	// Weekly holiday allowance eligibility (주휴수당), hours per week.
	HolidayPayEligibilityWeeklyHours float64

	// Regular/overtime split thresholds. The weekly threshold governs pay
	// computation; the daily one only the per-shift breakdown. The two
	// must never be applied to the same hours.
	OvertimeWeeklyThresholdHours float64
	OvertimeDailyThresholdHours  float64

	OvertimeMultiplier          float64
	NightDifferentialMultiplier float64

	// Night differential window, wall-clock "HH:MM". The window wraps
	// midnight: [start, 24:00) on the shift's first day plus
	// [00:00, end) on the next.
	NightWindowStart string
	NightWindowEnd   string

	// 52/12, the usual approximation for converting weekly to monthly pay.
	AverageWeeksPerMonth float64

	// Flat approximations of the four major insurances and withholding
	// income tax. Net salary computed from these is an estimate, not a
	// payroll-compliant figure.
	InsuranceRate float64
	IncomeTaxRate float64

	// When true, break minutes overlapping the night window are removed
	// from night hours as well as from total hours. Off by default to
	// match the historical behaviour where breaks only reduce totals.
	NightBreakAdjusted bool
}

// DefaultPolicy returns the 2025 statutory constants.
func DefaultPolicy() Policy {
	return Policy{
		MinimumWage:                      decimal.NewFromInt(10030),
		HolidayPayEligibilityWeeklyHours: 15,
		OvertimeWeeklyThresholdHours:     40,
		OvertimeDailyThresholdHours:      8,
		OvertimeMultiplier:               1.5,
		NightDifferentialMultiplier:      0.5,
		NightWindowStart:                 "22:00",
		NightWindowEnd:                   "06:00",
		AverageWeeksPerMonth:             4.345,
		InsuranceRate:                    0.089,
		IncomeTaxRate:                    0.03,
		NightBreakAdjusted:               false,
	}
}
