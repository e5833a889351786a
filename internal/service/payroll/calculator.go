package payroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

// Calculator turns shift records into hours and pay under a fixed Policy.
// It is pure: no I/O, no state beyond the policy, safe for concurrent use.
type Calculator struct {
	policy payroll.Policy

	nightStartMin int
	nightEndMin   int
}

func NewCalculator(policy payroll.Policy) *Calculator {
	nightStart, err := clockToMinutes(policy.NightWindowStart)
	if err != nil {
		nightStart = 22 * 60
	}
	nightEnd, err := clockToMinutes(policy.NightWindowEnd)
	if err != nil {
		nightEnd = 6 * 60
	}
	return &Calculator{
		policy:        policy,
		nightStartMin: nightStart,
		nightEndMin:   nightEnd,
	}
}

func (c *Calculator) Policy() payroll.Policy {
	return c.policy
}

// clockToMinutes converts wall-clock "HH:MM" to minutes of day.
func clockToMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: bad hour", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: bad minute", s)
	}
	return h*60 + m, nil
}

// overlapMinutes returns the length of the intersection of [aStart, aEnd)
// and [bStart, bEnd).
func overlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeShift computes worked and night hours for one shift.
//
// An end time at or before the start time means the shift runs into the
// next day, so a zero-length shift is unrepresentable here; the schedule
// validation rejects identical start and end before anything reaches this
// point. Break minutes reduce total hours; they reduce night hours only
// when the policy asks for it.
func (c *Calculator) ComputeShift(startTime, endTime string, breaks []schedule.BreakPeriod) (payroll.ShiftResult, error) {
	startMin, err := clockToMinutes(startTime)
	if err != nil {
		return payroll.ShiftResult{}, err
	}
	endMin, err := clockToMinutes(endTime)
	if err != nil {
		return payroll.ShiftResult{}, err
	}
	if endMin <= startMin {
		endMin += minutesPerDay
	}

	breakMin := 0
	nightBreakMin := 0
	for _, b := range breaks {
		bStart, err := clockToMinutes(b.Start)
		if err != nil {
			return payroll.ShiftResult{}, err
		}
		bEnd, err := clockToMinutes(b.End)
		if err != nil {
			return payroll.ShiftResult{}, err
		}
		// Breaks live on the same midnight-extended axis as the shift.
		if bStart < startMin {
			bStart += minutesPerDay
		}
		if bEnd <= bStart {
			bEnd += minutesPerDay
		}
		breakMin += bEnd - bStart
		nightBreakMin += c.nightOverlap(bStart, bEnd)
	}

	workedMin := (endMin - startMin) - breakMin
	if workedMin < 0 {
		workedMin = 0
	}

	nightMin := c.nightOverlap(startMin, endMin)
	if c.policy.NightBreakAdjusted {
		nightMin -= nightBreakMin
		if nightMin < 0 {
			nightMin = 0
		}
	}

	totalHours := round2(float64(workedMin) / 60)
	nightHours := round2(float64(nightMin) / 60)
	regular, overtime := SplitRegularOvertime(totalHours, c.policy.OvertimeDailyThresholdHours)

	return payroll.ShiftResult{
		TotalHours:    totalHours,
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		NightHours:    nightHours,
		IsNightShift:  nightMin > 0,
	}, nil
}

// nightOverlap intersects [startMin, endMin) on the midnight-extended
// axis with the night window of the first day and of the next day.
func (c *Calculator) nightOverlap(startMin, endMin int) int {
	// [22:00, 24:00) of day 0, then [00:00, 06:00) of day 1, and the
	// trailing [22:00, ...) of day 1 for shifts running deep into it.
	overlap := overlapMinutes(startMin, endMin, c.nightStartMin, minutesPerDay)
	overlap += overlapMinutes(startMin, endMin, minutesPerDay, minutesPerDay+c.nightEndMin)
	overlap += overlapMinutes(startMin, endMin, minutesPerDay+c.nightStartMin, 2*minutesPerDay)
	return overlap
}

// SplitRegularOvertime divides hours into the base band and the band past
// the threshold. Callers choose the granularity: the daily threshold for
// one shift, the weekly one for a summed week — never both on the same
// hours.
func SplitRegularOvertime(hours, threshold float64) (regular, overtime float64) {
	if hours <= threshold {
		return hours, 0
	}
	return threshold, hours - threshold
}

// IsEligibleForHolidayPay reports whether a week's hours qualify for the
// weekly holiday allowance.
func (c *Calculator) IsEligibleForHolidayPay(weeklyHours float64) bool {
	return weeklyHours >= c.policy.HolidayPayEligibilityWeeklyHours
}

// AggregateWeek sums the given shifts (all belonging to one employee; the
// period boundary is the caller's concern) and splits the total at the
// weekly overtime threshold. An empty shift list yields all zeros.
func (c *Calculator) AggregateWeek(shifts []schedule.Shift) (payroll.WeeklyHours, error) {
	var total, night float64
	for _, s := range shifts {
		result, err := c.ComputeShift(s.StartTime, s.EndTime, s.BreakPeriods)
		if err != nil {
			return payroll.WeeklyHours{}, fmt.Errorf("shift on %s: %w", s.Date.Format("2006-01-02"), err)
		}
		total += result.TotalHours
		night += result.NightHours
	}
	total = round2(total)
	night = round2(night)

	regular, overtime := SplitRegularOvertime(total, c.policy.OvertimeWeeklyThresholdHours)
	return payroll.WeeklyHours{
		TotalHours:    total,
		RegularHours:  round2(regular),
		OvertimeHours: round2(overtime),
		NightHours:    night,
	}, nil
}

// ComputePay converts a week's hours into money. Every component is
// rounded to whole KRW (half away from zero) before TotalPay is summed,
// so the additivity invariant holds exactly.
func (c *Calculator) ComputePay(week payroll.WeeklyHours, hourlyWage decimal.Decimal) payroll.PayrollData {
	eligible := c.IsEligibleForHolidayPay(week.TotalHours)

	regularPay := hourlyWage.Mul(decimal.NewFromFloat(week.RegularHours)).Round(0)
	overtimePay := hourlyWage.
		Mul(decimal.NewFromFloat(week.OvertimeHours)).
		Mul(decimal.NewFromFloat(c.policy.OvertimeMultiplier)).
		Round(0)
	// The night premium is additive: night hours are already paid at the
	// regular or overtime rate, this is only the extra differential.
	nightPay := hourlyWage.
		Mul(decimal.NewFromFloat(week.NightHours)).
		Mul(decimal.NewFromFloat(c.policy.NightDifferentialMultiplier)).
		Round(0)

	holidayPay := decimal.Zero
	if eligible {
		// One fifth of regular+overtime approximates one paid day off per
		// week at the blended rate.
		holidayPay = regularPay.Add(overtimePay).Div(decimal.NewFromInt(5)).Round(0)
	}

	totalPay := regularPay.Add(overtimePay).Add(nightPay).Add(holidayPay)

	paidWeeklyHours := week.TotalHours
	if eligible {
		paidWeeklyHours += 8
	}
	monthlySalary := hourlyWage.
		Mul(decimal.NewFromFloat(paidWeeklyHours)).
		Mul(decimal.NewFromFloat(c.policy.AverageWeeksPerMonth)).
		Round(0)
	netSalary := monthlySalary.
		Mul(decimal.NewFromFloat(1 - (c.policy.InsuranceRate + c.policy.IncomeTaxRate))).
		Round(0)

	return payroll.PayrollData{
		WeeklyHours:             week.TotalHours,
		RegularHours:            week.RegularHours,
		OvertimeHours:           week.OvertimeHours,
		NightHours:              week.NightHours,
		RegularPay:              regularPay,
		OvertimePay:             overtimePay,
		NightPay:                nightPay,
		HolidayPay:              holidayPay,
		TotalPay:                totalPay,
		IsEligibleForHolidayPay: eligible,
		MonthlySalary:           monthlySalary,
		NetSalary:               netSalary,
	}
}

// Rollup sums PayrollData elementwise. Plain addition only, so the result
// is independent of ordering and grouping; grand totals across stores are
// the same function over the concatenated slices.
func Rollup(data []payroll.PayrollData) payroll.PayrollTotals {
	totals := payroll.PayrollTotals{
		TotalEmployees: len(data),
		RegularPay:     decimal.Zero,
		OvertimePay:    decimal.Zero,
		NightPay:       decimal.Zero,
		HolidayPay:     decimal.Zero,
		TotalPay:       decimal.Zero,
		MonthlySalary:  decimal.Zero,
		NetSalary:      decimal.Zero,
	}
	for _, d := range data {
		totals.WeeklyHours = round2(totals.WeeklyHours + d.WeeklyHours)
		totals.RegularHours = round2(totals.RegularHours + d.RegularHours)
		totals.OvertimeHours = round2(totals.OvertimeHours + d.OvertimeHours)
		totals.NightHours = round2(totals.NightHours + d.NightHours)
		totals.RegularPay = totals.RegularPay.Add(d.RegularPay)
		totals.OvertimePay = totals.OvertimePay.Add(d.OvertimePay)
		totals.NightPay = totals.NightPay.Add(d.NightPay)
		totals.HolidayPay = totals.HolidayPay.Add(d.HolidayPay)
		totals.TotalPay = totals.TotalPay.Add(d.TotalPay)
		totals.MonthlySalary = totals.MonthlySalary.Add(d.MonthlySalary)
		totals.NetSalary = totals.NetSalary.Add(d.NetSalary)
	}
	return totals
}

// SumTotals adds two rollups, used for grand totals across stores.
func SumTotals(a, b payroll.PayrollTotals) payroll.PayrollTotals {
	return payroll.PayrollTotals{
		TotalEmployees: a.TotalEmployees + b.TotalEmployees,
		WeeklyHours:    round2(a.WeeklyHours + b.WeeklyHours),
		RegularHours:   round2(a.RegularHours + b.RegularHours),
		OvertimeHours:  round2(a.OvertimeHours + b.OvertimeHours),
		NightHours:     round2(a.NightHours + b.NightHours),
		RegularPay:     a.RegularPay.Add(b.RegularPay),
		OvertimePay:    a.OvertimePay.Add(b.OvertimePay),
		NightPay:       a.NightPay.Add(b.NightPay),
		HolidayPay:     a.HolidayPay.Add(b.HolidayPay),
		TotalPay:       a.TotalPay.Add(b.TotalPay),
		MonthlySalary:  a.MonthlySalary.Add(b.MonthlySalary),
		NetSalary:      a.NetSalary.Add(b.NetSalary),
	}
}
