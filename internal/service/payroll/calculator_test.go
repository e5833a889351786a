package payroll

import (
	"testing"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *Calculator {
	return NewCalculator(payroll.DefaultPolicy())
}

func TestComputeShift_DayShiftWithBreak(t *testing.T) {
	c := testCalculator()

	result, err := c.ComputeShift("09:00", "18:00", []schedule.BreakPeriod{
		{Start: "12:00", End: "13:00", Name: "lunch"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, result.TotalHours)
	assert.Equal(t, 8.0, result.RegularHours)
	assert.Equal(t, 0.0, result.OvertimeHours)
	assert.Equal(t, 0.0, result.NightHours)
	assert.False(t, result.IsNightShift)
}

func TestComputeShift_OvernightFullNightWindow(t *testing.T) {
	c := testCalculator()

	result, err := c.ComputeShift("22:00", "06:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 8.0, result.TotalHours)
	assert.Equal(t, 8.0, result.NightHours)
	assert.True(t, result.IsNightShift)
}

func TestComputeShift_PartialNightOverlap(t *testing.T) {
	c := testCalculator()

	result, err := c.ComputeShift("18:00", "23:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.TotalHours)
	assert.Equal(t, 1.0, result.NightHours)
	assert.True(t, result.IsNightShift)
}

func TestComputeShift_DailyOvertimeSplit(t *testing.T) {
	c := testCalculator()

	result, err := c.ComputeShift("09:00", "20:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 11.0, result.TotalHours)
	assert.Equal(t, 8.0, result.RegularHours)
	assert.Equal(t, 3.0, result.OvertimeHours)
}

func TestComputeShift_EndBeforeStartRunsIntoNextDay(t *testing.T) {
	c := testCalculator()

	// 23:00 -> 02:00 is a three hour shift, not a negative one.
	result, err := c.ComputeShift("23:00", "02:00", nil)
	require.NoError(t, err)

	assert.Equal(t, 3.0, result.TotalHours)
	assert.Equal(t, 3.0, result.NightHours)
}

func TestComputeShift_InvalidClockTime(t *testing.T) {
	c := testCalculator()

	_, err := c.ComputeShift("24:00", "06:00", nil)
	assert.Error(t, err)

	_, err = c.ComputeShift("09:00", "9am", nil)
	assert.Error(t, err)
}

func TestComputeShift_NightHoursNotBreakAdjustedByDefault(t *testing.T) {
	c := testCalculator()

	// Night break eats an hour of working time but, under the default
	// policy, not an hour of the night differential.
	result, err := c.ComputeShift("22:00", "06:00", []schedule.BreakPeriod{
		{Start: "02:00", End: "03:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, result.TotalHours)
	assert.Equal(t, 8.0, result.NightHours)
}

func TestComputeShift_NightHoursBreakAdjusted(t *testing.T) {
	policy := payroll.DefaultPolicy()
	policy.NightBreakAdjusted = true
	c := NewCalculator(policy)

	result, err := c.ComputeShift("22:00", "06:00", []schedule.BreakPeriod{
		{Start: "02:00", End: "03:00"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.0, result.TotalHours)
	assert.Equal(t, 7.0, result.NightHours)
}

func TestSplitRegularOvertime(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		regular  float64
		overtime float64
	}{
		{"below threshold", 38.5, 38.5, 0},
		{"exactly at threshold", 40.0, 40.0, 0},
		{"just past threshold", 40.01, 40.0, 0.01},
		{"well past threshold", 52.0, 40.0, 12.0},
		{"zero hours", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, overtime := SplitRegularOvertime(tt.hours, 40)
			assert.InDelta(t, tt.regular, regular, 1e-9)
			assert.InDelta(t, tt.overtime, overtime, 1e-9)
		})
	}
}

func TestIsEligibleForHolidayPay(t *testing.T) {
	c := testCalculator()

	assert.False(t, c.IsEligibleForHolidayPay(14.99))
	assert.True(t, c.IsEligibleForHolidayPay(15.0))
	assert.True(t, c.IsEligibleForHolidayPay(15.01))
}

func weekOfShifts(start, end string, days int) []schedule.Shift {
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday
	shifts := make([]schedule.Shift, 0, days)
	for i := 0; i < days; i++ {
		shifts = append(shifts, schedule.Shift{
			EmployeeID: "emp-1",
			Date:       base.AddDate(0, 0, i),
			StartTime:  start,
			EndTime:    end,
		})
	}
	return shifts
}

func TestAggregateWeek_Empty(t *testing.T) {
	c := testCalculator()

	week, err := c.AggregateWeek(nil)
	require.NoError(t, err)

	assert.Equal(t, payroll.WeeklyHours{}, week)
}

func TestAggregateWeek_WeeklyOvertimeSplit(t *testing.T) {
	c := testCalculator()

	// Six 7-hour days: none crosses the daily threshold, but the week
	// crosses the weekly one.
	week, err := c.AggregateWeek(weekOfShifts("09:00", "16:00", 6))
	require.NoError(t, err)

	assert.Equal(t, 42.0, week.TotalHours)
	assert.Equal(t, 40.0, week.RegularHours)
	assert.Equal(t, 2.0, week.OvertimeHours)
	assert.Equal(t, 0.0, week.NightHours)
}

func TestAggregateWeek_SumsNightHours(t *testing.T) {
	c := testCalculator()

	week, err := c.AggregateWeek(weekOfShifts("22:00", "06:00", 3))
	require.NoError(t, err)

	assert.Equal(t, 24.0, week.TotalHours)
	assert.Equal(t, 24.0, week.NightHours)
}

func TestComputePay_HolidayEligibleWeek(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromInt(10000)

	// Four 4-hour shifts: 16 hours, past the 15-hour eligibility line.
	week, err := c.AggregateWeek(weekOfShifts("10:00", "14:00", 4))
	require.NoError(t, err)
	require.Equal(t, 16.0, week.TotalHours)

	data := c.ComputePay(week, wage)

	assert.True(t, data.IsEligibleForHolidayPay)
	assert.True(t, data.RegularPay.Equal(decimal.NewFromInt(160000)), "regular pay = %s", data.RegularPay)
	assert.True(t, data.HolidayPay.Equal(decimal.NewFromInt(32000)), "holiday pay = %s", data.HolidayPay)
	assert.True(t, data.TotalPay.Equal(decimal.NewFromInt(192000)), "total pay = %s", data.TotalPay)
}

func TestComputePay_BelowEligibilityThreshold(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromInt(10000)

	// Three 4-hour shifts: 12 hours, no weekly holiday allowance.
	week, err := c.AggregateWeek(weekOfShifts("10:00", "14:00", 3))
	require.NoError(t, err)

	data := c.ComputePay(week, wage)

	assert.False(t, data.IsEligibleForHolidayPay)
	assert.True(t, data.HolidayPay.IsZero())
	assert.True(t, data.TotalPay.Equal(decimal.NewFromInt(120000)), "total pay = %s", data.TotalPay)
}

func TestComputePay_OvertimeRate(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromInt(10000)

	week := payroll.WeeklyHours{
		TotalHours:    45,
		RegularHours:  40,
		OvertimeHours: 5,
	}
	data := c.ComputePay(week, wage)

	assert.True(t, data.RegularPay.Equal(decimal.NewFromInt(400000)))
	assert.True(t, data.OvertimePay.Equal(decimal.NewFromInt(75000)), "overtime pay = %s", data.OvertimePay)
	assert.True(t, data.HolidayPay.Equal(decimal.NewFromInt(95000)), "holiday pay = %s", data.HolidayPay)
	assert.True(t, data.TotalPay.Equal(decimal.NewFromInt(570000)))
}

func TestComputePay_NightPremiumIsAdditive(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromInt(10000)

	week := payroll.WeeklyHours{
		TotalHours:   8,
		RegularHours: 8,
		NightHours:   8,
	}
	data := c.ComputePay(week, wage)

	// 8h at the regular rate plus half the rate again for the night hours.
	assert.True(t, data.RegularPay.Equal(decimal.NewFromInt(80000)))
	assert.True(t, data.NightPay.Equal(decimal.NewFromInt(40000)), "night pay = %s", data.NightPay)
	assert.True(t, data.TotalPay.Equal(decimal.NewFromInt(120000)))
}

func TestComputePay_TotalPayAdditivity(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromFloat(10037.5)

	weeks := []payroll.WeeklyHours{
		{TotalHours: 16.25, RegularHours: 16.25, NightHours: 2.5},
		{TotalHours: 43.75, RegularHours: 40, OvertimeHours: 3.75, NightHours: 12},
		{TotalHours: 14.99, RegularHours: 14.99},
	}

	for _, week := range weeks {
		data := c.ComputePay(week, wage)
		sum := data.RegularPay.Add(data.OvertimePay).Add(data.NightPay).Add(data.HolidayPay)
		assert.True(t, data.TotalPay.Equal(sum),
			"total %s != components %s for week %+v", data.TotalPay, sum, week)
	}
}

func TestComputePay_MonthlyAndNetSalary(t *testing.T) {
	c := testCalculator()
	wage := decimal.NewFromInt(10000)

	week := payroll.WeeklyHours{TotalHours: 16, RegularHours: 16}
	data := c.ComputePay(week, wage)

	// 16 worked + 8 paid holiday hours, projected over 4.345 weeks.
	assert.True(t, data.MonthlySalary.Equal(decimal.NewFromInt(1042800)), "monthly = %s", data.MonthlySalary)
	// 8.9% insurance and 3% income tax withheld.
	assert.True(t, data.NetSalary.Equal(decimal.NewFromInt(918707)), "net = %s", data.NetSalary)
}

func TestRollup_GroupingInvariant(t *testing.T) {
	c := testCalculator()

	var data []payroll.PayrollData
	for i, wage := range []int64{9860, 10030, 12000, 15500} {
		week := payroll.WeeklyHours{
			TotalHours:   10 + float64(i)*9.5,
			RegularHours: 10 + float64(i)*9.5,
		}
		if week.TotalHours > 40 {
			week.RegularHours = 40
			week.OvertimeHours = week.TotalHours - 40
		}
		data = append(data, c.ComputePay(week, decimal.NewFromInt(wage)))
	}

	whole := Rollup(data)
	split := SumTotals(Rollup(data[:1]), Rollup(data[1:]))

	assert.Equal(t, whole.TotalEmployees, split.TotalEmployees)
	assert.Equal(t, whole.WeeklyHours, split.WeeklyHours)
	assert.True(t, whole.TotalPay.Equal(split.TotalPay))
	assert.True(t, whole.NetSalary.Equal(split.NetSalary))
}

func TestRollup_Empty(t *testing.T) {
	totals := Rollup(nil)

	assert.Equal(t, 0, totals.TotalEmployees)
	assert.Equal(t, 0.0, totals.WeeklyHours)
	assert.True(t, totals.TotalPay.IsZero())
}
