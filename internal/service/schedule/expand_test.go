package schedule

import (
	"testing"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Monday-to-Friday cafe template with two staff on weekdays.
func testTemplate() schedule.WeeklyTemplate {
	var slots []schedule.TemplateSlot
	for day := 1; day <= 5; day++ {
		slots = append(slots, schedule.TemplateSlot{
			DayOfWeek: day,
			OpenTime:  "09:00",
			CloseTime: "18:00",
			BreakPeriods: []schedule.BreakPeriod{
				{Start: "12:00", End: "13:00", Name: "lunch"},
			},
			EmployeeIDs: []string{"emp-a", "emp-b"},
		})
	}
	return schedule.WeeklyTemplate{
		ID:       "tpl-1",
		StoreID:  "store-1",
		Name:     "weekday opening",
		IsActive: true,
		Slots:    slots,
	}
}

func TestExpandShifts_TemplateOnly(t *testing.T) {
	// 2025-06-02 is a Monday.
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	shifts := ExpandShifts(testTemplate(), nil, from, to)

	// Five weekdays, two employees each.
	require.Len(t, shifts, 10)
	assert.Equal(t, "emp-a", shifts[0].EmployeeID)
	assert.Equal(t, date(2025, 6, 2), shifts[0].Date)
	assert.Equal(t, "09:00", shifts[0].StartTime)
	assert.Equal(t, "18:00", shifts[0].EndTime)
	require.Len(t, shifts[0].BreakPeriods, 1)

	// The weekend contributes nothing.
	for _, s := range shifts {
		wd := s.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestExpandShifts_CancelRemovesOneCell(t *testing.T) {
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	exceptions := []schedule.ScheduleException{
		{
			StoreID:    "store-1",
			EmployeeID: "emp-a",
			Date:       date(2025, 6, 3),
			Type:       schedule.ExceptionTypeCancel,
		},
	}

	shifts := ExpandShifts(testTemplate(), exceptions, from, to)
	require.Len(t, shifts, 9)

	for _, s := range shifts {
		if s.Date.Equal(date(2025, 6, 3)) {
			assert.Equal(t, "emp-b", s.EmployeeID, "cancelled employee still scheduled")
		}
	}
}

func TestExpandShifts_OverrideReplacesTimeRange(t *testing.T) {
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	exceptions := []schedule.ScheduleException{
		{
			StoreID:    "store-1",
			EmployeeID: "emp-b",
			Date:       date(2025, 6, 4),
			Type:       schedule.ExceptionTypeOverride,
			StartTime:  strPtr("14:00"),
			EndTime:    strPtr("22:00"),
		},
	}

	shifts := ExpandShifts(testTemplate(), exceptions, from, to)
	require.Len(t, shifts, 10)

	var overridden *schedule.Shift
	for i := range shifts {
		if shifts[i].Date.Equal(date(2025, 6, 4)) && shifts[i].EmployeeID == "emp-b" {
			overridden = &shifts[i]
		}
	}
	require.NotNil(t, overridden)
	assert.Equal(t, "14:00", overridden.StartTime)
	assert.Equal(t, "22:00", overridden.EndTime)
	// The override replaces the breaks too, not just the range.
	assert.Empty(t, overridden.BreakPeriods)
}

func TestExpandShifts_ExtraAddsOffTemplateShift(t *testing.T) {
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	exceptions := []schedule.ScheduleException{
		{
			StoreID:    "store-1",
			EmployeeID: "emp-c", // never on the template
			Date:       date(2025, 6, 7), // a Saturday the template never opens
			Type:       schedule.ExceptionTypeExtra,
			StartTime:  strPtr("10:00"),
			EndTime:    strPtr("15:00"),
		},
	}

	shifts := ExpandShifts(testTemplate(), exceptions, from, to)
	require.Len(t, shifts, 11)

	last := shifts[len(shifts)-1]
	assert.Equal(t, "emp-c", last.EmployeeID)
	assert.Equal(t, date(2025, 6, 7), last.Date)
	assert.Equal(t, "10:00", last.StartTime)
}

func TestExpandShifts_ExceptionsOutsideRangeIgnored(t *testing.T) {
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	exceptions := []schedule.ScheduleException{
		{
			EmployeeID: "emp-a",
			Date:       date(2025, 6, 10),
			Type:       schedule.ExceptionTypeExtra,
			StartTime:  strPtr("10:00"),
			EndTime:    strPtr("15:00"),
		},
	}

	shifts := ExpandShifts(testTemplate(), exceptions, from, to)
	assert.Len(t, shifts, 10)
}

func TestExpandShifts_DeterministicOrder(t *testing.T) {
	from, to := date(2025, 6, 2), date(2025, 6, 8)

	exceptions := []schedule.ScheduleException{
		{
			EmployeeID: "emp-c",
			Date:       date(2025, 6, 2),
			Type:       schedule.ExceptionTypeExtra,
			StartTime:  strPtr("06:00"),
			EndTime:    strPtr("09:00"),
		},
		{
			EmployeeID: "emp-a",
			Date:       date(2025, 6, 6),
			Type:       schedule.ExceptionTypeCancel,
		},
	}

	first := ExpandShifts(testTemplate(), exceptions, from, to)

	// Same inputs with the exception order flipped.
	flipped := []schedule.ScheduleException{exceptions[1], exceptions[0]}
	second := ExpandShifts(testTemplate(), flipped, from, to)

	assert.Equal(t, first, second)

	// Sorted by date, then employee, then start time.
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		if prev.Date.Equal(cur.Date) {
			if prev.EmployeeID == cur.EmployeeID {
				assert.LessOrEqual(t, prev.StartTime, cur.StartTime)
			} else {
				assert.Less(t, prev.EmployeeID, cur.EmployeeID)
			}
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestExpandShifts_SingleDayRange(t *testing.T) {
	day := date(2025, 6, 4) // Wednesday

	shifts := ExpandShifts(testTemplate(), nil, day, day)
	require.Len(t, shifts, 2)
	assert.Equal(t, day, shifts[0].Date)
	assert.Equal(t, day, shifts[1].Date)
}
