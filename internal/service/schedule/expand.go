package schedule

import (
	"sort"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
)

// ExpandShifts materializes a weekly template over [from, to] (inclusive
// calendar dates) and applies the exceptions for that range. CANCEL drops
// the templated shift, OVERRIDE replaces its time range and breaks, EXTRA
// appends an additional shift — also on days or employees the template
// never scheduled. The result is the immutable shift set the payroll
// engine consumes.
func ExpandShifts(template schedule.WeeklyTemplate, exceptions []schedule.ScheduleException, from, to time.Time) []schedule.Shift {
	slotsByDay := make(map[int]schedule.TemplateSlot, len(template.Slots))
	for _, slot := range template.Slots {
		slotsByDay[slot.DayOfWeek] = slot
	}

	type cellKey struct {
		date       string
		employeeID string
	}
	cancels := make(map[cellKey]bool)
	overrides := make(map[cellKey]schedule.ScheduleException)
	var extras []schedule.ScheduleException
	for _, exc := range exceptions {
		key := cellKey{exc.Date.Format("2006-01-02"), exc.EmployeeID}
		switch exc.Type {
		case schedule.ExceptionTypeCancel:
			cancels[key] = true
		case schedule.ExceptionTypeOverride:
			overrides[key] = exc
		case schedule.ExceptionTypeExtra:
			extras = append(extras, exc)
		}
	}

	var shifts []schedule.Shift
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		slot, ok := slotsByDay[int(d.Weekday())]
		if !ok {
			continue
		}
		for _, employeeID := range slot.EmployeeIDs {
			key := cellKey{d.Format("2006-01-02"), employeeID}
			if cancels[key] {
				continue
			}
			shift := schedule.Shift{
				EmployeeID:   employeeID,
				Date:         d,
				StartTime:    slot.OpenTime,
				EndTime:      slot.CloseTime,
				BreakPeriods: slot.BreakPeriods,
			}
			if exc, ok := overrides[key]; ok {
				if exc.StartTime != nil {
					shift.StartTime = *exc.StartTime
				}
				if exc.EndTime != nil {
					shift.EndTime = *exc.EndTime
				}
				shift.BreakPeriods = exc.BreakPeriods
			}
			shifts = append(shifts, shift)
		}
	}

	for _, exc := range extras {
		if exc.Date.Before(from) || exc.Date.After(to) {
			continue
		}
		if exc.StartTime == nil || exc.EndTime == nil {
			continue
		}
		shifts = append(shifts, schedule.Shift{
			EmployeeID:   exc.EmployeeID,
			Date:         exc.Date,
			StartTime:    *exc.StartTime,
			EndTime:      *exc.EndTime,
			BreakPeriods: exc.BreakPeriods,
		})
	}

	// Deterministic order regardless of exception arrival order
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		if shifts[i].EmployeeID != shifts[j].EmployeeID {
			return shifts[i].EmployeeID < shifts[j].EmployeeID
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})

	return shifts
}
