package schedule

import (
	"strconv"
	"strings"

	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
)

// ========== WEEKLY TEMPLATE ==========

type TemplateSlotRequest struct {
	DayOfWeek    int           `json:"day_of_week"`
	OpenTime     string        `json:"open_time"`
	CloseTime    string        `json:"close_time"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
	EmployeeIDs  []string      `json:"employee_ids,omitempty"`
}

type CreateTemplateRequest struct {
	StoreID string                `json:"store_id"`
	Name    string                `json:"name"`
	Slots   []TemplateSlotRequest `json:"slots"`
}

func (r CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "store_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	seenDays := make(map[int]bool)
	for i, slot := range r.Slots {
		field := "slots[" + strconv.Itoa(i) + "]"
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			errs = append(errs, validator.ValidationError{Field: field + ".day_of_week", Message: ErrInvalidDayOfWeek.Error()})
		}
		if seenDays[slot.DayOfWeek] {
			errs = append(errs, validator.ValidationError{Field: field + ".day_of_week", Message: ErrDuplicateDayOfWeek.Error()})
		}
		seenDays[slot.DayOfWeek] = true
		errs = append(errs, validateInterval(field, slot.OpenTime, slot.CloseTime, slot.BreakPeriods)...)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTemplateRequest struct {
	ID       string                 `json:"-"`
	Name     *string                `json:"name,omitempty"`
	IsActive *bool                  `json:"is_active,omitempty"`
	Slots    *[]TemplateSlotRequest `json:"slots,omitempty"`
}

func (r UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Slots != nil {
		seenDays := make(map[int]bool)
		for i, slot := range *r.Slots {
			field := "slots[" + strconv.Itoa(i) + "]"
			if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
				errs = append(errs, validator.ValidationError{Field: field + ".day_of_week", Message: ErrInvalidDayOfWeek.Error()})
			}
			if seenDays[slot.DayOfWeek] {
				errs = append(errs, validator.ValidationError{Field: field + ".day_of_week", Message: ErrDuplicateDayOfWeek.Error()})
			}
			seenDays[slot.DayOfWeek] = true
			errs = append(errs, validateInterval(field, slot.OpenTime, slot.CloseTime, slot.BreakPeriods)...)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateSlotResponse struct {
	ID           string        `json:"id"`
	DayOfWeek    int           `json:"day_of_week"`
	OpenTime     string        `json:"open_time"`
	CloseTime    string        `json:"close_time"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
	EmployeeIDs  []string      `json:"employee_ids,omitempty"`
}

type TemplateResponse struct {
	ID       string                 `json:"id"`
	StoreID  string                 `json:"store_id"`
	Name     string                 `json:"name"`
	IsActive bool                   `json:"is_active"`
	Slots    []TemplateSlotResponse `json:"slots"`
}

// ========== SCHEDULE EXCEPTION ==========

type CreateExceptionRequest struct {
	StoreID      string        `json:"store_id"`
	EmployeeID   string        `json:"employee_id"`
	Date         string        `json:"date"`
	Type         string        `json:"type"`
	StartTime    *string       `json:"start_time,omitempty"`
	EndTime      *string       `json:"end_time,omitempty"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
	Reason       *string       `json:"reason,omitempty"`
}

func (r CreateExceptionRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{Field: "store_id", Message: "store_id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: ErrInvalidDateFormat.Error()})
	}
	if !validator.IsInSlice(strings.ToUpper(r.Type), ExceptionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: ErrInvalidExceptionType.Error()})
	}

	// OVERRIDE and EXTRA replace or add a time range; CANCEL carries none.
	switch ExceptionType(strings.ToUpper(r.Type)) {
	case ExceptionTypeOverride, ExceptionTypeExtra:
		if r.StartTime == nil || r.EndTime == nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time and end_time are required for this exception type"})
		} else {
			errs = append(errs, validateInterval("", *r.StartTime, *r.EndTime, r.BreakPeriods)...)
		}
	case ExceptionTypeCancel:
		if r.StartTime != nil || r.EndTime != nil {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "CANCEL exceptions must not carry a time range"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExceptionResponse struct {
	ID           string        `json:"id"`
	StoreID      string        `json:"store_id"`
	EmployeeID   string        `json:"employee_id"`
	Date         string        `json:"date"`
	Type         string        `json:"type"`
	StartTime    *string       `json:"start_time,omitempty"`
	EndTime      *string       `json:"end_time,omitempty"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
	Reason       *string       `json:"reason,omitempty"`
}

// ========== SHIFTS ==========

type ShiftResponse struct {
	EmployeeID   string        `json:"employee_id"`
	Date         string        `json:"date"`
	StartTime    string        `json:"start_time"`
	EndTime      string        `json:"end_time"`
	BreakPeriods []BreakPeriod `json:"break_periods,omitempty"`
}

type ListShiftResponse struct {
	Data       []ShiftResponse `json:"data"`
	TotalCount int             `json:"total_count"`
}

// ========== SHARED VALIDATION ==========

// clockMinutes converts "HH:MM" to minutes of day. Callers must have
// checked the format already.
func clockMinutes(s string) int {
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return h*60 + m
}

// validateInterval checks a (start, end, breaks) triple: time format,
// non-zero length, and every break inside the interval. End at or before
// start means the interval crosses midnight, and breaks starting before
// the interval's start are read on the next day too.
func validateInterval(field string, start, end string, breaks []BreakPeriod) validator.ValidationErrors {
	prefix := ""
	if field != "" {
		prefix = field + "."
	}

	var errs validator.ValidationErrors
	if !validator.IsValidClockTime(start) {
		errs = append(errs, validator.ValidationError{Field: prefix + "start_time", Message: ErrInvalidClockTime.Error()})
	}
	if !validator.IsValidClockTime(end) {
		errs = append(errs, validator.ValidationError{Field: prefix + "end_time", Message: ErrInvalidClockTime.Error()})
	}
	if len(errs) > 0 {
		return errs
	}

	startMin := clockMinutes(start)
	endMin := clockMinutes(end)
	if endMin == startMin {
		// end == start would otherwise read as a full 24h shift
		errs = append(errs, validator.ValidationError{Field: prefix + "end_time", Message: "shift must not start and end at the same time"})
	}
	if endMin <= startMin {
		endMin += 24 * 60
	}

	for i, b := range breaks {
		bField := prefix + "break_periods[" + strconv.Itoa(i) + "]"
		if !validator.IsValidClockTime(b.Start) || !validator.IsValidClockTime(b.End) {
			errs = append(errs, validator.ValidationError{Field: bField, Message: ErrInvalidClockTime.Error()})
			continue
		}
		bStart := clockMinutes(b.Start)
		bEnd := clockMinutes(b.End)
		if bStart < startMin {
			bStart += 24 * 60
		}
		if bEnd <= bStart {
			bEnd += 24 * 60
		}
		if bStart < startMin || bEnd > endMin {
			errs = append(errs, validator.ValidationError{Field: bField, Message: ErrBreakOutsideShift.Error()})
		}
	}
	return errs
}
