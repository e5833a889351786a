package schedule

import "errors"

var (
	// Weekly Template Errors
	ErrTemplateNotFound       = errors.New("weekly template not found")
	ErrTemplateNameExists     = errors.New("weekly template with this name already exists")
	ErrTemplateSlotNotFound   = errors.New("template slot not found")
	ErrDuplicateDayOfWeek     = errors.New("template already has a slot for this day of week")
	ErrNoActiveTemplate       = errors.New("store has no active weekly template")

	// Exception Errors
	ErrExceptionNotFound = errors.New("schedule exception not found")
	ErrExceptionExists   = errors.New("an exception for this date and employee already exists")

	// Validation Errors
	ErrInvalidDayOfWeek     = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidClockTime     = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidExceptionType = errors.New("exception type must be CANCEL, OVERRIDE or EXTRA")
	ErrBreakOutsideShift    = errors.New("break period must fall within the shift interval")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidPeriod        = errors.New("period start must not be after period end")
)
