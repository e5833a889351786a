package schedule

import "time"

// BreakPeriod is an unpaid pause inside a working interval, wall-clock
// "HH:MM" on the same axis as the shift it belongs to.
type BreakPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name,omitempty"`
}

// WeeklyTemplate is a store's repeating week: one slot per opened weekday
// with opening hours, break periods and assigned employees. Concrete
// shifts are produced by expanding the template over a date range.
type WeeklyTemplate struct {
	ID        string
	StoreID   string
	Name      string
	IsActive  bool
	Slots     []TemplateSlot
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type TemplateSlot struct {
	ID           string
	TemplateID   string
	DayOfWeek    int // 0=Sunday ... 6=Saturday, matches time.Weekday
	OpenTime     string
	CloseTime    string // close <= open means the slot runs past midnight
	BreakPeriods []BreakPeriod
	EmployeeIDs  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ExceptionType string

const (
	ExceptionTypeCancel   ExceptionType = "CANCEL"
	ExceptionTypeOverride ExceptionType = "OVERRIDE"
	ExceptionTypeExtra    ExceptionType = "EXTRA"
)

var ExceptionTypeValues = []string{
	string(ExceptionTypeCancel),
	string(ExceptionTypeOverride),
	string(ExceptionTypeExtra),
}

// ScheduleException modifies one (date, employee) cell of the expanded
// week: CANCEL removes the templated shift, OVERRIDE replaces its time
// range, EXTRA adds an additional one.
type ScheduleException struct {
	ID           string
	StoreID      string
	EmployeeID   string
	Date         time.Time
	Type         ExceptionType
	StartTime    *string
	EndTime      *string
	BreakPeriods []BreakPeriod
	Reason       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Shift is one continuous scheduled work interval for one employee on one
// date, produced by template expansion and immutable afterwards. The
// payroll engine consumes nothing but these.
type Shift struct {
	EmployeeID   string
	Date         time.Time
	StartTime    string
	EndTime      string
	BreakPeriods []BreakPeriod
}
