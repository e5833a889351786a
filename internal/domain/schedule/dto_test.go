package schedule

import (
	"testing"

	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validSlot(day int) TemplateSlotRequest {
	return TemplateSlotRequest{
		DayOfWeek: day,
		OpenTime:  "09:00",
		CloseTime: "18:00",
		BreakPeriods: []BreakPeriod{
			{Start: "12:00", End: "13:00", Name: "lunch"},
		},
		EmployeeIDs: []string{"emp-a"},
	}
}

func TestCreateTemplateRequest_Valid(t *testing.T) {
	req := CreateTemplateRequest{
		StoreID: "store-1",
		Name:    "weekday opening",
		Slots:   []TemplateSlotRequest{validSlot(1), validSlot(2)},
	}
	assert.NoError(t, req.Validate())
}

func TestCreateTemplateRequest_DuplicateDay(t *testing.T) {
	req := CreateTemplateRequest{
		StoreID: "store-1",
		Name:    "weekday opening",
		Slots:   []TemplateSlotRequest{validSlot(1), validSlot(1)},
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "slots[1].day_of_week")
}

func TestCreateTemplateRequest_DayOfWeekOutOfRange(t *testing.T) {
	slot := validSlot(7)
	req := CreateTemplateRequest{
		StoreID: "store-1",
		Name:    "weekday opening",
		Slots:   []TemplateSlotRequest{slot},
	}
	assert.Error(t, req.Validate())
}

func TestCreateTemplateRequest_ZeroLengthSlot(t *testing.T) {
	slot := validSlot(1)
	slot.OpenTime = "09:00"
	slot.CloseTime = "09:00"
	slot.BreakPeriods = nil

	req := CreateTemplateRequest{StoreID: "store-1", Name: "n", Slots: []TemplateSlotRequest{slot}}
	assert.Error(t, req.Validate())
}

func TestCreateTemplateRequest_OvernightSlotWithNightBreak(t *testing.T) {
	// Close before open runs past midnight; a break after midnight is
	// still inside the slot.
	slot := TemplateSlotRequest{
		DayOfWeek: 5,
		OpenTime:  "22:00",
		CloseTime: "06:00",
		BreakPeriods: []BreakPeriod{
			{Start: "02:00", End: "02:30"},
		},
	}
	req := CreateTemplateRequest{StoreID: "store-1", Name: "night", Slots: []TemplateSlotRequest{slot}}
	assert.NoError(t, req.Validate())
}

func TestCreateTemplateRequest_BreakOutsideSlot(t *testing.T) {
	slot := validSlot(1)
	slot.BreakPeriods = []BreakPeriod{{Start: "08:00", End: "08:30"}}

	req := CreateTemplateRequest{StoreID: "store-1", Name: "n", Slots: []TemplateSlotRequest{slot}}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "slots[0].break_periods[0]")
}

func TestCreateTemplateRequest_InvalidClockTime(t *testing.T) {
	for _, bad := range []string{"24:00", "9:00", "09:60", "0900", ""} {
		slot := validSlot(1)
		slot.OpenTime = bad
		req := CreateTemplateRequest{StoreID: "s", Name: "n", Slots: []TemplateSlotRequest{slot}}
		assert.Error(t, req.Validate(), "open_time %q accepted", bad)
	}
}

func TestCreateExceptionRequest_CancelValid(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "2025-06-03",
		Type:       "CANCEL",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateExceptionRequest_CancelRejectsTimeRange(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "2025-06-03",
		Type:       "CANCEL",
		StartTime:  strPtr("09:00"),
		EndTime:    strPtr("18:00"),
	}
	assert.Error(t, req.Validate())
}

func TestCreateExceptionRequest_OverrideRequiresTimeRange(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "2025-06-03",
		Type:       "OVERRIDE",
	}
	assert.Error(t, req.Validate())

	req.StartTime = strPtr("14:00")
	req.EndTime = strPtr("22:00")
	assert.NoError(t, req.Validate())
}

func TestCreateExceptionRequest_TypeIsCaseInsensitive(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "2025-06-03",
		Type:       "extra",
		StartTime:  strPtr("10:00"),
		EndTime:    strPtr("15:00"),
	}
	assert.NoError(t, req.Validate())
}

func TestCreateExceptionRequest_UnknownType(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "2025-06-03",
		Type:       "SWAP",
	}
	assert.Error(t, req.Validate())
}

func TestCreateExceptionRequest_InvalidDate(t *testing.T) {
	req := CreateExceptionRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-a",
		Date:       "03-06-2025",
		Type:       "CANCEL",
	}
	assert.Error(t, req.Validate())
}
