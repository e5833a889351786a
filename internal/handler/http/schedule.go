package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	CreateException(w http.ResponseWriter, r *http.Request)
	ListExceptions(w http.ResponseWriter, r *http.Request)
	DeleteException(w http.ResponseWriter, r *http.Request)

	ListShifts(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// parseRangeQuery reads the from/to query params as YYYY-MM-DD dates.
func parseRangeQuery(r *http.Request) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, schedule.ErrInvalidDateFormat
	}
	to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, schedule.ErrInvalidDateFormat
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, schedule.ErrInvalidPeriod
	}
	return from, to, nil
}

func (h *ScheduleHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateTemplate(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create template", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Weekly template created successfully", created)
}

func (h *ScheduleHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	templates, err := h.scheduleService.ListTemplates(r.Context(), storeID)
	if err != nil {
		slog.Error("Failed to list templates", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

func (h *ScheduleHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	template, err := h.scheduleService.GetTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, template)
}

func (h *ScheduleHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "templateID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.scheduleService.UpdateTemplate(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update template", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly template updated successfully", updated)
}

func (h *ScheduleHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	if err := h.scheduleService.DeleteTemplate(r.Context(), id); err != nil {
		slog.Error("Failed to delete template", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly template deleted successfully", nil)
}

func (h *ScheduleHandlerImpl) CreateException(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create exception decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateException(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create exception", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule exception created successfully", created)
}

func (h *ScheduleHandlerImpl) ListExceptions(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	from, to, err := parseRangeQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	exceptions, err := h.scheduleService.ListExceptions(r.Context(), storeID, from, to)
	if err != nil {
		slog.Error("Failed to list exceptions", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, exceptions)
}

func (h *ScheduleHandlerImpl) DeleteException(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "exceptionID")

	if err := h.scheduleService.DeleteException(r.Context(), id); err != nil {
		slog.Error("Failed to delete exception", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule exception deleted successfully", nil)
}

func (h *ScheduleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	from, to, err := parseRangeQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shifts, err := h.scheduleService.ExpandShifts(r.Context(), storeID, from, to)
	if err != nil {
		slog.Error("Failed to expand shifts", "error", err)
		response.HandleError(w, err)
		return
	}

	data := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		data = append(data, schedule.ShiftResponse{
			EmployeeID:   s.EmployeeID,
			Date:         s.Date.Format("2006-01-02"),
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			BreakPeriods: s.BreakPeriods,
		})
	}

	response.Success(w, schedule.ListShiftResponse{Data: data, TotalCount: len(data)})
}
