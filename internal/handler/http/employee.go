package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agi040922/HR-Management-sub002/internal/domain/employee"
	"github.com/agi040922/HR-Management-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByStore(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

func (h *EmployeeHandlerImpl) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")

	employees, err := h.employeeService.ListByStore(r.Context(), storeID)
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "employeeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "employeeID")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
