package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	ComputeStore(w http.ResponseWriter, r *http.Request)
	ComputeSummary(w http.ResponseWriter, r *http.Request)

	SaveRecord(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	ConfirmRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func (h *PayrollHandlerImpl) ComputeStore(w http.ResponseWriter, r *http.Request) {
	req := payroll.ComputePayrollRequest{
		StoreID: chi.URLParam(r, "storeID"),
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ComputeStorePayroll(r.Context(), req)
	if err != nil {
		slog.Error("Failed to compute store payroll", "error", err, "store_id", req.StoreID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *PayrollHandlerImpl) ComputeSummary(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if err := payroll.ValidatePeriod(from, to); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.payrollService.ComputeSummary(r.Context(), from, to)
	if err != nil {
		slog.Error("Failed to compute payroll summary", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *PayrollHandlerImpl) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save payroll record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.payrollService.SaveRecord(r.Context(), req)
	if err != nil {
		slog.Error("Failed to save payroll record", "error", err, "store_id", req.StoreID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record saved successfully", record)
}

func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordID")

	record, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

func (h *PayrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	filter := payroll.RecordFilter{
		StoreID: q.Get("store_id"),
		Status:  q.Get("status"),
		Page:    page,
		Limit:   limit,
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.payrollService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("Failed to list payroll records", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func (h *PayrollHandlerImpl) ConfirmRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordID")

	if err := h.payrollService.ConfirmRecord(r.Context(), id); err != nil {
		slog.Error("Failed to confirm payroll record", "error", err, "record_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record confirmed successfully", nil)
}

func (h *PayrollHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordID")

	if err := h.payrollService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("Failed to delete payroll record", "error", err, "record_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}
