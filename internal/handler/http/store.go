package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.storeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created successfully", created)
}

func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list stores", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stores)
}

func (h *StoreHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "storeID")

	st, err := h.storeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, st)
}

func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "storeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.storeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Failed to update store", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated successfully", updated)
}

func (h *StoreHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "storeID")

	if err := h.storeService.Delete(r.Context(), id); err != nil {
		slog.Error("Failed to delete store", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted successfully", nil)
}
