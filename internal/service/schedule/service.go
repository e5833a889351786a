package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type ScheduleServiceImpl struct {
	db            *database.DB
	templateRepo  schedule.WeeklyTemplateRepository
	exceptionRepo schedule.ScheduleExceptionRepository
	storeRepo     store.StoreRepository
}

func NewScheduleService(
	db *database.DB,
	templateRepo schedule.WeeklyTemplateRepository,
	exceptionRepo schedule.ScheduleExceptionRepository,
	storeRepo store.StoreRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:            db,
		templateRepo:  templateRepo,
		exceptionRepo: exceptionRepo,
		storeRepo:     storeRepo,
	}
}

// Helper to get owner_id from JWT context
func getOwnerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	ownerID, ok := claims["owner_id"].(string)
	if !ok || ownerID == "" {
		return "", fmt.Errorf("owner_id claim is missing or invalid")
	}

	return ownerID, nil
}

// ========== WEEKLY TEMPLATE ==========

func (s *ScheduleServiceImpl) CreateTemplate(ctx context.Context, req schedule.CreateTemplateRequest) (schedule.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	// Ownership check before writing anything
	if _, err := s.storeRepo.GetByID(ctx, req.StoreID, ownerID); err != nil {
		return schedule.TemplateResponse{}, err
	}

	template := schedule.WeeklyTemplate{
		StoreID:  req.StoreID,
		Name:     req.Name,
		IsActive: true,
	}
	for _, slot := range req.Slots {
		template.Slots = append(template.Slots, schedule.TemplateSlot{
			DayOfWeek:    slot.DayOfWeek,
			OpenTime:     slot.OpenTime,
			CloseTime:    slot.CloseTime,
			BreakPeriods: slot.BreakPeriods,
			EmployeeIDs:  slot.EmployeeIDs,
		})
	}

	created, err := s.templateRepo.Create(ctx, template, ownerID)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	return mapToTemplateResponse(created), nil
}

func (s *ScheduleServiceImpl) GetTemplate(ctx context.Context, id string) (schedule.TemplateResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	template, err := s.templateRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	return mapToTemplateResponse(template), nil
}

func (s *ScheduleServiceImpl) ListTemplates(ctx context.Context, storeID string) ([]schedule.TemplateResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := s.templateRepo.GetByStoreID(ctx, storeID, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]schedule.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, mapToTemplateResponse(t))
	}
	return result, nil
}

func (s *ScheduleServiceImpl) UpdateTemplate(ctx context.Context, req schedule.UpdateTemplateRequest) (schedule.TemplateResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	updated, err := s.templateRepo.Update(ctx, req, ownerID)
	if err != nil {
		return schedule.TemplateResponse{}, err
	}

	return mapToTemplateResponse(updated), nil
}

func (s *ScheduleServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.templateRepo.SoftDelete(ctx, id, ownerID)
}

// ========== SCHEDULE EXCEPTION ==========

func (s *ScheduleServiceImpl) CreateException(ctx context.Context, req schedule.CreateExceptionRequest) (schedule.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ExceptionResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return schedule.ExceptionResponse{}, err
	}

	if _, err := s.storeRepo.GetByID(ctx, req.StoreID, ownerID); err != nil {
		return schedule.ExceptionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	exception := schedule.ScheduleException{
		StoreID:      req.StoreID,
		EmployeeID:   req.EmployeeID,
		Date:         date,
		Type:         schedule.ExceptionType(strings.ToUpper(req.Type)),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakPeriods: req.BreakPeriods,
		Reason:       req.Reason,
	}

	created, err := s.exceptionRepo.Create(ctx, exception, ownerID)
	if err != nil {
		return schedule.ExceptionResponse{}, err
	}

	return mapToExceptionResponse(created), nil
}

func (s *ScheduleServiceImpl) ListExceptions(ctx context.Context, storeID string, from, to time.Time) ([]schedule.ExceptionResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	exceptions, err := s.exceptionRepo.GetByStoreAndRange(ctx, storeID, from, to, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]schedule.ExceptionResponse, 0, len(exceptions))
	for _, e := range exceptions {
		result = append(result, mapToExceptionResponse(e))
	}
	return result, nil
}

func (s *ScheduleServiceImpl) DeleteException(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.exceptionRepo.Delete(ctx, id, ownerID)
}

// ========== EXPANSION ==========

func (s *ScheduleServiceImpl) ExpandShifts(ctx context.Context, storeID string, from, to time.Time) ([]schedule.Shift, error) {
	if from.After(to) {
		return nil, schedule.ErrInvalidPeriod
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetActiveByStoreID(ctx, storeID, ownerID)
	if err != nil {
		if errors.Is(err, schedule.ErrNoActiveTemplate) {
			// A store without a template simply has no scheduled shifts.
			return []schedule.Shift{}, nil
		}
		return nil, err
	}

	exceptions, err := s.exceptionRepo.GetByStoreAndRange(ctx, storeID, from, to, ownerID)
	if err != nil {
		return nil, err
	}

	return ExpandShifts(template, exceptions, from, to), nil
}

// ========== HELPERS ==========

func mapToTemplateResponse(t schedule.WeeklyTemplate) schedule.TemplateResponse {
	resp := schedule.TemplateResponse{
		ID:       t.ID,
		StoreID:  t.StoreID,
		Name:     t.Name,
		IsActive: t.IsActive,
		Slots:    make([]schedule.TemplateSlotResponse, 0, len(t.Slots)),
	}
	for _, slot := range t.Slots {
		resp.Slots = append(resp.Slots, schedule.TemplateSlotResponse{
			ID:           slot.ID,
			DayOfWeek:    slot.DayOfWeek,
			OpenTime:     slot.OpenTime,
			CloseTime:    slot.CloseTime,
			BreakPeriods: slot.BreakPeriods,
			EmployeeIDs:  slot.EmployeeIDs,
		})
	}
	return resp
}

func mapToExceptionResponse(e schedule.ScheduleException) schedule.ExceptionResponse {
	return schedule.ExceptionResponse{
		ID:           e.ID,
		StoreID:      e.StoreID,
		EmployeeID:   e.EmployeeID,
		Date:         e.Date.Format("2006-01-02"),
		Type:         string(e.Type),
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		BreakPeriods: e.BreakPeriods,
		Reason:       e.Reason,
	}
}
