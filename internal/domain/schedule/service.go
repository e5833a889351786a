package schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	// Weekly Template
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	GetTemplate(ctx context.Context, id string) (TemplateResponse, error)
	ListTemplates(ctx context.Context, storeID string) ([]TemplateResponse, error)
	UpdateTemplate(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string) error

	// Schedule Exception
	CreateException(ctx context.Context, req CreateExceptionRequest) (ExceptionResponse, error)
	ListExceptions(ctx context.Context, storeID string, from, to time.Time) ([]ExceptionResponse, error)
	DeleteException(ctx context.Context, id string) error

	// Expansion: active template + exceptions -> concrete shifts
	ExpandShifts(ctx context.Context, storeID string, from, to time.Time) ([]Shift, error)
}
