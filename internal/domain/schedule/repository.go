package schedule

import (
	"context"
	"time"
)

type WeeklyTemplateRepository interface {
	Create(ctx context.Context, template WeeklyTemplate, ownerID string) (WeeklyTemplate, error)
	GetByID(ctx context.Context, id string, ownerID string) (WeeklyTemplate, error)
	GetActiveByStoreID(ctx context.Context, storeID string, ownerID string) (WeeklyTemplate, error)
	GetByStoreID(ctx context.Context, storeID string, ownerID string) ([]WeeklyTemplate, error)
	Update(ctx context.Context, req UpdateTemplateRequest, ownerID string) (WeeklyTemplate, error)
	SoftDelete(ctx context.Context, id string, ownerID string) error
}

type ScheduleExceptionRepository interface {
	Create(ctx context.Context, exception ScheduleException, ownerID string) (ScheduleException, error)
	GetByID(ctx context.Context, id string, ownerID string) (ScheduleException, error)
	GetByStoreAndRange(ctx context.Context, storeID string, from, to time.Time, ownerID string) ([]ScheduleException, error)
	Delete(ctx context.Context, id string, ownerID string) error
}
