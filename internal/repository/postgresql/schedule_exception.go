package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleExceptionRepositoryImpl struct {
	db *database.DB
}

func NewScheduleExceptionRepository(db *database.DB) schedule.ScheduleExceptionRepository {
	return &scheduleExceptionRepositoryImpl{db: db}
}

const exceptionColumns = `id, store_id, employee_id, date, type, start_time, end_time, break_periods, reason, created_at, updated_at`

func scanException(row pgx.Row) (schedule.ScheduleException, error) {
	var exc schedule.ScheduleException
	var breaks []byte
	err := row.Scan(
		&exc.ID, &exc.StoreID, &exc.EmployeeID, &exc.Date, &exc.Type,
		&exc.StartTime, &exc.EndTime, &breaks, &exc.Reason,
		&exc.CreatedAt, &exc.UpdatedAt,
	)
	if err != nil {
		return schedule.ScheduleException{}, err
	}
	if len(breaks) > 0 {
		if err := json.Unmarshal(breaks, &exc.BreakPeriods); err != nil {
			return schedule.ScheduleException{}, fmt.Errorf("failed to unmarshal break periods: %w", err)
		}
	}
	return exc, nil
}

func (r *scheduleExceptionRepositoryImpl) Create(ctx context.Context, exception schedule.ScheduleException, ownerID string) (schedule.ScheduleException, error) {
	q := GetQuerier(ctx, r.db)

	exception.ID = uuid.New().String()

	breaks, err := json.Marshal(exception.BreakPeriods)
	if err != nil {
		return schedule.ScheduleException{}, fmt.Errorf("failed to marshal break periods: %w", err)
	}

	query := `
		INSERT INTO schedule_exceptions (id, store_id, employee_id, date, type, start_time, end_time, break_periods, reason, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		WHERE $2 IN (SELECT id FROM stores WHERE owner_id = $10 AND deleted_at IS NULL)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		exception.ID, exception.StoreID, exception.EmployeeID, exception.Date,
		exception.Type, exception.StartTime, exception.EndTime, breaks, exception.Reason,
		ownerID,
	).Scan(&exception.CreatedAt, &exception.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.ScheduleException{}, store.ErrStoreNotFound
	}
	if err != nil {
		return schedule.ScheduleException{}, fmt.Errorf("failed to create schedule exception: %w", err)
	}

	return exception, nil
}

func (r *scheduleExceptionRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (schedule.ScheduleException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM schedule_exceptions
		WHERE id = $1 AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $2 AND deleted_at IS NULL
		)
	`

	exc, err := scanException(q.QueryRow(ctx, query, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.ScheduleException{}, schedule.ErrExceptionNotFound
	}
	if err != nil {
		return schedule.ScheduleException{}, fmt.Errorf("failed to get schedule exception: %w", err)
	}

	return exc, nil
}

func (r *scheduleExceptionRepositoryImpl) GetByStoreAndRange(ctx context.Context, storeID string, from, to time.Time, ownerID string) ([]schedule.ScheduleException, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + exceptionColumns + `
		FROM schedule_exceptions
		WHERE store_id = $1 AND date >= $2 AND date <= $3 AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $4 AND deleted_at IS NULL
		)
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, storeID, from, to, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []schedule.ScheduleException
	for rows.Next() {
		exc, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule exception: %w", err)
		}
		exceptions = append(exceptions, exc)
	}

	return exceptions, rows.Err()
}

func (r *scheduleExceptionRepositoryImpl) Delete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM schedule_exceptions
		WHERE id = $1 AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $2 AND deleted_at IS NULL
		)
	`

	tag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule exception: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrExceptionNotFound
	}

	return nil
}
