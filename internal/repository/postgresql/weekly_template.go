package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type weeklyTemplateRepositoryImpl struct {
	db *database.DB
}

func NewWeeklyTemplateRepository(db *database.DB) schedule.WeeklyTemplateRepository {
	return &weeklyTemplateRepositoryImpl{db: db}
}

// ownedTemplateCond scopes a query to templates whose store belongs to the
// caller. Every read and write goes through it.
const ownedTemplateCond = `store_id IN (SELECT id FROM stores WHERE owner_id = $%d AND deleted_at IS NULL)`

func (r *weeklyTemplateRepositoryImpl) Create(ctx context.Context, template schedule.WeeklyTemplate, ownerID string) (schedule.WeeklyTemplate, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	template.ID = uuid.New().String()

	// Only one template per store is active at a time.
	if template.IsActive {
		_, err = tx.Exec(ctx,
			`UPDATE weekly_templates SET is_active = false, updated_at = NOW() WHERE store_id = $1 AND deleted_at IS NULL`,
			template.StoreID,
		)
		if err != nil {
			return schedule.WeeklyTemplate{}, fmt.Errorf("failed to deactivate templates: %w", err)
		}
	}

	query := `
		INSERT INTO weekly_templates (id, store_id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = tx.QueryRow(ctx, query, template.ID, template.StoreID, template.Name, template.IsActive).
		Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("failed to create template: %w", err)
	}

	slots, err := insertSlots(ctx, tx, template.ID, template.Slots)
	if err != nil {
		return schedule.WeeklyTemplate{}, err
	}
	template.Slots = slots

	if err := tx.Commit(ctx); err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("commit transaction: %w", err)
	}

	return template, nil
}

func insertSlots(ctx context.Context, tx pgx.Tx, templateID string, slots []schedule.TemplateSlot) ([]schedule.TemplateSlot, error) {
	query := `
		INSERT INTO template_slots (id, template_id, day_of_week, open_time, close_time, break_periods, employee_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	out := make([]schedule.TemplateSlot, 0, len(slots))
	for _, slot := range slots {
		slot.ID = uuid.New().String()
		slot.TemplateID = templateID

		breaks, err := json.Marshal(slot.BreakPeriods)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal break periods: %w", err)
		}

		err = tx.QueryRow(ctx, query,
			slot.ID, slot.TemplateID, slot.DayOfWeek, slot.OpenTime, slot.CloseTime,
			breaks, slot.EmployeeIDs,
		).Scan(&slot.CreatedAt, &slot.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to create template slot: %w", err)
		}

		out = append(out, slot)
	}

	return out, nil
}

func (r *weeklyTemplateRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (schedule.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, is_active, created_at, updated_at
		FROM weekly_templates
		WHERE id = $1 AND deleted_at IS NULL AND ` + fmt.Sprintf(ownedTemplateCond, 2)

	var template schedule.WeeklyTemplate
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&template.ID, &template.StoreID, &template.Name, &template.IsActive,
		&template.CreatedAt, &template.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.WeeklyTemplate{}, schedule.ErrTemplateNotFound
	}
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}

	template.Slots, err = r.loadSlots(ctx, q, template.ID)
	if err != nil {
		return schedule.WeeklyTemplate{}, err
	}

	return template, nil
}

func (r *weeklyTemplateRepositoryImpl) GetActiveByStoreID(ctx context.Context, storeID string, ownerID string) (schedule.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, is_active, created_at, updated_at
		FROM weekly_templates
		WHERE store_id = $1 AND is_active = true AND deleted_at IS NULL AND ` + fmt.Sprintf(ownedTemplateCond, 2)

	var template schedule.WeeklyTemplate
	err := q.QueryRow(ctx, query, storeID, ownerID).Scan(
		&template.ID, &template.StoreID, &template.Name, &template.IsActive,
		&template.CreatedAt, &template.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.WeeklyTemplate{}, schedule.ErrNoActiveTemplate
	}
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("failed to get active template: %w", err)
	}

	template.Slots, err = r.loadSlots(ctx, q, template.ID)
	if err != nil {
		return schedule.WeeklyTemplate{}, err
	}

	return template, nil
}

func (r *weeklyTemplateRepositoryImpl) GetByStoreID(ctx context.Context, storeID string, ownerID string) ([]schedule.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, is_active, created_at, updated_at
		FROM weekly_templates
		WHERE store_id = $1 AND deleted_at IS NULL AND ` + fmt.Sprintf(ownedTemplateCond, 2) + `
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, storeID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []schedule.WeeklyTemplate
	for rows.Next() {
		var template schedule.WeeklyTemplate
		err := rows.Scan(
			&template.ID, &template.StoreID, &template.Name, &template.IsActive,
			&template.CreatedAt, &template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range templates {
		templates[i].Slots, err = r.loadSlots(ctx, q, templates[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return templates, nil
}

func (r *weeklyTemplateRepositoryImpl) loadSlots(ctx context.Context, q database.Querier, templateID string) ([]schedule.TemplateSlot, error) {
	query := `
		SELECT id, template_id, day_of_week, open_time, close_time, break_periods, employee_ids, created_at, updated_at
		FROM template_slots
		WHERE template_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list template slots: %w", err)
	}
	defer rows.Close()

	var slots []schedule.TemplateSlot
	for rows.Next() {
		var slot schedule.TemplateSlot
		var breaks []byte
		err := rows.Scan(
			&slot.ID, &slot.TemplateID, &slot.DayOfWeek, &slot.OpenTime, &slot.CloseTime,
			&breaks, &slot.EmployeeIDs, &slot.CreatedAt, &slot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template slot: %w", err)
		}
		if len(breaks) > 0 {
			if err := json.Unmarshal(breaks, &slot.BreakPeriods); err != nil {
				return nil, fmt.Errorf("failed to unmarshal break periods: %w", err)
			}
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

func (r *weeklyTemplateRepositoryImpl) Update(ctx context.Context, req schedule.UpdateTemplateRequest, ownerID string) (schedule.WeeklyTemplate, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var template schedule.WeeklyTemplate
	query := `
		SELECT id, store_id, name, is_active, created_at, updated_at
		FROM weekly_templates
		WHERE id = $1 AND deleted_at IS NULL AND ` + fmt.Sprintf(ownedTemplateCond, 2) + `
		FOR UPDATE`
	err = tx.QueryRow(ctx, query, req.ID, ownerID).Scan(
		&template.ID, &template.StoreID, &template.Name, &template.IsActive,
		&template.CreatedAt, &template.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.WeeklyTemplate{}, schedule.ErrTemplateNotFound
	}
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if template.IsActive {
		_, err = tx.Exec(ctx,
			`UPDATE weekly_templates SET is_active = false, updated_at = NOW() WHERE store_id = $1 AND id <> $2 AND deleted_at IS NULL`,
			template.StoreID, template.ID,
		)
		if err != nil {
			return schedule.WeeklyTemplate{}, fmt.Errorf("failed to deactivate templates: %w", err)
		}
	}

	template.UpdatedAt = time.Now()
	_, err = tx.Exec(ctx,
		`UPDATE weekly_templates SET name = $1, is_active = $2, updated_at = $3 WHERE id = $4`,
		template.Name, template.IsActive, template.UpdatedAt, template.ID,
	)
	if err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("failed to update template: %w", err)
	}

	if req.Slots != nil {
		// Slot updates replace the whole week.
		_, err = tx.Exec(ctx, `DELETE FROM template_slots WHERE template_id = $1`, template.ID)
		if err != nil {
			return schedule.WeeklyTemplate{}, fmt.Errorf("failed to clear template slots: %w", err)
		}

		newSlots := make([]schedule.TemplateSlot, 0, len(*req.Slots))
		for _, s := range *req.Slots {
			newSlots = append(newSlots, schedule.TemplateSlot{
				DayOfWeek:    s.DayOfWeek,
				OpenTime:     s.OpenTime,
				CloseTime:    s.CloseTime,
				BreakPeriods: s.BreakPeriods,
				EmployeeIDs:  s.EmployeeIDs,
			})
		}

		template.Slots, err = insertSlots(ctx, tx, template.ID, newSlots)
		if err != nil {
			return schedule.WeeklyTemplate{}, err
		}
	} else {
		template.Slots, err = r.loadSlots(ctx, tx, template.ID)
		if err != nil {
			return schedule.WeeklyTemplate{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return schedule.WeeklyTemplate{}, fmt.Errorf("commit transaction: %w", err)
	}

	return template, nil
}

func (r *weeklyTemplateRepositoryImpl) SoftDelete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE weekly_templates SET deleted_at = NOW(), updated_at = NOW(), is_active = false
		WHERE id = $1 AND deleted_at IS NULL AND ` + fmt.Sprintf(ownedTemplateCond, 2)

	tag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrTemplateNotFound
	}

	return nil
}
