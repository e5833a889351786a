package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const recordColumns = `pr.id, pr.store_id, pr.period_start, pr.period_end, pr.status, pr.data, pr.totals, pr.confirmed_at, pr.created_at, pr.updated_at, s.name`

func scanRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var data, totals []byte
	err := row.Scan(
		&rec.ID, &rec.StoreID, &rec.PeriodStart, &rec.PeriodEnd, &rec.Status,
		&data, &totals, &rec.ConfirmedAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.StoreName,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal payroll data: %w", err)
	}
	if err := json.Unmarshal(totals, &rec.Totals); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to unmarshal payroll totals: %w", err)
	}
	return rec, nil
}

func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, record payroll.PayrollRecord, ownerID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.New().String()
	record.Status = payroll.RecordStatusDraft

	data, err := json.Marshal(record.Data)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal payroll data: %w", err)
	}
	totals, err := json.Marshal(record.Totals)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to marshal payroll totals: %w", err)
	}

	query := `
		INSERT INTO payroll_records (id, store_id, period_start, period_end, status, data, totals, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		WHERE $2 IN (SELECT id FROM stores WHERE owner_id = $8 AND deleted_at IS NULL)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		record.ID, record.StoreID, record.PeriodStart, record.PeriodEnd,
		record.Status, data, totals, ownerID,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string, ownerID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN stores s ON s.id = pr.store_id
		WHERE pr.id = $1 AND s.owner_id = $2 AND s.deleted_at IS NULL
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepositoryImpl) ListRecords(ctx context.Context, ownerID string, filter payroll.RecordFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `s.owner_id = $1 AND s.deleted_at IS NULL`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.StoreID != "" {
		where += fmt.Sprintf(" AND pr.store_id = $%d", argIdx)
		args = append(args, filter.StoreID)
		argIdx++
	}
	if filter.Status != "" {
		where += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM payroll_records pr
		JOIN stores s ON s.id = pr.store_id
		WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records pr
		JOIN stores s ON s.id = pr.store_id
		WHERE ` + where +
		fmt.Sprintf(" ORDER BY pr.period_start DESC, pr.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *payrollRepositoryImpl) ConfirmRecord(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records pr
		SET status = $1, confirmed_at = NOW(), updated_at = NOW()
		FROM stores s
		WHERE pr.id = $2 AND pr.status = $3
			AND s.id = pr.store_id AND s.owner_id = $4 AND s.deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, payroll.RecordStatusConfirmed, id, payroll.RecordStatusDraft, ownerID)
	if err != nil {
		return fmt.Errorf("failed to confirm payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a missing record from one already confirmed.
		if _, getErr := r.GetRecordByID(ctx, id, ownerID); getErr == nil {
			return payroll.ErrRecordAlreadyConfirmed
		}
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

func (r *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_records pr
		USING stores s
		WHERE pr.id = $1 AND pr.status = $2
			AND s.id = pr.store_id AND s.owner_id = $3 AND s.deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, payroll.RecordStatusDraft, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetRecordByID(ctx, id, ownerID); getErr == nil {
			return payroll.ErrRecordAlreadyConfirmed
		}
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
