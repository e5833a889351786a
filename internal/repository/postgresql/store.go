package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

func (r *storeRepositoryImpl) Create(ctx context.Context, st store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	st.ID = uuid.New().String()

	query := `
		INSERT INTO stores (id, owner_id, name, address, timezone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		st.ID, st.OwnerID, st.Name, st.Address, st.Timezone, st.IsActive,
	).Scan(&st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.Store{}, store.ErrStoreNameExists
		}
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return st, nil
}

func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, timezone, is_active, created_at, updated_at
		FROM stores
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
	`

	var st store.Store
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&st.ID, &st.OwnerID, &st.Name, &st.Address, &st.Timezone, &st.IsActive,
		&st.CreatedAt, &st.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return store.Store{}, store.ErrStoreNotFound
	}
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return st, nil
}

func (r *storeRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID string) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, timezone, is_active, created_at, updated_at
		FROM stores
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var st store.Store
		if err := rows.Scan(
			&st.ID, &st.OwnerID, &st.Name, &st.Address, &st.Timezone, &st.IsActive,
			&st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, st)
	}

	return stores, rows.Err()
}

func (r *storeRepositoryImpl) Update(ctx context.Context, req store.UpdateStoreRequest, ownerID string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		updates = append(updates, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Timezone != nil {
		updates = append(updates, fmt.Sprintf("timezone = $%d", argIdx))
		args = append(args, *req.Timezone)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	args = append(args, req.ID, ownerID)
	query := "UPDATE stores SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND owner_id = $%d AND deleted_at IS NULL", argIdx, argIdx+1) +
		" RETURNING id, owner_id, name, address, timezone, is_active, created_at, updated_at"

	var st store.Store
	err := q.QueryRow(ctx, query, args...).Scan(
		&st.ID, &st.OwnerID, &st.Name, &st.Address, &st.Timezone, &st.IsActive,
		&st.CreatedAt, &st.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return store.Store{}, store.ErrStoreNotFound
	}
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to update store: %w", err)
	}

	return st, nil
}

func (r *storeRepositoryImpl) SoftDelete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}
