package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/employee"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, store_id, name, position, phone_number, hourly_wage, hire_date, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.StoreID, &emp.Name, &emp.Position, &emp.PhoneNumber,
		&emp.HourlyWage, &emp.HireDate, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.New().String()

	query := `
		INSERT INTO employees (id, store_id, name, position, phone_number, hourly_wage, hire_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.StoreID, emp.Name, emp.Position, emp.PhoneNumber,
		emp.HourlyWage, emp.HireDate, emp.IsActive,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $2 AND deleted_at IS NULL
		)
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, ownerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByStoreID(ctx context.Context, storeID string, ownerID string) ([]employee.Employee, error) {
	return r.listByStore(ctx, storeID, ownerID, false)
}

func (r *employeeRepositoryImpl) GetActiveByStoreID(ctx context.Context, storeID string, ownerID string) ([]employee.Employee, error) {
	return r.listByStore(ctx, storeID, ownerID, true)
}

func (r *employeeRepositoryImpl) listByStore(ctx context.Context, storeID string, ownerID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE store_id = $1 AND deleted_at IS NULL AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $2 AND deleted_at IS NULL
		)
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, storeID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, ownerID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}
	argIdx := 2

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Position != nil {
		updates = append(updates, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.PhoneNumber != nil {
		updates = append(updates, fmt.Sprintf("phone_number = $%d", argIdx))
		args = append(args, *req.PhoneNumber)
		argIdx++
	}
	if req.HourlyWage != nil {
		updates = append(updates, fmt.Sprintf("hourly_wage = $%d", argIdx))
		args = append(args, *req.HourlyWage)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	args = append(args, req.ID, ownerID)
	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(` WHERE id = $%d AND deleted_at IS NULL AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $%d AND deleted_at IS NULL
		)`, argIdx, argIdx+1) +
		" RETURNING " + employeeColumns

	emp, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND store_id IN (
			SELECT id FROM stores WHERE owner_id = $2 AND deleted_at IS NULL
		)
	`

	tag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
