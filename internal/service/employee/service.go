package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/employee"
	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	storeRepo    store.StoreRepository
	policy       payroll.Policy
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
	policy payroll.Policy,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		policy:       policy,
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Ownership check: the store must belong to this owner
	if _, err := s.storeRepo.GetByID(ctx, req.StoreID, ownerID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	if hireDate.After(time.Now()) {
		return employee.EmployeeResponse{}, employee.ErrFutureHireDate
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Position:    req.Position,
		PhoneNumber: req.PhoneNumber,
		HourlyWage:  req.HourlyWage,
		HireDate:    hireDate,
		IsActive:    true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListByStore(ctx context.Context, storeID string) (employee.ListEmployeeResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, err := s.employeeRepo.GetByStoreID(ctx, storeID, ownerID)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: int64(len(employees)),
	}
	for _, emp := range employees {
		result.Data = append(result.Data, s.mapToEmployeeResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req, ownerID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.mapToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.SoftDelete(ctx, id, ownerID)
}

func (s *EmployeeServiceImpl) mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		StoreID:          emp.StoreID,
		Name:             emp.Name,
		Position:         emp.Position,
		PhoneNumber:      emp.PhoneNumber,
		HourlyWage:       emp.HourlyWage,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		IsActive:         emp.IsActive,
		BelowMinimumWage: emp.HourlyWage.LessThan(s.policy.MinimumWage),
	}
}
