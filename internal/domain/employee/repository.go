package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string, ownerID string) (Employee, error)
	GetByStoreID(ctx context.Context, storeID string, ownerID string) ([]Employee, error)
	GetActiveByStoreID(ctx context.Context, storeID string, ownerID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, ownerID string) (Employee, error)
	SoftDelete(ctx context.Context, id string, ownerID string) error
}
