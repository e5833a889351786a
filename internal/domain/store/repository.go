package store

import "context"

type StoreRepository interface {
	Create(ctx context.Context, store Store) (Store, error)
	GetByID(ctx context.Context, id string, ownerID string) (Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]Store, error)
	Update(ctx context.Context, req UpdateStoreRequest, ownerID string) (Store, error)
	SoftDelete(ctx context.Context, id string, ownerID string) error
}
