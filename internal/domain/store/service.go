package store

import "context"

type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	Get(ctx context.Context, id string) (StoreResponse, error)
	List(ctx context.Context) (ListStoreResponse, error)
	Update(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)
	Delete(ctx context.Context, id string) error
}
