package store

import (
	"context"
	"fmt"

	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type StoreServiceImpl struct {
	db        *database.DB
	storeRepo store.StoreRepository
}

func NewStoreService(db *database.DB, storeRepo store.StoreRepository) store.StoreService {
	return &StoreServiceImpl{
		db:        db,
		storeRepo: storeRepo,
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

func (s *StoreServiceImpl) Create(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "Asia/Seoul"
	}

	created, err := s.storeRepo.Create(ctx, store.Store{
		OwnerID:  ownerID,
		Name:     req.Name,
		Address:  req.Address,
		Timezone: timezone,
		IsActive: true,
	})
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToStoreResponse(created), nil
}

func (s *StoreServiceImpl) Get(ctx context.Context, id string) (store.StoreResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.storeRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToStoreResponse(st), nil
}

func (s *StoreServiceImpl) List(ctx context.Context) (store.ListStoreResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return store.ListStoreResponse{}, err
	}

	stores, err := s.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return store.ListStoreResponse{}, err
	}

	result := store.ListStoreResponse{
		Data:       make([]store.StoreResponse, 0, len(stores)),
		TotalCount: int64(len(stores)),
	}
	for _, st := range stores {
		result.Data = append(result.Data, mapToStoreResponse(st))
	}
	return result, nil
}

func (s *StoreServiceImpl) Update(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	updated, err := s.storeRepo.Update(ctx, req, ownerID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return mapToStoreResponse(updated), nil
}

func (s *StoreServiceImpl) Delete(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.storeRepo.SoftDelete(ctx, id, ownerID)
}

func mapToStoreResponse(st store.Store) store.StoreResponse {
	return store.StoreResponse{
		ID:        st.ID,
		Name:      st.Name,
		Address:   st.Address,
		Timezone:  st.Timezone,
		IsActive:  st.IsActive,
		CreatedAt: st.CreatedAt.Format("2006-01-02"),
	}
}
