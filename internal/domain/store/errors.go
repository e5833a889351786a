package store

import "errors"

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreNameExists = errors.New("store with this name already exists")
	ErrStoreInactive   = errors.New("store is inactive")
	ErrUnauthorized    = errors.New("store does not belong to this owner")
	ErrInvalidTimezone = errors.New("invalid timezone name")
)
