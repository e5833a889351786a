package store

import (
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/pkg/validator"
)

type CreateStoreRequest struct {
	Name     string  `json:"name"`
	Address  *string `json:"address,omitempty"`
	Timezone string  `json:"timezone,omitempty"`
}

func (r CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{Field: "timezone", Message: "unknown timezone name"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStoreRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Timezone != nil {
		if _, err := time.LoadLocation(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{Field: "timezone", Message: "unknown timezone name"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Timezone  string  `json:"timezone"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
}

type ListStoreResponse struct {
	Data       []StoreResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
}
