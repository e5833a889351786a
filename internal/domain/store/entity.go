package store

import "time"

type Store struct {
	ID        string
	OwnerID   string
	Name      string
	Address   *string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
