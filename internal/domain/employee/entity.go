package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	StoreID    string
	Name       string
	Position   *string
	PhoneNumber *string
	HourlyWage decimal.Decimal
	HireDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
