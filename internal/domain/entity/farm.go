package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm belongs to exactly one user and is the ownership boundary for
// animals and food stock.
type Farm struct {
	ID          uuid.UUID
	Name        string
	Location    *string
	Description *string
	UserID      uuid.UUID
	Owner       *UserSummary // Populated by listing queries only.
	Animals     []*Animal    // Populated by listing queries only.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID implements Owned.
func (f *Farm) OwnerID() uuid.UUID {
	if f == nil {
		return uuid.Nil
	}

	return f.UserID
}

// UserSummary is the public subset of a user shown next to a farm.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// FoodStock is a feed or supply record kept for a farm.
type FoodStock struct {
	ID         uuid.UUID
	Name       string
	Quantity   float64
	Unit       string
	ExpiryDate *time.Time
	FarmID     uuid.UUID
	Farm       *Farm // Loaded so ownership can be checked through the farm.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID walks FoodStock -> Farm -> User. A stock without a loaded farm
// has no owner.
func (s *FoodStock) OwnerID() uuid.UUID {
	if s == nil || s.Farm == nil {
		return uuid.Nil
	}

	return s.Farm.UserID
}
