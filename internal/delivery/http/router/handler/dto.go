package handler

import (
	"encoding/json"
	"strings"
	"time"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Date accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	raw = strings.TrimSpace(raw)

	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			d.Time = parsed

			return nil
		}
	}

	return errors.Errorf("invalid date %q", raw)
}

// Ptr returns nil for a nil date.
func (d *Date) Ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time

	return &t
}

// UserResponse is a user as returned to clients, without credentials.
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	Phone        *string     `json:"phone"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Role         entity.Role `json:"role"`
	IsOnboarding bool        `json:"isOnboarding"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Phone:        u.Phone,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		IsOnboarding: u.IsOnboarding,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return out
}

// FarmResponse is a farm, optionally with its owner summary and animals.
type FarmResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Location    *string             `json:"location"`
	Description *string             `json:"description"`
	UserID      uuid.UUID           `json:"userId"`
	User        *entity.UserSummary `json:"user,omitempty"`
	Animals     []*AnimalResponse   `json:"animals,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newFarmResponse(f *entity.Farm) *FarmResponse {
	if f == nil {
		return nil
	}

	resp := &FarmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Location:    f.Location,
		Description: f.Description,
		UserID:      f.UserID,
		User:        f.Owner,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if f.Animals != nil {
		resp.Animals = newAnimalResponses(f.Animals)
	}

	return resp
}

func newFarmResponses(farms []*entity.Farm) []*FarmResponse {
	out := make([]*FarmResponse, 0, len(farms))
	for _, f := range farms {
		out = append(out, newFarmResponse(f))
	}

	return out
}

// FarmSummary is the farm shape returned by onboarding.
type FarmSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
}

// FoodStockResponse is a food stock record.
type FoodStockResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiryDate"`
	FarmID     uuid.UUID  `json:"farmId"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func newFoodStockResponse(s *entity.FoodStock) *FoodStockResponse {
	return &FoodStockResponse{
		ID:         s.ID,
		Name:       s.Name,
		Quantity:   s.Quantity,
		Unit:       s.Unit,
		ExpiryDate: s.ExpiryDate,
		FarmID:     s.FarmID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// AnimalResponse is an animal record.
type AnimalResponse struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Type         entity.AnimalType   `json:"type"`
	BirthDate    *time.Time          `json:"birthDate"`
	Weight       *float64            `json:"weight"`
	HealthStatus entity.HealthStatus `json:"healthStatus"`
	FarmID       uuid.UUID           `json:"farmId"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func newAnimalResponse(a *entity.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		BirthDate:    a.BirthDate,
		Weight:       a.Weight,
		HealthStatus: a.HealthStatus,
		FarmID:       a.FarmID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func newAnimalResponses(animals []*entity.Animal) []*AnimalResponse {
	out := make([]*AnimalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, newAnimalResponse(a))
	}

	return out
}

// AnimalListResponse is one page of animals.
type AnimalListResponse struct {
	Data []*AnimalResponse `json:"data"`
	Meta PageMeta          `json:"meta"`
}

// PageMeta describes the position of a page in the full listing.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// VaccineResponse is a vaccination record.
type VaccineResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
	AnimalID    uuid.UUID `json:"animalId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newVaccineResponse(v *entity.Vaccine) *VaccineResponse {
	return &VaccineResponse{
		ID:          v.ID,
		Name:        v.Name,
		Date:        v.Date,
		Description: v.Description,
		AnimalID:    v.AnimalID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// BreedingResponse is a breeding record.
type BreedingResponse struct {
	ID              uuid.UUID             `json:"id"`
	Date            time.Time             `json:"date"`
	Method          entity.BreedingMethod `json:"method"`
	Notes           *string               `json:"notes"`
	AnimalID        uuid.UUID             `json:"animalId"`
	PartnerAnimalID *uuid.UUID            `json:"partnerAnimalId"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func newBreedingResponse(b *entity.Breeding) *BreedingResponse {
	return &BreedingResponse{
		ID:              b.ID,
		Date:            b.Date,
		Method:          b.Method,
		Notes:           b.Notes,
		AnimalID:        b.AnimalID,
		PartnerAnimalID: b.PartnerAnimalID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
