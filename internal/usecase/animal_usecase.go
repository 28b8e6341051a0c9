package usecase

import (
	"context"
	"time"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Pagination bounds for animal listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateAnimalInput defines a new animal. It is placed in the caller's latest farm.
type CreateAnimalInput struct {
	Name         string
	Type         entity.AnimalType
	BirthDate    *time.Time
	Weight       *float64
	HealthStatus entity.HealthStatus
}

// UpdateAnimalInput holds the animal fields to change. Nil fields are left untouched.
type UpdateAnimalInput struct {
	Name         *string
	Type         *entity.AnimalType
	BirthDate    *time.Time
	Weight       *float64
	HealthStatus *entity.HealthStatus
	FarmID       *uuid.UUID
}

// ListAnimalsInput filters and pages the caller's animals.
type ListAnimalsInput struct {
	Page         int
	Limit        int
	Type         entity.AnimalType
	HealthStatus entity.HealthStatus
	Search       string
}

// AnimalPage is one page of animals.
type AnimalPage struct {
	Animals    []*entity.Animal
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// VaccineInput defines a vaccination record.
type VaccineInput struct {
	Name        string
	Date        time.Time
	Description *string
}

// BreedingInput defines a breeding record.
type BreedingInput struct {
	Date            time.Time
	Method          entity.BreedingMethod
	Notes           *string
	PartnerAnimalID *uuid.UUID
}

// AnimalUsecase manages animals and their health and breeding history.
// Every method that takes an animal ID checks the caller owns it through its farm.
type AnimalUsecase interface {
	CreateAnimal(ctx context.Context, callerID uuid.UUID, input *CreateAnimalInput) (*entity.Animal, error)
	ListAnimals(ctx context.Context, callerID uuid.UUID, input *ListAnimalsInput) (*AnimalPage, error)
	GetAnimal(ctx context.Context, callerID, animalID uuid.UUID) (*entity.Animal, error)
	UpdateAnimal(ctx context.Context, callerID, animalID uuid.UUID, input *UpdateAnimalInput) (*entity.Animal, error)
	DeleteAnimal(ctx context.Context, callerID, animalID uuid.UUID) error

	// GenerateTag renders the animal's QR tag as a PNG.
	GenerateTag(ctx context.Context, callerID, animalID uuid.UUID) ([]byte, error)

	AddVaccine(ctx context.Context, callerID, animalID uuid.UUID, input *VaccineInput) (*entity.Vaccine, error)
	ListVaccines(ctx context.Context, callerID, animalID uuid.UUID) ([]*entity.Vaccine, error)
	DeleteVaccine(ctx context.Context, callerID, animalID, vaccineID uuid.UUID) error

	AddBreeding(ctx context.Context, callerID, animalID uuid.UUID, input *BreedingInput) (*entity.Breeding, error)
	ListBreedings(ctx context.Context, callerID, animalID uuid.UUID) ([]*entity.Breeding, error)
	DeleteBreeding(ctx context.Context, callerID, animalID, breedingID uuid.UUID) error
}
