package repository

import (
	"context"
	"errors"

	"farmhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for animal persistence.
var (
	ErrAnimalNotFound   = errors.New("animal not found")
	ErrVaccineNotFound  = errors.New("vaccine not found")
	ErrBreedingNotFound = errors.New("breeding not found")
)

// AnimalRepository defines persistence for animals.
type AnimalRepository interface {
	Create(ctx context.Context, animal *entity.Animal) error

	// FindByID loads the animal with its farm, so ownership can be checked.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Animal, error)

	// List returns one page of animals matching the filter, newest first,
	// along with the total number of matches.
	List(ctx context.Context, filter entity.AnimalFilter) ([]*entity.Animal, int64, error)

	Update(ctx context.Context, animal *entity.Animal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VaccineRepository defines persistence for vaccination records.
type VaccineRepository interface {
	Create(ctx context.Context, vaccine *entity.Vaccine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vaccine, error)

	// ListByAnimalID returns the animal's vaccinations, most recent date first.
	ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*entity.Vaccine, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// BreedingRepository defines persistence for breeding records.
type BreedingRepository interface {
	Create(ctx context.Context, breeding *entity.Breeding) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Breeding, error)

	// ListByAnimalID returns the animal's breeding events, most recent date first.
	ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*entity.Breeding, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
