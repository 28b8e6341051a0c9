package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnimalType is the species of an animal.
type AnimalType string

const (
	AnimalTypeSheep   AnimalType = "SHEEP"
	AnimalTypeGoat    AnimalType = "GOAT"
	AnimalTypeCow     AnimalType = "COW"
	AnimalTypeChicken AnimalType = "CHICKEN"
	AnimalTypePig     AnimalType = "PIG"
	AnimalTypeHorse   AnimalType = "HORSE"
	AnimalTypeOther   AnimalType = "OTHER"
)

// IsValid checks if the AnimalType is a known value.
func (t AnimalType) IsValid() bool {
	switch t {
	case AnimalTypeSheep, AnimalTypeGoat, AnimalTypeCow, AnimalTypeChicken,
		AnimalTypePig, AnimalTypeHorse, AnimalTypeOther:
		return true
	default:
		return false
	}
}

// HealthStatus describes the current condition of an animal.
type HealthStatus string

const (
	HealthStatusHealthy     HealthStatus = "HEALTHY"
	HealthStatusSick        HealthStatus = "SICK"
	HealthStatusInjured     HealthStatus = "INJURED"
	HealthStatusQuarantined HealthStatus = "QUARANTINED"
	HealthStatusDeceased    HealthStatus = "DECEASED"
)

// IsValid checks if the HealthStatus is a known value.
func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthStatusHealthy, HealthStatusSick, HealthStatusInjured,
		HealthStatusQuarantined, HealthStatusDeceased:
		return true
	default:
		return false
	}
}

// BreedingMethod is how a breeding event was carried out.
type BreedingMethod string

const (
	BreedingMethodNatural                BreedingMethod = "NATURAL"
	BreedingMethodArtificialInsemination BreedingMethod = "ARTIFICIAL_INSEMINATION"
)

// IsValid checks if the BreedingMethod is a known value.
func (m BreedingMethod) IsValid() bool {
	return m == BreedingMethodNatural || m == BreedingMethodArtificialInsemination
}

// Animal is a single head of livestock kept on a farm.
type Animal struct {
	ID           uuid.UUID
	Name         string
	Type         AnimalType
	BirthDate    *time.Time
	Weight       *float64 // Kilograms.
	HealthStatus HealthStatus
	FarmID       uuid.UUID
	Farm         *Farm
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID walks Animal -> Farm -> User.
func (a *Animal) OwnerID() uuid.UUID {
	if a == nil || a.Farm == nil {
		return uuid.Nil
	}

	return a.Farm.UserID
}

// AnimalFilter narrows an animal listing. Zero values mean "no filter".
type AnimalFilter struct {
	OwnerID      uuid.UUID
	Type         AnimalType
	HealthStatus HealthStatus
	Search       string
	Offset       int
	Limit        int
}

// Vaccine records a vaccination given to an animal.
type Vaccine struct {
	ID          uuid.UUID
	Name        string
	Date        time.Time
	Description *string
	AnimalID    uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Breeding records a breeding event for an animal, optionally with a partner.
type Breeding struct {
	ID              uuid.UUID
	Date            time.Time
	Method          BreedingMethod
	Notes           *string
	AnimalID        uuid.UUID
	PartnerAnimalID *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
