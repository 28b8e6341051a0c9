package model

import (
	"time"

	"github.com/google/uuid"
)

// AnimalModel mirrors the 'animals' table.
type AnimalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Type         string    `gorm:"type:varchar(32);not null"`
	BirthDate    *time.Time
	Weight       *float64
	HealthStatus string    `gorm:"type:varchar(32);not null;default:HEALTHY"`
	FarmID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Farm      *FarmModel      `gorm:"foreignKey:FarmID"`
	Vaccines  []VaccineModel  `gorm:"foreignKey:AnimalID"`
	Breedings []BreedingModel `gorm:"foreignKey:AnimalID"`
}

// TableName explicitly sets the table name for GORM.
func (AnimalModel) TableName() string {
	return "animals"
}

// VaccineModel mirrors the 'vaccines' table.
type VaccineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Date        time.Time `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	AnimalID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VaccineModel) TableName() string {
	return "vaccines"
}

// BreedingModel mirrors the 'breedings' table.
type BreedingModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date            time.Time  `gorm:"not null"`
	Method          string     `gorm:"type:varchar(32);not null"`
	Notes           *string    `gorm:"type:text"`
	AnimalID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartnerAnimalID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BreedingModel) TableName() string {
	return "breedings"
}
