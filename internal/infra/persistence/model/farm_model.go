package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel mirrors the 'farms' table.
type FarmModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Location    *string   `gorm:"type:varchar(255)"`
	Description *string   `gorm:"type:text"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User       *UserModel       `gorm:"foreignKey:UserID"`
	Animals    []AnimalModel    `gorm:"foreignKey:FarmID"`
	FoodStocks []FoodStockModel `gorm:"foreignKey:FarmID"`
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}

// FoodStockModel mirrors the 'food_stocks' table.
type FoodStockModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Quantity   float64   `gorm:"not null"`
	Unit       string    `gorm:"type:varchar(32);not null"`
	ExpiryDate *time.Time
	FarmID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Farm *FarmModel `gorm:"foreignKey:FarmID"`
}

// TableName explicitly sets the table name for GORM.
func (FoodStockModel) TableName() string {
	return "food_stocks"
}
