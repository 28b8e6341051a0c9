package service

import (
	"github.com/google/uuid"
)

// AnimalTag is the payload encoded into an animal's QR tag.
type AnimalTag struct {
	AnimalID uuid.UUID `json:"animalId"`
	FarmID   uuid.UUID `json:"farmId"`
	Name     string    `json:"name"`
	URL      string    `json:"url,omitempty"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAnimalTag renders the tag as a PNG image.
	GenerateAnimalTag(tag *AnimalTag) ([]byte, error)

	// ParseAnimalTag decodes the JSON carried by a scanned tag.
	ParseAnimalTag(qrData string) (*AnimalTag, error)
}
