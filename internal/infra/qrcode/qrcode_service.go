package qrcode

import (
	"encoding/json"
	"fmt"

	"farmhub/config"
	"farmhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	tagType = "animal"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// tagData is the JSON document encoded in an animal tag.
type tagData struct {
	Type     string `json:"type"`
	AnimalID string `json:"animalId"`
	FarmID   string `json:"farmId"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the qrcode config section, falling back to defaults.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateAnimalTag renders the tag as a PNG QR code
func (s *qrcodeService) GenerateAnimalTag(tag *service.AnimalTag) ([]byte, error) {
	if tag == nil || tag.AnimalID == uuid.Nil {
		return nil, fmt.Errorf("animal tag requires an animal ID")
	}

	jsonData, err := json.Marshal(tagData{
		Type:     tagType,
		AnimalID: tag.AnimalID.String(),
		FarmID:   tag.FarmID.String(),
		Name:     tag.Name,
		URL:      tag.URL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAnimalTag parses scanned QR code data back into a tag
func (s *qrcodeService) ParseAnimalTag(qrData string) (*service.AnimalTag, error) {
	var data tagData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != tagType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	animalID, err := uuid.Parse(data.AnimalID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse animal ID: %w", err)
	}

	farmID, err := uuid.Parse(data.FarmID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse farm ID: %w", err)
	}

	return &service.AnimalTag{
		AnimalID: animalID,
		FarmID:   farmID,
		Name:     data.Name,
		URL:      data.URL,
	}, nil
}
