package qrcode

import (
	"testing"

	"farmhub/config"
	"farmhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	assert.NotNil(t, NewFromConfig(&config.Config{}))
	assert.NotNil(t, NewFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}

func TestQRCodeService_GenerateAnimalTag(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateAnimalTag(&service.AnimalTag{
		AnimalID: uuid.New(),
		FarmID:   uuid.New(),
		Name:     "Dolly",
		URL:      "https://farm.example.com/animals/1",
	})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateAnimalTag_MissingID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateAnimalTag(&service.AnimalTag{Name: "nameless"})
	assert.Error(t, err)

	_, err = svc.GenerateAnimalTag(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseAnimalTag(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	animalID := uuid.New()
	farmID := uuid.New()

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid tag",
			data: `{"type":"animal","animalId":"` + animalID.String() + `","farmId":"` + farmID.String() + `","name":"Dolly"}`,
		},
		{
			name:    "wrong type",
			data:    `{"type":"subscription","animalId":"` + animalID.String() + `","farmId":"` + farmID.String() + `"}`,
			wantErr: true,
		},
		{
			name:    "bad animal id",
			data:    `{"type":"animal","animalId":"nope","farmId":"` + farmID.String() + `"}`,
			wantErr: true,
		},
		{
			name:    "bad farm id",
			data:    `{"type":"animal","animalId":"` + animalID.String() + `","farmId":"nope"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			data:    "plain text",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := svc.ParseAnimalTag(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, animalID, tag.AnimalID)
			assert.Equal(t, farmID, tag.FarmID)
			assert.Equal(t, "Dolly", tag.Name)
		})
	}
}
