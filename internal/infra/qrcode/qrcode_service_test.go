package qrcode

import (
	"encoding/json"
	"testing"

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRecipeQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	recipeID := uuid.New()

	qrBytes, err := service.GenerateRecipeQR(recipeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateRecipeQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			recipeID := uuid.New()

			qrBytes, err := service.GenerateRecipeQR(recipeID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseRecipeQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	recipeID := uuid.New()

	data := QRCodeData{
		RecipeID: recipeID.String(),
		Type:     "recipe",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseRecipeQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, recipeID, parsedID)
}

func TestQRCodeService_ParseRecipeQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "this is not json"},
		{"Wrong type", `{"recipe_id":"` + uuid.New().String() + `","type":"subscription"}`},
		{"Bad recipe id", `{"recipe_id":"not-a-uuid","type":"recipe"}`},
		{"Empty payload", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParseRecipeQR(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
		})
	}
}
