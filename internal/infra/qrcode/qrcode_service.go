// Package qrcode implements the QR code domain service on skip2/go-qrcode.
package qrcode

import (
	"encoding/json"
	"fmt"

	"cookbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RecipeID string `json:"recipe_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

// GenerateRecipeQR generates a QR code PNG for sharing a recipe.
func (s *qrcodeService) GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		RecipeID: recipeID.String(),
		Type:     "recipe",
	}

	jsonData, err := json.Marshal(data)
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

// ParseRecipeQR parses QR code data and returns the recipe ID.
func (s *qrcodeService) ParseRecipeQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "recipe" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	recipeID, err := uuid.Parse(data.RecipeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse recipe ID: %w", err)
	}

	return recipeID, nil
}
