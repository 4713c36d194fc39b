package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services.
type QRCodeService interface {
	// GenerateRecipeQR generates a QR code PNG encoding a recipe share payload.
	GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error)

	// ParseRecipeQR parses QR code data and returns the recipe ID.
	ParseRecipeQR(qrData string) (uuid.UUID, error)
}
