package usecase

import (
	"context"
	"time"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to publish a recipe.
// The owner comes from the verified token, never from the request body.
type CreateRecipeInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ResolveQRInput carries a scanned QR payload to be resolved to a recipe.
type ResolveQRInput struct {
	Payload string `json:"payload" validate:"required"`
}

// RecipeOutput returns the public view of a recipe.
type RecipeOutput struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	UserID      uuid.UUID `json:"userId"`
}

// NewRecipeOutput maps a recipe entity to its public view.
func NewRecipeOutput(recipe *entity.Recipe) *RecipeOutput {
	return &RecipeOutput{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		Date:        recipe.Date,
		UserID:      recipe.UserID,
	}
}

// RecipeUsecase defines the interface for recipe-related business operations.
type RecipeUsecase interface {
	// CreateRecipe publishes a new recipe owned by ownerID.
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, input *CreateRecipeInput) (*RecipeOutput, error)

	// GetRecipe returns a recipe by id.
	GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeOutput, error)

	// ShareQR renders a QR code PNG encoding the recipe's share payload.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ResolveQR resolves a scanned share payload back to the recipe it encodes.
	ResolveQR(ctx context.Context, input *ResolveQRInput) (*RecipeOutput, error)
}
