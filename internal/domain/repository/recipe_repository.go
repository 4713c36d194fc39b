package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is a domain-specific error returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// Create persists a new recipe with its caller-supplied id.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a single recipe by its unique ID.
	// A miss returns ErrRecipeNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
}
