package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a recipe published by a user. Ownership is immutable:
// once created, a recipe never changes hands.
type Recipe struct {
	ID          uuid.UUID // Application-issued unique identifier.
	Title       string
	Description string
	Date        time.Time // When the recipe was published.
	UserID      uuid.UUID // The owner. References User.ID.
}
