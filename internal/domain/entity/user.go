// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// The ID is assigned by the application's identifier generator at signup,
// never by the database.
type User struct {
	ID           uuid.UUID // Application-issued unique identifier.
	Name         string    // The user's display name.
	Email        string    // The user's email, used as the login identifier. Unique.
	PasswordHash string    // The salted bcrypt digest of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
