// Package id provides the application's identifier generator.
package id

import (
	"github.com/google/uuid"

	"cookbook/internal/domain/service"
)

// uuidGenerator issues version-4 random UUIDs. The underlying random source
// is crypto/rand, which is safe for concurrent use; exhaustion of the entropy
// source panics inside uuid.New and is treated as fatal.
type uuidGenerator struct{}

// NewUUIDGenerator is the constructor for uuidGenerator.
// It returns the implementation as a service.IDGenerator interface.
func NewUUIDGenerator() service.IDGenerator {
	return &uuidGenerator{}
}

// NewID produces a fresh identifier.
func (g *uuidGenerator) NewID() uuid.UUID {
	return uuid.New()
}
