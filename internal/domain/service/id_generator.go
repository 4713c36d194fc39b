package service

import "github.com/google/uuid"

// IDGenerator produces globally unique identifiers for new entities.
// Generation never fails under normal operation; an exhausted entropy
// source is treated as fatal by the implementation.
type IDGenerator interface {
	NewID() uuid.UUID
}
