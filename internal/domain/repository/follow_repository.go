package repository

import (
	"context"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowRepository defines the operations on follow edges. The
// (follower, followed) pair is the natural key: creating an edge that
// already exists surfaces as a storage conflict, deleting an edge that
// does not exist is a no-op.
type FollowRepository interface {
	// Create persists a new follow edge.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes the edge matching the exact pair, if any.
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
}
