package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FollowInput names the account to follow or unfollow. The follower comes
// from the verified token.
type FollowInput struct {
	FollowedID uuid.UUID `json:"followedId" validate:"required"`
}

// FollowUsecase defines the interface for follow-graph operations.
type FollowUsecase interface {
	// Follow creates the edge follower -> followed.
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error

	// Unfollow removes the edge follower -> followed. Removing an edge that
	// does not exist succeeds.
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error
}
