package entity

import (
	"github.com/google/uuid"
)

// Follow is a directed edge meaning "follower follows followed".
// The pair is the natural key; there is no surrogate id.
type Follow struct {
	FollowerID uuid.UUID
	FollowedID uuid.UUID
}
