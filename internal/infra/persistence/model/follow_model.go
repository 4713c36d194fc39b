package model

import (
	"github.com/google/uuid"
)

// FollowModel mirrors the 'follows' table. The composite primary key makes
// the (follower, followed) pair the natural key and rejects duplicate edges
// at the database level.
type FollowModel struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey;column:follower_id"`
	FollowedID uuid.UUID `gorm:"type:uuid;primaryKey;column:followed_id"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
