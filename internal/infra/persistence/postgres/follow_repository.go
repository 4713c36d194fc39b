package postgres

import (
	"context"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// followRepository implements the domain.FollowRepository interface using GORM.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create persists a new follow edge. The composite primary key on
// (follower_id, followed_id) rejects a duplicate edge, which is surfaced as
// a domain conflict.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := fromFollowDomain(follow)

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyFollowing.WrapMessage("follow edge already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "follow references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
	}

	return nil
}

// Delete removes the edge matching the exact pair. Deleting an edge that does
// not exist is a no-op, not an error.
func (repo *followRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.FollowModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete follow")
	}

	return nil
}

// fromFollowDomain converts a domain Follow entity to a GORM FollowModel for persistence.
func fromFollowDomain(data *entity.Follow) *model.FollowModel {
	if data == nil {
		return nil
	}

	return &model.FollowModel{
		FollowerID: data.FollowerID,
		FollowedID: data.FollowedID,
	}
}
