package impl

import (
	"context"
	"testing"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type followServiceFixtures struct {
	service    usecase.FollowUsecase
	followRepo *fakeFollowRepo
}

func createTestFollowService(t *testing.T) followServiceFixtures {
	t.Helper()

	followRepo := &fakeFollowRepo{}
	svc := NewFollowService(FollowServiceParams{
		Scope:  &fakeScope{factory: &fakeFactory{follows: followRepo}},
		Logger: newDiscardLogger(),
	})

	return followServiceFixtures{
		service:    svc,
		followRepo: followRepo,
	}
}

func TestFollowService_Follow_Success(t *testing.T) {
	fx := createTestFollowService(t)

	followerID := uuid.New()
	followedID := uuid.New()

	var stored *entity.Follow
	fx.followRepo.createFn = func(ctx context.Context, follow *entity.Follow) error {
		stored = follow

		return nil
	}

	err := fx.service.Follow(context.Background(), followerID, followedID)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, followerID, stored.FollowerID)
	assert.Equal(t, followedID, stored.FollowedID)
}

func TestFollowService_Follow_Duplicate(t *testing.T) {
	fx := createTestFollowService(t)

	fx.followRepo.createFn = func(ctx context.Context, follow *entity.Follow) error {
		return domainerrors.ErrAlreadyFollowing
	}

	err := fx.service.Follow(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyFollowing))
}

func TestFollowService_Follow_Self(t *testing.T) {
	fx := createTestFollowService(t)

	fx.followRepo.createFn = func(ctx context.Context, follow *entity.Follow) error {
		t.Fatal("storage must not be reached for a self-follow")

		return nil
	}

	id := uuid.New()
	err := fx.service.Follow(context.Background(), id, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestFollowService_Unfollow_Success(t *testing.T) {
	fx := createTestFollowService(t)

	followerID := uuid.New()
	followedID := uuid.New()

	var gotFollower, gotFollowed uuid.UUID
	fx.followRepo.deleteFn = func(ctx context.Context, followerID, followedID uuid.UUID) error {
		gotFollower = followerID
		gotFollowed = followedID

		return nil
	}

	err := fx.service.Unfollow(context.Background(), followerID, followedID)

	require.NoError(t, err)
	assert.Equal(t, followerID, gotFollower)
	assert.Equal(t, followedID, gotFollowed)
}

func TestFollowService_Unfollow_MissingEdge(t *testing.T) {
	fx := createTestFollowService(t)

	// The repository treats deleting a missing edge as a no-op, so the
	// service reports success.
	fx.followRepo.deleteFn = func(ctx context.Context, followerID, followedID uuid.UUID) error {
		return nil
	}

	err := fx.service.Unfollow(context.Background(), uuid.New(), uuid.New())

	assert.NoError(t, err)
}
