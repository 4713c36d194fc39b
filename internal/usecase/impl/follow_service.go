package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// followService implements the FollowUsecase interface.
type followService struct {
	scope  repository.ConnectionScope
	logger *slog.Logger
}

// FollowServiceParams holds dependencies for FollowService, injected by Fx.
type FollowServiceParams struct {
	fx.In

	Scope  repository.ConnectionScope
	Logger *slog.Logger
}

// NewFollowService is the constructor for followService.
func NewFollowService(params FollowServiceParams) usecase.FollowUsecase {
	return &followService{
		scope:  params.Scope,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *followService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow creates the edge follower -> followed. Following yourself is a
// validation error; the storage layer does not enforce that rule.
func (srv *followService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "cannot follow yourself")
	}

	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.Follows().Create(ctx, &entity.Follow{
			FollowerID: followerID,
			FollowedID: followedID,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Follow failed",
			slog.Any("followerID", followerID),
			slog.Any("followedID", followedID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to create follow")
	}

	srv.log(ctx).Debug("Follow created", slog.Any("followerID", followerID), slog.Any("followedID", followedID))

	return nil
}

// Unfollow removes the edge follower -> followed. Removing an edge that does
// not exist succeeds; unfollow is idempotent.
func (srv *followService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.Follows().Delete(ctx, followerID, followedID)
	})
	if err != nil {
		srv.log(ctx).Warn("Unfollow failed",
			slog.Any("followerID", followerID),
			slog.Any("followedID", followedID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to delete follow")
	}

	srv.log(ctx).Debug("Follow removed", slog.Any("followerID", followerID), slog.Any("followedID", followedID))

	return nil
}
