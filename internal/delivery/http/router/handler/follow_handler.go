package handler

import (
	"log/slog"
	"net/http"

	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FollowHandler holds dependencies for follow-graph handlers.
type FollowHandler struct {
	uc     usecase.FollowUsecase
	logger *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler, injected by Fx.
func NewFollowHandler(uc usecase.FollowUsecase, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{
		uc:     uc,
		logger: logger,
	}
}

// Follow handles the request to follow another user.
func (h *FollowHandler) Follow(c echo.Context) error {
	followerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.FollowInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid follow input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Follow(c.Request().Context(), followerID, input.FollowedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"followedId": input.FollowedID.String()}, "Followed successfully")
}

// Unfollow handles the request to unfollow another user.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	followerID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.FollowInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unfollow input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Unfollow(c.Request().Context(), followerID, input.FollowedID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"followedId": input.FollowedID.String()}, "Unfollowed successfully")
}
