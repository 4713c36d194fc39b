// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/domain/service"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	scope        repository.ConnectionScope
	hasher       service.PasswordHasher
	tokenService service.TokenService
	idGenerator  service.IDGenerator
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Scope        repository.ConnectionScope
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	IDGenerator  service.IDGenerator
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		scope:        params.Scope,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		idGenerator:  params.IDGenerator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account. The password is hashed before the
// connection scope opens (bcrypt is CPU-bound) so the plaintext never reaches
// the persistence layer, and the user row stores only the digest.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		ID:           srv.idGenerator.NewID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
	}

	err = srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.Users().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both surface as ErrInvalidCredentials so a caller cannot tell
// which accounts exist. A digest that the hasher cannot parse is corrupted
// stored data and fails the request, not the credential check.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var loginUser *entity.User
	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var findErr error
		loginUser, findErr = repos.Users().FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the scope (bcrypt is CPU-bound).
	match, err := srv.hasher.Check(input.Password, loginUser.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored digest is corrupted", slog.Any("userID", loginUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCorruptedDigest, err.Error())
	}
	if !match {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(loginUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after login", slog.Any("userID", loginUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loginUser.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// GetProfile returns the public profile for the given user id.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	var profileUser *entity.User
	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var findErr error
		profileUser, findErr = repos.Users().FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile lookup failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return usecase.NewProfileOutput(profileUser), nil
}
