package impl

import (
	"context"
	"log/slog"
	"time"

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

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	scope       repository.ConnectionScope
	idGenerator service.IDGenerator
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	Scope       repository.ConnectionScope
	IDGenerator service.IDGenerator
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		scope:       params.Scope,
		idGenerator: params.IDGenerator,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRecipe publishes a new recipe owned by ownerID. The id is issued by
// the generator and the publication date is fixed here, not in storage.
func (srv *recipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	newRecipe := &entity.Recipe{
		ID:          srv.idGenerator.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Date:        time.Now(),
		UserID:      ownerID,
	}

	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.Recipes().Create(ctx, newRecipe)
	})
	if err != nil {
		srv.log(ctx).Warn("Recipe creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", newRecipe.ID), slog.Any("ownerID", ownerID))

	return usecase.NewRecipeOutput(newRecipe), nil
}

// GetRecipe returns a recipe by id.
func (srv *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecipeOutput(recipe), nil
}

// ShareQR renders a QR code PNG for sharing the recipe. The recipe must
// exist; a miss is reported the same way as GetRecipe.
func (srv *recipeService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.findRecipe(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateRecipeQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to render recipe QR", slog.Any("recipeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render recipe QR")
	}

	return png, nil
}

// ResolveQR resolves a scanned share payload back to the recipe it encodes.
// A payload that is not a recipe share is a validation failure, not a miss.
func (srv *recipeService) ResolveQR(ctx context.Context, input *usecase.ResolveQRInput) (*usecase.RecipeOutput, error) {
	recipeID, err := srv.qrService.ParseRecipeQR(input.Payload)
	if err != nil {
		srv.log(ctx).Warn("QR payload rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "not a recipe share payload")
	}

	recipe, err := srv.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return usecase.NewRecipeOutput(recipe), nil
}

func (srv *recipeService) findRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipe *entity.Recipe
	err := srv.scope.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var findErr error
		recipe, findErr = repos.Recipes().FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe lookup")
			}

			return errors.Wrap(findErr, "failed to find recipe by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Recipe lookup failed", slog.Any("recipeID", id), slog.Any("error", err))

		return nil, err
	}

	return recipe, nil
}
