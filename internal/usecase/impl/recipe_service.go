package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateInput runs struct tag validation and converts the first failure
// into a field-level validation error.
func (srv *recipeService) validateInput(input any) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.NewValidationError(first.Field(), "Invalid value for "+first.Field())
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, "recipe input validation")
}

// CreateRecipe validates and persists a new recipe for the author.
func (srv *recipeService) CreateRecipe(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	srv.log(ctx).Info("Creating recipe", slog.Any("authorID", input.AuthorID), slog.String("title", input.Title))

	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		AuthorID:    input.AuthorID,
		Title:       input.Title,
		Description: input.Description,
		Ingredients: input.Ingredients,
		CookingTime: input.CookingTime,
	}

	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to create recipe", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	return srv.loadRecipe(ctx, recipe.ID)
}

// GetRecipe loads a single recipe with its author identity.
func (srv *recipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*entity.Recipe, error) {
	return srv.loadRecipe(ctx, recipeID)
}

// ListRecipes returns one page of the feed, newest first. Page and limit
// fall back to defaults, limit is capped.
func (srv *recipeService) ListRecipes(ctx context.Context, input *usecase.ListRecipesInput) (*usecase.RecipePage, error) {
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	params := repository.ListRecipesParams{
		Offset:         (page - 1) * limit,
		Limit:          limit,
		Search:         input.Search,
		MaxCookingTime: input.MaxCookingTime,
		MinIngredients: input.MinIngredients,
	}

	recipes, total, err := srv.recipeRepo.List(ctx, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.RecipePage{
		Recipes:    recipes,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateRecipe applies a partial update after an author check.
func (srv *recipeService) UpdateRecipe(ctx context.Context, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	srv.log(ctx).Info("Updating recipe", slog.Any("recipeID", input.RecipeID), slog.Any("requesterID", input.RequesterID))

	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	recipe, err := srv.loadRecipe(ctx, input.RecipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != input.RequesterID {
		srv.log(ctx).Warn("Update forbidden", slog.Any("recipeID", input.RecipeID), slog.Any("requesterID", input.RequesterID))

		return nil, domainerrors.ErrForbidden.WithDetails("You can only update your own recipes")
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Ingredients != nil {
		recipe.Ingredients = *input.Ingredients
	}
	if input.CookingTime != nil {
		recipe.CookingTime = *input.CookingTime
	}

	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		srv.log(ctx).Error("Failed to update recipe", slog.Any("recipeID", input.RecipeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	return srv.loadRecipe(ctx, input.RecipeID)
}

// DeleteRecipe removes a recipe after an author check. The recipe and its
// like rows go away in one transaction so a failure cannot leave orphans.
func (srv *recipeService) DeleteRecipe(ctx context.Context, recipeID, requesterID uuid.UUID) error {
	srv.log(ctx).Info("Deleting recipe", slog.Any("recipeID", recipeID), slog.Any("requesterID", requesterID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe lookup failed")
			}

			srv.log(ctx).Error("Failed to load recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

			return errors.Wrap(err, "failed to load recipe")
		}

		if recipe.AuthorID != requesterID {
			srv.log(ctx).Warn("Delete forbidden", slog.Any("recipeID", recipeID), slog.Any("requesterID", requesterID))

			return domainerrors.ErrForbidden.WithDetails("You can only delete your own recipes")
		}

		if err := recipeRepo.Delete(ctx, recipeID); err != nil {
			srv.log(ctx).Error("Failed to delete recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

			return errors.Wrap(err, "failed to delete recipe")
		}

		return nil
	})
}

// ToggleLike flips the like state inside one transaction so the counter and
// the like rows cannot drift apart.
func (srv *recipeService) ToggleLike(ctx context.Context, recipeID, accountID uuid.UUID) (*usecase.LikeOutput, error) {
	srv.log(ctx).Debug("Toggling like", slog.Any("recipeID", recipeID), slog.Any("accountID", accountID))

	var output *usecase.LikeOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		recipe, err := recipeRepo.FindByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "toggle like failed")
			}

			return errors.Wrap(err, "failed to find recipe")
		}

		liked, err := recipeRepo.HasLike(ctx, recipeID, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to check like state")
		}

		if liked {
			if err := recipeRepo.RemoveLike(ctx, recipeID, accountID); err != nil {
				return errors.Wrap(err, "failed to remove like")
			}
			output = &usecase.LikeOutput{Liked: false, LikesCount: recipe.LikesCount - 1}

			return nil
		}

		if err := recipeRepo.AddLike(ctx, recipeID, accountID); err != nil {
			return errors.Wrap(err, "failed to add like")
		}
		output = &usecase.LikeOutput{Liked: true, LikesCount: recipe.LikesCount + 1}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute like transaction", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

func (srv *recipeService) loadRecipe(ctx context.Context, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe lookup failed")
		}

		srv.log(ctx).Error("Failed to load recipe", slog.Any("recipeID", recipeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load recipe")
	}

	return recipe, nil
}
