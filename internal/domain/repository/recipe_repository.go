package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for recipe persistence.
var (
	// ErrRecipeNotFound is returned when no recipe matches the lookup key.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrLikeNotFound is returned when removing a like that does not exist.
	ErrLikeNotFound = errors.New("like not found")
)

// ListRecipesParams narrows and pages the recipe feed query.
type ListRecipesParams struct {
	Offset         int
	Limit          int
	Search         string // Case-insensitive match over title and description.
	MaxCookingTime int    // Minutes; 0 disables the filter.
	MinIngredients int    // 0 disables the filter.
}

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// Create persists a new recipe and fills in generated fields.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a single recipe with its author projection.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// List returns one page of recipes, newest first, plus the total count
	// of recipes matching the filters.
	List(ctx context.Context, params ListRecipesParams) ([]*entity.Recipe, int64, error)

	// Update modifies an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe and its likes.
	Delete(ctx context.Context, id uuid.UUID) error

	// HasLike reports whether the account has liked the recipe.
	HasLike(ctx context.Context, recipeID, accountID uuid.UUID) (bool, error)

	// AddLike inserts a like row and increments the recipe's likes counter.
	AddLike(ctx context.Context, recipeID, accountID uuid.UUID) error

	// RemoveLike deletes the like row and decrements the likes counter.
	RemoveLike(ctx context.Context, recipeID, accountID uuid.UUID) error
}
