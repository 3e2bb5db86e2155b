package usecase

import (
	"context"

	"github.com/google/uuid"

	"pantry/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRecipeInput defines the data required to publish a new recipe.
type CreateRecipeInput struct {
	AuthorID    uuid.UUID
	Title       string   `validate:"required,min=3,max=100"`
	Description string   `validate:"required,min=10,max=1000"`
	Ingredients []string `validate:"required,min=1,max=50,dive,required"`
	CookingTime int      `validate:"required,min=1,max=1440"`
}

// UpdateRecipeInput defines a partial update to an existing recipe. Nil
// fields are left unchanged.
type UpdateRecipeInput struct {
	RecipeID    uuid.UUID
	RequesterID uuid.UUID
	Title       *string   `validate:"omitempty,min=3,max=100"`
	Description *string   `validate:"omitempty,min=10,max=1000"`
	Ingredients *[]string `validate:"omitempty,min=1,max=50,dive,required"`
	CookingTime *int      `validate:"omitempty,min=1,max=1440"`
}

// ListRecipesInput defines pagination and filtering for the recipe feed.
type ListRecipesInput struct {
	Page           int    `validate:"omitempty,min=1"`
	Limit          int    `validate:"omitempty,min=1,max=100"`
	Search         string `validate:"omitempty,max=100"`
	MaxCookingTime int    `validate:"omitempty,min=1,max=1440"`
	MinIngredients int    `validate:"omitempty,min=1,max=50"`
}

// --- Output DTOs ---

// RecipePage is one page of the recipe feed, newest first.
type RecipePage struct {
	Recipes    []*entity.Recipe
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LikeOutput reports the state after toggling a like.
type LikeOutput struct {
	Liked      bool
	LikesCount int
}

// RecipeUsecase defines the interface for recipe-related business operations.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, input *ListRecipesInput) (*RecipePage, error)

	// UpdateRecipe applies a partial update. Only the author may update.
	UpdateRecipe(ctx context.Context, input *UpdateRecipeInput) (*entity.Recipe, error)

	// DeleteRecipe removes a recipe. Only the author may delete.
	DeleteRecipe(ctx context.Context, recipeID, requesterID uuid.UUID) error

	// ToggleLike likes the recipe when the account has not liked it yet and
	// removes the like otherwise, keeping the counter consistent.
	ToggleLike(ctx context.Context, recipeID, accountID uuid.UUID) (*LikeOutput, error)
}
