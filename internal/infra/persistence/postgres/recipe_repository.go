package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"
)

// recipeRepository implements the domain's RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("recipe author does not exist")
		}

		return errors.Wrap(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByID retrieves a single recipe with its author identity.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// List returns one page of recipes, newest first, plus the total match count.
// Search is a case-insensitive match against title and description.
func (repo *recipeRepository) List(ctx context.Context, params repository.ListRecipesParams) ([]*entity.Recipe, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RecipeModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if params.MaxCookingTime > 0 {
		query = query.Where("cooking_time <= ?", params.MaxCookingTime)
	}
	if params.MinIngredients > 0 {
		query = query.Where("jsonb_array_length(ingredients) >= ?", params.MinIngredients)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count recipes")
	}

	var recipeMs []*model.RecipeModel
	err := query.
		Preload("Author").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&recipeMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for _, recipeM := range recipeMs {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, total, nil
}

// Update persists the full state of an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	// Struct-based Updates keeps the jsonb serializer in play for ingredients.
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Select("title", "description", "ingredients", "cooking_time").
		Updates(recipeM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// Delete removes a recipe and its like rows. Two statements; callers run it
// through the transaction manager so they commit or roll back together.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&model.RecipeLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete recipe likes")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// HasLike reports whether the account has liked the recipe.
func (repo *recipeRepository) HasLike(ctx context.Context, recipeID, accountID uuid.UUID) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.RecipeLikeModel{}).
		Where("recipe_id = ? AND account_id = ?", recipeID, accountID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check like")
	}

	return count > 0, nil
}

// AddLike inserts the like row and increments the counter.
func (repo *recipeRepository) AddLike(ctx context.Context, recipeID, accountID uuid.UUID) error {
	like := &model.RecipeLikeModel{RecipeID: recipeID, AccountID: accountID}

	if err := repo.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already liked; the counter is already consistent.
			return nil
		}

		return errors.Wrap(err, "failed to add like")
	}

	err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipeID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error

	return errors.Wrap(err, "failed to increment likes count")
}

// RemoveLike deletes the like row and decrements the counter.
func (repo *recipeRepository) RemoveLike(ctx context.Context, recipeID, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("recipe_id = ? AND account_id = ?", recipeID, accountID).
		Delete(&model.RecipeLikeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	err := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", recipeID).
		UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error

	return errors.Wrap(err, "failed to decrement likes count")
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Title:       data.Title,
		Description: data.Description,
		Ingredients: data.Ingredients,
		CookingTime: data.CookingTime,
		LikesCount:  data.LikesCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Author != nil {
		recipe.Author = &entity.Identity{
			ID:       data.Author.ID,
			Username: data.Author.Username,
		}
	}

	return recipe
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:          data.ID,
		AuthorID:    data.AuthorID,
		Title:       data.Title,
		Description: data.Description,
		Ingredients: data.Ingredients,
		CookingTime: data.CookingTime,
		LikesCount:  data.LikesCount,
	}
}
