package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
	"pantry/internal/usecase"
)

func newRecipeService(repo *fakeRecipeRepo) usecase.RecipeUsecase {
	svc, _ := newRecipeServiceWithTx(repo)

	return svc
}

func newRecipeServiceWithTx(repo *fakeRecipeRepo) (usecase.RecipeUsecase, *fakeTxManager) {
	txManager := &fakeTxManager{factory: &fakeRepoFactory{recipeRepo: repo}}
	svc := NewRecipeService(RecipeServiceParams{
		TxManager:  txManager,
		RecipeRepo: repo,
		Logger:     testLogger(),
	})

	return svc, txManager
}

func validCreateInput(authorID uuid.UUID) *usecase.CreateRecipeInput {
	return &usecase.CreateRecipeInput{
		AuthorID:    authorID,
		Title:       "Tomato Soup",
		Description: "A simple soup made from ripe tomatoes.",
		Ingredients: []string{"tomatoes", "salt", "basil"},
		CookingTime: 30,
	}
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())
	authorID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(authorID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.Equal(t, authorID, recipe.AuthorID)
	assert.Equal(t, "Tomato Soup", recipe.Title)
	assert.Equal(t, 0, recipe.LikesCount)
}

func TestRecipeService_CreateRecipe_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())
	authorID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*usecase.CreateRecipeInput)
	}{
		{name: "title too short", mutate: func(in *usecase.CreateRecipeInput) { in.Title = "ab" }},
		{name: "description too short", mutate: func(in *usecase.CreateRecipeInput) { in.Description = "short" }},
		{name: "no ingredients", mutate: func(in *usecase.CreateRecipeInput) { in.Ingredients = nil }},
		{name: "empty ingredient", mutate: func(in *usecase.CreateRecipeInput) { in.Ingredients = []string{""} }},
		{name: "cooking time zero", mutate: func(in *usecase.CreateRecipeInput) { in.CookingTime = 0 }},
		{name: "cooking time too long", mutate: func(in *usecase.CreateRecipeInput) { in.CookingTime = 1441 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validCreateInput(authorID)
			tt.mutate(input)

			_, err := svc.CreateRecipe(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_ListRecipes(t *testing.T) {
	t.Parallel()

	repo := newFakeRecipeRepo()
	svc := newRecipeService(repo)
	authorID := uuid.New()

	titles := []string{"Tomato Soup", "Pumpkin Pie", "Tomato Salad"}
	for _, title := range titles {
		input := validCreateInput(authorID)
		input.Title = title

		_, err := svc.CreateRecipe(context.Background(), input)
		require.NoError(t, err)
	}

	page, err := svc.ListRecipes(context.Background(), &usecase.ListRecipesInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Recipes, 3)

	// Newest first.
	assert.Equal(t, "Tomato Salad", page.Recipes[0].Title)
	assert.Equal(t, "Tomato Soup", page.Recipes[2].Title)
}

func TestRecipeService_ListRecipes_SearchAndPagination(t *testing.T) {
	t.Parallel()

	repo := newFakeRecipeRepo()
	svc := newRecipeService(repo)
	authorID := uuid.New()

	for _, title := range []string{"Tomato Soup", "Pumpkin Pie", "Tomato Salad"} {
		input := validCreateInput(authorID)
		input.Title = title

		_, err := svc.CreateRecipe(context.Background(), input)
		require.NoError(t, err)
	}

	page, err := svc.ListRecipes(context.Background(), &usecase.ListRecipesInput{Search: "tomato", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Recipes, 1)
	assert.Equal(t, "Tomato Salad", page.Recipes[0].Title)

	second, err := svc.ListRecipes(context.Background(), &usecase.ListRecipesInput{Search: "tomato", Limit: 1, Page: 2})
	require.NoError(t, err)
	require.Len(t, second.Recipes, 1)
	assert.Equal(t, "Tomato Soup", second.Recipes[0].Title)
}

func TestRecipeService_ListRecipes_Filters(t *testing.T) {
	t.Parallel()

	repo := newFakeRecipeRepo()
	svc := newRecipeService(repo)
	authorID := uuid.New()

	quick := validCreateInput(authorID)
	quick.Title = "Quick Toast"
	quick.CookingTime = 5
	quick.Ingredients = []string{"bread"}

	slow := validCreateInput(authorID)
	slow.Title = "Slow Stew"
	slow.CookingTime = 180
	slow.Ingredients = []string{"beef", "onion", "carrot", "potato"}

	for _, input := range []*usecase.CreateRecipeInput{quick, slow} {
		_, err := svc.CreateRecipe(context.Background(), input)
		require.NoError(t, err)
	}

	byTime, err := svc.ListRecipes(context.Background(), &usecase.ListRecipesInput{MaxCookingTime: 30})
	require.NoError(t, err)
	require.Len(t, byTime.Recipes, 1)
	assert.Equal(t, "Quick Toast", byTime.Recipes[0].Title)

	byIngredients, err := svc.ListRecipes(context.Background(), &usecase.ListRecipesInput{MinIngredients: 3})
	require.NoError(t, err)
	require.Len(t, byIngredients.Recipes, 1)
	assert.Equal(t, "Slow Stew", byIngredients.Recipes[0].Title)
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())
	authorID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(authorID))
	require.NoError(t, err)

	newTitle := "Roasted Tomato Soup"
	updated, err := svc.UpdateRecipe(context.Background(), &usecase.UpdateRecipeInput{
		RecipeID:    recipe.ID,
		RequesterID: authorID,
		Title:       &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, "Roasted Tomato Soup", updated.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, recipe.Description, updated.Description)
	assert.Equal(t, recipe.CookingTime, updated.CookingTime)
}

func TestRecipeService_UpdateRecipe_NotAuthor(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(uuid.New()))
	require.NoError(t, err)

	newTitle := "Hijacked Recipe"
	_, err = svc.UpdateRecipe(context.Background(), &usecase.UpdateRecipeInput{
		RecipeID:    recipe.ID,
		RequesterID: uuid.New(),
		Title:       &newTitle,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())
	authorID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(authorID))
	require.NoError(t, err)

	err = svc.DeleteRecipe(context.Background(), recipe.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	require.NoError(t, svc.DeleteRecipe(context.Background(), recipe.ID, authorID))

	_, err = svc.GetRecipe(context.Background(), recipe.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_DeleteRecipe_RunsInTransaction(t *testing.T) {
	t.Parallel()

	repo := newFakeRecipeRepo()
	svc, txManager := newRecipeServiceWithTx(repo)
	authorID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(authorID))
	require.NoError(t, err)
	require.Equal(t, 0, txManager.executions)

	require.NoError(t, svc.DeleteRecipe(context.Background(), recipe.ID, authorID))

	// The author check and both deletes share one transaction.
	assert.Equal(t, 1, txManager.executions)

	_, err = svc.GetRecipe(context.Background(), recipe.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_ToggleLike(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())
	accountID := uuid.New()

	recipe, err := svc.CreateRecipe(context.Background(), validCreateInput(uuid.New()))
	require.NoError(t, err)

	liked, err := svc.ToggleLike(context.Background(), recipe.ID, accountID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.LikesCount)

	unliked, err := svc.ToggleLike(context.Background(), recipe.ID, accountID)
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, 0, unliked.LikesCount)
}

func TestRecipeService_ToggleLike_RecipeNotFound(t *testing.T) {
	t.Parallel()

	svc := newRecipeService(newFakeRecipeRepo())

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}
