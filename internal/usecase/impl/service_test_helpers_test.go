package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- account repository fake ---

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entity.Account

	findByUsernameErr error
	createErr         error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := r.accounts[id]; ok {
		cloned := *account

		return &cloned, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	if r.findByUsernameErr != nil {
		return nil, r.findByUsernameErr
	}

	for _, account := range r.accounts {
		if account.Username == username {
			cloned := *account

			return &cloned, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}

	account.ID = uuid.New()
	cloned := *account
	r.accounts[account.ID] = &cloned

	return nil
}

// --- recipe repository fake ---

type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*entity.Recipe
	likes   map[uuid.UUID]map[uuid.UUID]bool
	order   []uuid.UUID

	createErr error
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{
		recipes: make(map[uuid.UUID]*entity.Recipe),
		likes:   make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (r *fakeRecipeRepo) Create(_ context.Context, recipe *entity.Recipe) error {
	if r.createErr != nil {
		return r.createErr
	}

	recipe.ID = uuid.New()
	cloned := *recipe
	r.recipes[recipe.ID] = &cloned
	r.order = append(r.order, recipe.ID)

	return nil
}

func (r *fakeRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Recipe, error) {
	if recipe, ok := r.recipes[id]; ok {
		cloned := *recipe

		return &cloned, nil
	}

	return nil, repository.ErrRecipeNotFound
}

func (r *fakeRecipeRepo) List(_ context.Context, params repository.ListRecipesParams) ([]*entity.Recipe, int64, error) {
	matched := make([]*entity.Recipe, 0, len(r.order))

	// Newest first: iterate insertion order in reverse.
	for i := len(r.order) - 1; i >= 0; i-- {
		recipe := r.recipes[r.order[i]]
		if params.Search != "" && !strings.Contains(strings.ToLower(recipe.Title), strings.ToLower(params.Search)) {
			continue
		}
		if params.MaxCookingTime > 0 && recipe.CookingTime > params.MaxCookingTime {
			continue
		}
		if params.MinIngredients > 0 && len(recipe.Ingredients) < params.MinIngredients {
			continue
		}

		cloned := *recipe
		matched = append(matched, &cloned)
	}

	total := int64(len(matched))

	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	end := params.Offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[params.Offset:end], total, nil
}

func (r *fakeRecipeRepo) Update(_ context.Context, recipe *entity.Recipe) error {
	if _, ok := r.recipes[recipe.ID]; !ok {
		return repository.ErrRecipeNotFound
	}

	cloned := *recipe
	r.recipes[recipe.ID] = &cloned

	return nil
}

func (r *fakeRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.recipes[id]; !ok {
		return repository.ErrRecipeNotFound
	}

	delete(r.recipes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

func (r *fakeRecipeRepo) HasLike(_ context.Context, recipeID, accountID uuid.UUID) (bool, error) {
	return r.likes[recipeID][accountID], nil
}

func (r *fakeRecipeRepo) AddLike(_ context.Context, recipeID, accountID uuid.UUID) error {
	if r.likes[recipeID] == nil {
		r.likes[recipeID] = make(map[uuid.UUID]bool)
	}
	r.likes[recipeID][accountID] = true
	r.recipes[recipeID].LikesCount++

	return nil
}

func (r *fakeRecipeRepo) RemoveLike(_ context.Context, recipeID, accountID uuid.UUID) error {
	if !r.likes[recipeID][accountID] {
		return repository.ErrLikeNotFound
	}
	delete(r.likes[recipeID], accountID)
	r.recipes[recipeID].LikesCount--

	return nil
}

// --- transaction manager fake ---

type fakeRepoFactory struct {
	accountRepo repository.AccountRepository
	recipeRepo  repository.RecipeRepository
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository { return f.accountRepo }
func (f *fakeRepoFactory) RecipeRepo() repository.RecipeRepository  { return f.recipeRepo }

type fakeTxManager struct {
	factory    *fakeRepoFactory
	executions int
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.executions++

	return fn(m.factory)
}

// --- token service stub ---

type stubTokenService struct {
	issueErr error
}

func (s *stubTokenService) Issue(accountID uuid.UUID, username string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-" + accountID.String(), nil
}

func (s *stubTokenService) Verify(tokenString string) (*service.TokenClaims, error) {
	id, ok := strings.CutPrefix(tokenString, "token-")
	if !ok {
		return nil, errors.New("unknown token")
	}

	accountID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrap(err, "parse token subject")
	}

	return &service.TokenClaims{AccountID: accountID}, nil
}
