package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/delivery/http/response"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/usecase"
)

// RecipeHandler holds dependencies for recipe handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

type createRecipeRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	CookingTime int      `json:"cookingTime"`
}

type updateRecipeRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Ingredients *[]string `json:"ingredients"`
	CookingTime *int      `json:"cookingTime"`
}

type recipePageResponse struct {
	Recipes    any   `json:"recipes"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type likeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// Create handles the recipe creation request.
func (h *RecipeHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), &usecase.CreateRecipeInput{
		AuthorID:    identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		CookingTime: req.CookingTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// Get handles the single recipe lookup request.
func (h *RecipeHandler) Get(c echo.Context) error {
	recipeID, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// List handles the paginated recipe feed request.
func (h *RecipeHandler) List(c echo.Context) error {
	input := &usecase.ListRecipesInput{
		Search: c.QueryParam("search"),
	}

	var err error
	if input.Page, err = parseIntParam(c, "page"); err != nil {
		return err
	}
	if input.Limit, err = parseIntParam(c, "limit"); err != nil {
		return err
	}
	if input.MaxCookingTime, err = parseIntParam(c, "maxCookingTime"); err != nil {
		return err
	}
	if input.MinIngredients, err = parseIntParam(c, "minIngredients"); err != nil {
		return err
	}

	page, err := h.uc.ListRecipes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipePageResponse{
		Recipes:    page.Recipes,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, "Recipes retrieved successfully")
}

// Update handles the partial recipe update request.
func (h *RecipeHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	recipeID, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	var req updateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), &usecase.UpdateRecipeInput{
		RecipeID:    recipeID,
		RequesterID: identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Ingredients: req.Ingredients,
		CookingTime: req.CookingTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// Delete handles the recipe deletion request.
func (h *RecipeHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	recipeID, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), recipeID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted successfully")
}

// ToggleLike handles the like toggle request.
func (h *RecipeHandler) ToggleLike(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	recipeID, err := parseRecipeID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), recipeID, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, likeResponse{
		Liked:      output.Liked,
		LikesCount: output.LikesCount,
	}, "Like toggled successfully")
}

func parseRecipeID(c echo.Context) (uuid.UUID, error) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("id", "Recipe ID must be a valid UUID")
	}

	return recipeID, nil
}

func parseIntParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewValidationError(name, "Must be an integer")
	}

	return value, nil
}
