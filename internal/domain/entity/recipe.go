package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a published recipe owned by an account.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"authorId"`
	Author      *Identity `json:"author,omitempty"` // Preloaded for feed/detail views.
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	CookingTime int       `json:"cookingTime"` // Minutes.
	LikesCount  int       `json:"likesCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecipeLike records that an account liked a recipe. One row per
// (recipe, account) pair.
type RecipeLike struct {
	RecipeID  uuid.UUID
	AccountID uuid.UUID
	CreatedAt time.Time
}
