package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. Ingredients are stored as a jsonb
// array. LikesCount is a denormalized counter maintained in the same
// transaction as the like rows.
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Ingredients []string  `gorm:"serializer:json;type:jsonb;not null"`
	CookingTime int       `gorm:"not null"`
	LikesCount  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Author *AccountModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeLikeModel mirrors the 'recipe_likes' table. The composite primary key
// guarantees at most one like per account and recipe.
type RecipeLikeModel struct {
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeLikeModel) TableName() string {
	return "recipe_likes"
}
