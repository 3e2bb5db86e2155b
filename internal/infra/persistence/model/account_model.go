// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// gen_random_uuid(). Hash and salt are stored hex-encoded with fixed widths.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:char(64);not null"`
	Salt         string    `gorm:"type:char(32);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes []RecipeModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
