package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex" json:"name" validate:"required,max=50"`
	Description  string    `json:"description" validate:"max=200"`
	Slug         string    `gorm:"uniqueIndex" json:"slug" validate:"max=50"`
	DisplayOrder int       `json:"display_order" validate:"min=0"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Articles     []Article `gorm:"foreignKey:CategoryID" json:"articles,omitempty"` // One-to-many relationship
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Slugify derives the URL slug for a category name: lowercased, with
// spaces replaced by hyphens. Recomputed whenever the name changes.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
