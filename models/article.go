package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Article struct {
	ID            uuid.UUID       `gorm:"type:text;primaryKey" json:"id"`
	Title         string          `json:"title" validate:"required,max=100"`
	Description   string          `json:"description" validate:"required,max=500"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	ImageURL      string          `json:"image_url" validate:"max=200"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	CategoryID    *uuid.UUID      `gorm:"type:text" json:"category_id"` // Nullable foreign key to Category
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
