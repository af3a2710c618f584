// Package catalog implements the listing engine behind the admin and public
// catalog views: filter resolution, sort policy, pagination, dashboard
// aggregation and title autocomplete. Every function takes the database
// handle it should run against; the package holds no state of its own.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nexacart/models"
)

const (
	// AdminPageSize is the page window for the admin article listing.
	AdminPageSize = 10
	// PublicPageSize is the page window for the public browse page.
	PublicPageSize = 12
	// LowStockThreshold marks an article as low stock when its quantity
	// falls below it.
	LowStockThreshold = 10
	// LowStockLimit caps the dashboard low-stock list.
	LowStockLimit = 5
	// SuggestionLimit caps autocomplete results.
	SuggestionLimit = 8
	// UncategorizedLabel is the category name shown for articles without
	// a category.
	UncategorizedLabel = "Uncategorized"
)

// Card is the display projection of an article used by list views.
type Card struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"image_url"`
	CategoryName  string          `json:"category_name"`
	StockQuantity int             `json:"stock_quantity"`
}

// Page is one window of a filtered article listing.
type Page struct {
	Items       []Card `json:"items"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	TotalCount  int64  `json:"total_count"`
}

// NewCard builds a Card from an article, resolving the category name to
// UncategorizedLabel when the article has none.
func NewCard(a *models.Article) Card {
	name := UncategorizedLabel
	if a.Category != nil && a.Category.Name != "" {
		name = a.Category.Name
	}
	return Card{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Price:         a.Price,
		ImageURL:      a.ImageURL,
		CategoryName:  name,
		StockQuantity: a.StockQuantity,
	}
}
