package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nexacart/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Article{}))
	return db
}

func mustCreateCategory(t *testing.T, db *gorm.DB, name string, order int) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:         name,
		Slug:         models.Slugify(name),
		DisplayOrder: order,
		IsActive:     true,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func mustCreateArticle(t *testing.T, db *gorm.DB, title, price string, stock int, categoryID *uuid.UUID) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:         title,
		Description:   "Description of " + title,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
		CategoryID:    categoryID,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}

// seedCatalog loads the canonical four categories and four articles used
// across the listing tests: two electronics, two books.
func seedCatalog(t *testing.T, db *gorm.DB) (electronics, books *models.Category) {
	t.Helper()

	electronics = mustCreateCategory(t, db, "Electronics", 1)
	books = mustCreateCategory(t, db, "Books", 2)
	mustCreateCategory(t, db, "Clothing", 3)
	mustCreateCategory(t, db, "Home & Garden", 4)

	mustCreateArticle(t, db, "Wireless Bluetooth Headphones", "199.99", 50, &electronics.ID)
	mustCreateArticle(t, db, "Smart Watch Series X", "349.99", 30, &electronics.ID)
	mustCreateArticle(t, db, "The Art of Programming", "49.99", 100, &books.ID)
	mustCreateArticle(t, db, "Clean Architecture in Practice", "39.99", 75, &books.ID)
	return electronics, books
}

func TestNewCardResolvesCategoryName(t *testing.T) {
	category := &models.Category{Name: "Books"}
	article := &models.Article{
		ID:       uuid.New(),
		Title:    "The Art of Programming",
		Price:    decimal.RequireFromString("49.99"),
		Category: category,
	}

	card := NewCard(article)
	assert.Equal(t, "Books", card.CategoryName)
	assert.Equal(t, article.ID, card.ID)
	assert.True(t, card.Price.Equal(article.Price))
}

func TestNewCardUncategorized(t *testing.T) {
	article := &models.Article{
		ID:    uuid.New(),
		Title: "Orphan Article",
		Price: decimal.RequireFromString("9.99"),
	}

	card := NewCard(article)
	assert.Equal(t, UncategorizedLabel, card.CategoryName)
}

// numberedTitle pads so lexicographic and numeric order agree in tests.
func numberedTitle(n int) string {
	return fmt.Sprintf("Article %02d", n)
}
