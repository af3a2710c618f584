package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	summary, err := BuildSummary(db)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalArticles)
	assert.Equal(t, int64(0), summary.TotalCategories)
	assert.Empty(t, summary.LowStock)
	assert.Empty(t, summary.Categories)
	assert.True(t, summary.TotalValue.Equal(decimal.Zero),
		"expected exact zero, got %s", summary.TotalValue)
}

func TestBuildSummaryLowStock(t *testing.T) {
	db := setupTestDB(t)
	for i, stock := range []int{5, 50, 30, 100, 75} {
		mustCreateArticle(t, db, numberedTitle(i+1), "10.00", stock, nil)
	}

	summary, err := BuildSummary(db)
	require.NoError(t, err)

	// Only the article with stock 5 sits under the threshold
	require.Len(t, summary.LowStock, 1)
	assert.Equal(t, 5, summary.LowStock[0].StockQuantity)
	assert.Equal(t, UncategorizedLabel, summary.LowStock[0].CategoryName)
	assert.Equal(t, int64(5), summary.TotalArticles)
}

func TestBuildSummaryLowStockLimitAndOrder(t *testing.T) {
	db := setupTestDB(t)
	books := mustCreateCategory(t, db, "Books", 1)
	for _, stock := range []int{9, 3, 7, 1, 5, 8, 2} {
		mustCreateArticle(t, db, numberedTitle(stock), "10.00", stock, &books.ID)
	}

	summary, err := BuildSummary(db)
	require.NoError(t, err)

	require.Len(t, summary.LowStock, LowStockLimit)
	stocks := make([]int, 0, len(summary.LowStock))
	for _, card := range summary.LowStock {
		assert.Equal(t, "Books", card.CategoryName)
		stocks = append(stocks, card.StockQuantity)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 7}, stocks)
}

func TestBuildSummaryTotalValue(t *testing.T) {
	db := setupTestDB(t)
	mustCreateArticle(t, db, "Headphones", "199.99", 3, nil)
	mustCreateArticle(t, db, "Penny Sticker", "0.01", 7, nil)
	mustCreateArticle(t, db, "Out of Stock", "999999.99", 0, nil)

	summary, err := BuildSummary(db)
	require.NoError(t, err)

	// 199.99*3 + 0.01*7 + 999999.99*0, computed without float drift
	want := decimal.RequireFromString("600.04")
	assert.True(t, summary.TotalValue.Equal(want),
		"expected %s, got %s", want, summary.TotalValue)
}

func TestBuildSummaryCounts(t *testing.T) {
	db := setupTestDB(t)
	electronics, _ := seedCatalog(t, db)

	summary, err := BuildSummary(db)
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalArticles)
	assert.Equal(t, int64(4), summary.TotalCategories)
	require.Len(t, summary.Categories, 4)
	assert.Equal(t, electronics.ID, summary.Categories[0].ID)
	assert.Equal(t, "Home & Garden", summary.Categories[3].Name)
}
