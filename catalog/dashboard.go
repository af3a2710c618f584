package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"nexacart/models"
)

// Summary is the admin dashboard aggregate view.
type Summary struct {
	TotalArticles   int64             `json:"total_articles"`
	TotalCategories int64             `json:"total_categories"`
	LowStock        []Card            `json:"low_stock"`
	TotalValue      decimal.Decimal   `json:"total_value"`
	Categories      []models.Category `json:"categories"`
}

// BuildSummary computes the dashboard aggregates: entity counts, the
// low-stock list, total inventory value and the ordered category list.
// Empty collections are valid inputs and produce zero counts and an exact
// zero value.
func BuildSummary(db *gorm.DB) (*Summary, error) {
	s := &Summary{TotalValue: decimal.Zero}

	if err := db.Model(&models.Article{}).Count(&s.TotalArticles).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}
	if err := db.Model(&models.Category{}).Count(&s.TotalCategories).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	var low []models.Article
	if err := db.Preload("Category").
		Where("stock_quantity < ?", LowStockThreshold).
		Order("stock_quantity ASC").
		Limit(LowStockLimit).
		Find(&low).Error; err != nil {
		return nil, fmt.Errorf("failed to list low stock articles: %w", err)
	}
	s.LowStock = make([]Card, 0, len(low))
	for i := range low {
		s.LowStock = append(s.LowStock, NewCard(&low[i]))
	}

	// The inventory value is money: summed in Go with decimals rather
	// than with SQL SUM, which goes through floating point on SQLite.
	type stockRow struct {
		Price         decimal.Decimal
		StockQuantity int
	}
	var rows []stockRow
	if err := db.Model(&models.Article{}).
		Select("price", "stock_quantity").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load stock values: %w", err)
	}
	for _, r := range rows {
		s.TotalValue = s.TotalValue.Add(r.Price.Mul(decimal.NewFromInt(int64(r.StockQuantity))))
	}

	categories, err := ListCategories(db)
	if err != nil {
		return nil, err
	}
	s.Categories = categories

	return s, nil
}
