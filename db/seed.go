package db

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"nexacart/models"
)

// Seed loads the starter categories and articles on first run. It only
// writes when the category table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{
			Name:         "Electronics",
			Description:  "Electronic devices and gadgets",
			Slug:         "electronics",
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			Name:         "Books",
			Description:  "Books and publications",
			Slug:         "books",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			Name:         "Clothing",
			Description:  "Fashion and apparel",
			Slug:         "clothing",
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			Name:         "Home & Garden",
			Description:  "Home improvement and garden supplies",
			Slug:         "home-garden",
			DisplayOrder: 4,
			IsActive:     true,
		},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	electronics := categories[0].ID
	books := categories[1].ID

	articles := []models.Article{
		{
			Title:         "Wireless Bluetooth Headphones",
			Description:   "High-quality wireless headphones with noise cancellation and premium sound quality.",
			Price:         decimal.RequireFromString("199.99"),
			ImageURL:      "/images/products/headphones.jpg",
			StockQuantity: 50,
			CategoryID:    &electronics,
			IsActive:      true,
		},
		{
			Title:         "Smart Watch Series X",
			Description:   "Advanced smartwatch with health monitoring, GPS, and long battery life.",
			Price:         decimal.RequireFromString("349.99"),
			ImageURL:      "/images/products/smartwatch.jpg",
			StockQuantity: 30,
			CategoryID:    &electronics,
			IsActive:      true,
		},
		{
			Title:         "The Art of Programming",
			Description:   "Comprehensive guide to modern programming practices and techniques.",
			Price:         decimal.RequireFromString("49.99"),
			ImageURL:      "/images/products/programming-book.jpg",
			StockQuantity: 100,
			CategoryID:    &books,
			IsActive:      true,
		},
		{
			Title:         "Clean Architecture in Practice",
			Description:   "Learn to build maintainable web applications with layered design.",
			Price:         decimal.RequireFromString("39.99"),
			ImageURL:      "/images/products/architecture-book.jpg",
			StockQuantity: 75,
			CategoryID:    &books,
			IsActive:      true,
		},
	}
	if err := db.Create(&articles).Error; err != nil {
		return fmt.Errorf("failed to seed articles: %w", err)
	}

	return nil
}
