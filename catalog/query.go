package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"nexacart/models"
)

// ListQuery carries the optional filters for an article listing. A zero
// value means no restriction.
type ListQuery struct {
	Search   string
	Category string // public browse only: exact match on category name
	Page     int
}

// ListAdminArticles returns one page of the admin article listing. The
// search term matches the article title or its category name; articles
// without a category still match on title.
func ListAdminArticles(db *gorm.DB, q ListQuery) (*Page, error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if term := strings.TrimSpace(q.Search); term != "" {
		like := "%" + term + "%"
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB {
			return tx.Joins("LEFT JOIN categories ON categories.id = articles.category_id").
				Where("articles.title LIKE ? OR categories.name LIKE ?", like, like)
		})
	}
	return listArticles(db, scopes, q.Page, AdminPageSize)
}

// ListPublicArticles returns one page of the public browse view. The search
// term matches title or description; the category filter is an exact match
// on category name, so uncategorized articles never satisfy it. Both
// filters combine with AND, and a blank value for either means no
// restriction.
func ListPublicArticles(db *gorm.DB, q ListQuery) (*Page, error) {
	var scopes []func(*gorm.DB) *gorm.DB
	if term := strings.TrimSpace(q.Search); term != "" {
		like := "%" + term + "%"
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("articles.title LIKE ? OR articles.description LIKE ?", like, like)
		})
	}
	if name := strings.TrimSpace(q.Category); name != "" {
		scopes = append(scopes, func(tx *gorm.DB) *gorm.DB {
			return tx.Joins("JOIN categories ON categories.id = articles.category_id").
				Where("categories.name = ?", name)
		})
	}
	return listArticles(db, scopes, q.Page, PublicPageSize)
}

func listArticles(db *gorm.DB, scopes []func(*gorm.DB) *gorm.DB, page, pageSize int) (*Page, error) {
	page = clampPage(page)

	var total int64
	if err := db.Model(&models.Article{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count articles: %w", err)
	}

	// The row query selects articles.* so joined category columns cannot
	// clobber the scanned article fields; the count query must stay free
	// of that projection or count(*) would be overridden.
	var articles []models.Article
	if err := db.Model(&models.Article{}).Scopes(scopes...).
		Select("articles.*").
		Preload("Category").
		Order("articles.title DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	items := make([]Card, 0, len(articles))
	for i := range articles {
		items = append(items, NewCard(&articles[i]))
	}
	return &Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  TotalPages(total, pageSize),
		TotalCount:  total,
	}, nil
}

// ListCategories returns every category in display order.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Order("display_order ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CategoryNames returns every category name in display order, for the
// public filter dropdown.
func CategoryNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0)
	if err := db.Model(&models.Category{}).
		Order("display_order ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list category names: %w", err)
	}
	return names, nil
}
