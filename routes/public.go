package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexacart/catalog"
	"nexacart/db"
	"nexacart/models"
)

type BrowseResponse struct {
	*catalog.Page
	SearchTerm       string   `json:"search_term,omitempty"`
	SelectedCategory string   `json:"selected_category,omitempty"`
	Categories       []string `json:"categories"`
}

// BrowseCatalog - GET /catalog?search=&category=&page=
func browseCatalog(c *fiber.Ctx) error {
	query := catalog.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     c.QueryInt("page", 1),
	}

	page, err := catalog.ListPublicArticles(db.DB, query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to browse catalog",
		})
	}

	names, err := catalog.CategoryNames(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(BrowseResponse{
		Page:             page,
		SearchTerm:       query.Search,
		SelectedCategory: query.Category,
		Categories:       names,
	})
}

// Autocomplete - GET /catalog/autocomplete?term=
func autocomplete(c *fiber.Ctx) error {
	titles, err := catalog.SuggestTitles(db.DB, c.Query("term"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load suggestions",
		})
	}
	return c.JSON(titles)
}

// GetCatalogArticle - GET /catalog/:id
func getCatalogArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article id",
		})
	}

	var article models.Article
	if err := db.DB.Preload("Category").First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get article",
		})
	}

	return c.JSON(catalog.NewCard(&article))
}

// GetDashboard - GET /dashboard
func getDashboard(c *fiber.Ctx) error {
	summary, err := catalog.BuildSummary(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build dashboard",
		})
	}
	return c.JSON(summary)
}
