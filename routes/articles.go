package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"nexacart/catalog"
	"nexacart/db"
	"nexacart/models"
)

var (
	minPrice = decimal.RequireFromString("0.01")
	maxPrice = decimal.RequireFromString("999999.99")
)

var errPriceRange = errors.New("price must be between 0.01 and 999999.99")

// validateArticle applies the field constraints the models cannot express
// as tags. Handlers reject invalid input here so the catalog core only
// ever sees pre-validated data.
func validateArticle(article *models.Article) error {
	if err := validate.Struct(article); err != nil {
		return err
	}
	if article.Price.LessThan(minPrice) || article.Price.GreaterThan(maxPrice) {
		return errPriceRange
	}
	return nil
}

// ListArticles - GET /articles?search=&page=
func listArticles(c *fiber.Ctx) error {
	result, err := catalog.ListAdminArticles(db.DB, catalog.ListQuery{
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list articles",
		})
	}
	return c.JSON(result)
}

// CreateArticle - POST /articles
func createArticle(c *fiber.Ctx) error {
	article := new(models.Article)
	if err := c.BodyParser(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validateArticle(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Validate the category reference if provided
	if article.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, "id = ?", *article.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	if err := db.DB.Create(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create article",
		})
	}

	notifyCatalogChanged("article", "created", article.ID)
	return c.Status(fiber.StatusCreated).JSON(article)
}

// GetArticle - GET /articles/:id
func getArticle(c *fiber.Ctx) error {
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

	return c.JSON(article)
}

// UpdateArticle - PUT /articles/:id
func updateArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article id",
		})
	}

	article := new(models.Article)
	if err := c.BodyParser(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Article
	if err := db.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find article",
		})
	}

	if err := validateArticle(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if article.CategoryID != nil {
		var category models.Category
		if err := db.DB.First(&category, "id = ?", *article.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
	}

	existing.Title = article.Title
	existing.Description = article.Description
	existing.Price = article.Price
	existing.ImageURL = article.ImageURL
	existing.StockQuantity = article.StockQuantity
	existing.IsActive = article.IsActive
	existing.CategoryID = article.CategoryID

	if err := db.DB.Save(&existing).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update article",
		})
	}

	notifyCatalogChanged("article", "updated", existing.ID)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Article updated successfully",
		"data":    existing,
	})
}

// DeleteArticle - DELETE /articles/:id
func deleteArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article id",
		})
	}

	var article models.Article
	if err := db.DB.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find article",
		})
	}

	if err := catalog.DeleteArticles(db.DB, []uuid.UUID{id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete article",
		})
	}

	notifyCatalogChanged("article", "deleted", id)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Article deleted successfully",
	})
}

// BulkDeleteArticles - POST /articles/bulk-delete
func bulkDeleteArticles(c *fiber.Ctx) error {
	req := new(BulkDeleteRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No articles selected",
		})
	}

	if err := catalog.DeleteArticles(db.DB, req.IDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete articles",
		})
	}

	for _, id := range req.IDs {
		notifyCatalogChanged("article", "deleted", id)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Selected articles deleted successfully",
	})
}
