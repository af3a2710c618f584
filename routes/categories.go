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

// ListCategories - GET /categories
func listCategories(c *fiber.Ctx) error {
	categories, err := catalog.ListCategories(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
		"total":      len(categories),
	})
}

// CreateCategory - POST /categories
func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	// Slug is derived, never taken from input; articles cannot be
	// attached through category writes
	category.Slug = models.Slugify(category.Name)
	category.Articles = nil

	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category name already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	notifyCatalogChanged("category", "created", category.ID)
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetCategory - GET /categories/:id
func getCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	var category models.Category
	if err := db.DB.Preload("Articles").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get category",
		})
	}

	return c.JSON(category)
}

// UpdateCategory - PUT /categories/:id
func updateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	var existing models.Category
	if err := db.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find category",
		})
	}

	category.Slug = models.Slugify(category.Name)
	category.Articles = nil

	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	existing.Name = category.Name
	existing.Description = category.Description
	existing.Slug = category.Slug
	existing.DisplayOrder = category.DisplayOrder
	existing.IsActive = category.IsActive

	if err := db.DB.Save(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Category name already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	notifyCatalogChanged("category", "updated", existing.ID)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category updated successfully",
		"data":    existing,
	})
}

// DeleteCategory - DELETE /categories/:id
func deleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category id",
		})
	}

	var category models.Category
	if err := db.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find category",
		})
	}

	if err := catalog.DeleteCategories(db.DB, []uuid.UUID{id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	notifyCatalogChanged("category", "deleted", id)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

// BulkDeleteCategories - POST /categories/bulk-delete
func bulkDeleteCategories(c *fiber.Ctx) error {
	req := new(BulkDeleteRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No categories selected",
		})
	}

	if err := catalog.DeleteCategories(db.DB, req.IDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete categories",
		})
	}

	for _, id := range req.IDs {
		notifyCatalogChanged("category", "deleted", id)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Selected categories deleted successfully",
	})
}
