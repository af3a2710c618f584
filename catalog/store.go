package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nexacart/models"
)

// DeleteArticles removes the articles with the given ids as a single
// batched delete. Ids that match no row are skipped; the call succeeds as
// long as the batch itself does.
func DeleteArticles(db *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.Where("id IN ?", ids).Delete(&models.Article{}).Error; err != nil {
		return fmt.Errorf("failed to delete articles: %w", err)
	}
	return nil
}

// DeleteCategories removes the categories with the given ids as a single
// batched delete, first detaching their articles. Articles are never
// deleted with their category; the reference is set to null.
func DeleteCategories(db *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.Model(&models.Article{}).
		Where("category_id IN ?", ids).
		Update("category_id", nil).Error; err != nil {
		return fmt.Errorf("failed to detach articles: %w", err)
	}
	if err := db.Where("id IN ?", ids).Delete(&models.Category{}).Error; err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}
