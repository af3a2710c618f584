package catalog

import (
	"fmt"

	"gorm.io/gorm"

	"nexacart/models"
)

// SuggestTitles returns up to SuggestionLimit article titles containing the
// term, in ascending title order. An empty term is a substring of every
// title, so it returns the first SuggestionLimit titles.
func SuggestTitles(db *gorm.DB, term string) ([]string, error) {
	titles := make([]string, 0, SuggestionLimit)
	if err := db.Model(&models.Article{}).
		Where("title LIKE ?", "%"+term+"%").
		Order("title ASC").
		Limit(SuggestionLimit).
		Pluck("title", &titles).Error; err != nil {
		return nil, fmt.Errorf("failed to suggest titles: %w", err)
	}
	return titles, nil
}
