package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexacart/models"
)

func TestDeleteArticlesIgnoresUnknownIDs(t *testing.T) {
	db := setupTestDB(t)
	keep := mustCreateArticle(t, db, "Keep Me", "10.00", 5, nil)
	drop := mustCreateArticle(t, db, "Drop Me", "10.00", 5, nil)

	// One valid id, one that matches nothing: the batch still succeeds
	err := DeleteArticles(db, []uuid.UUID{drop.ID, uuid.New()})
	require.NoError(t, err)

	var remaining []models.Article
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestDeleteArticlesEmptyList(t *testing.T) {
	db := setupTestDB(t)
	mustCreateArticle(t, db, "Keep Me", "10.00", 5, nil)

	require.NoError(t, DeleteArticles(db, nil))

	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCategoriesDetachesArticles(t *testing.T) {
	db := setupTestDB(t)
	books := mustCreateCategory(t, db, "Books", 1)
	article := mustCreateArticle(t, db, "The Art of Programming", "49.99", 10, &books.ID)

	require.NoError(t, DeleteCategories(db, []uuid.UUID{books.ID}))

	var categoryCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(0), categoryCount)

	// The article survives with its reference cleared
	var survivor models.Article
	require.NoError(t, db.First(&survivor, "id = ?", article.ID).Error)
	assert.Nil(t, survivor.CategoryID)
	assert.Equal(t, UncategorizedLabel, NewCard(&survivor).CategoryName)
}

func TestDeleteCategoriesBatch(t *testing.T) {
	db := setupTestDB(t)
	books := mustCreateCategory(t, db, "Books", 1)
	clothing := mustCreateCategory(t, db, "Clothing", 2)
	electronics := mustCreateCategory(t, db, "Electronics", 3)

	err := DeleteCategories(db, []uuid.UUID{books.ID, clothing.ID, uuid.New()})
	require.NoError(t, err)

	remaining, err := ListCategories(db)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, electronics.ID, remaining[0].ID)
}
