package server

import (
	"fmt"
	"net/http"
	"testing"

	"libris/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBooks(t *testing.T) {
	app, _, db := setupTestApp(t)

	fantasy := &models.Category{Name: "Fantasy"}
	require.NoError(t, db.Create(fantasy).Error)

	highRated := &models.Book{Title: "The Tall Tower", Author: "A. Mage", Rating: 4.9, CategoryID: &fantasy.ID}
	lowRated := &models.Book{Title: "Footnotes", Author: "B. Minor", Rating: 2.1}
	require.NoError(t, db.Create(highRated).Error)
	require.NoError(t, db.Create(lowRated).Error)

	t.Run("default lists recommended", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/api/books", nil, "")
		require.Equal(t, http.StatusOK, status)
		require.NotNil(t, env.Count)
		assert.Equal(t, 2, *env.Count)

		var books []models.Book
		decodeData(t, env, &books)
		require.Len(t, books, 2)
		assert.Equal(t, "The Tall Tower", books[0].Title)
	})

	t.Run("search by title", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, "/api/books?q=Tower", nil, "")
		require.Equal(t, http.StatusOK, status)

		var books []models.Book
		decodeData(t, env, &books)
		require.Len(t, books, 1)
		assert.Equal(t, "The Tall Tower", books[0].Title)
	})

	t.Run("filter by category", func(t *testing.T) {
		status, env := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/books?category=%d", fantasy.ID), nil, "")
		require.Equal(t, http.StatusOK, status)

		var books []models.Book
		decodeData(t, env, &books)
		require.Len(t, books, 1)
		assert.Equal(t, "Fantasy", books[0].CategoryName)
	})
}

func TestGetBookDetail(t *testing.T) {
	app, _, db := setupTestApp(t)

	book := &models.Book{Title: "Detailed", Author: "D. Author"}
	require.NoError(t, db.Create(book).Error)
	tag := &models.Tag{Name: "debut"}
	require.NoError(t, db.Create(tag).Error)
	require.NoError(t, db.Create(&models.BookTag{BookID: book.ID, TagID: tag.ID}).Error)

	status, env := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d", book.ID), nil, "")
	require.Equal(t, http.StatusOK, status)

	var detail struct {
		Book models.Book  `json:"book"`
		Tags []models.Tag `json:"tags"`
	}
	decodeData(t, env, &detail)
	assert.Equal(t, "Detailed", detail.Book.Title)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, "debut", detail.Tags[0].Name)

	status, _ = doRequest(t, app, http.MethodGet, "/api/books/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetChapters(t *testing.T) {
	app, _, db := setupTestApp(t)

	book := &models.Book{Title: "Chaptered", Author: "C. Author"}
	require.NoError(t, db.Create(book).Error)
	for n := 1; n <= 3; n++ {
		require.NoError(t, db.Create(&models.Chapter{
			BookID:        book.ID,
			ChapterNumber: n,
			ChapterTitle:  fmt.Sprintf("Part %d", n),
			Content:       "words",
		}).Error)
	}

	status, env := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d/chapters", book.ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)

	status, env = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d/chapters/2", book.ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	var chapter models.Chapter
	decodeData(t, env, &chapter)
	assert.Equal(t, 2, chapter.ChapterNumber)
	assert.Equal(t, "Part 2", chapter.ChapterTitle)

	status, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d/chapters/9", book.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetCategories(t *testing.T) {
	app, _, db := setupTestApp(t)

	busy := &models.Category{Name: "Busy"}
	quiet := &models.Category{Name: "Quiet"}
	require.NoError(t, db.Create(busy).Error)
	require.NoError(t, db.Create(quiet).Error)
	require.NoError(t, db.Create(&models.Book{Title: "In Busy", Author: "a", CategoryID: &busy.ID}).Error)

	status, env := doRequest(t, app, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	var categories []models.Category
	decodeData(t, env, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Busy", categories[0].Name)
	assert.Equal(t, 1, categories[0].BookCount)

	status, env = doRequest(t, app, http.MethodGet, "/api/categories?sort=popular&limit=1", nil, "")
	require.Equal(t, http.StatusOK, status)
	decodeData(t, env, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Busy", categories[0].Name)
}
