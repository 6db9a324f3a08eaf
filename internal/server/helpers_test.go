package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	app := fiber.New()

	var got Pagination
	app.Get("/items", func(c *fiber.Ctx) error {
		got = parsePagination(c, 20)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"Defaults", "", 20, 0},
		{"Explicit Values", "?limit=5&offset=10", 5, 10},
		{"Zero Limit Falls Back", "?limit=0", 20, 0},
		{"Negative Limit Falls Back", "?limit=-3", 20, 0},
		{"Limit Clamped To Max", "?limit=5000", 100, 0},
		{"Negative Offset Resets", "?offset=-1", 20, 0},
		{"Garbage Values Fall Back", "?limit=banana&offset=apple", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items"+tt.query, nil))
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestParseID(t *testing.T) {
	srv := &Server{}
	app := fiber.New()

	var parsed uint
	app.Get("/books/:id", func(c *fiber.Ctx) error {
		id, err := srv.parseID(c, "id")
		if err != nil {
			return nil
		}
		parsed = id
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("Valid ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/books/42", nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(42), parsed)
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/books/banana", nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Zero ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/books/0", nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		param string
		want  string
	}{
		{"id", "ID"},
		{"bookId", "book ID"},
		{"chapter", "chapter"},
		{"shelfEntryId", "shelf entry ID"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeParam(tt.param))
	}
}
