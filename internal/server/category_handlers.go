package server

import (
	"libris/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/categories
//
// sort=popular orders by how many books each category holds; the default
// ordering is alphabetical.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	var categories []*models.Category
	var err error

	if c.Query("sort") == "popular" {
		limit := c.QueryInt("limit", 10)
		if limit <= 0 || limit > maxPaginationLimit {
			limit = 10
		}
		categories, err = s.categoryRepo.Popular(c.Context(), limit)
	} else {
		categories, err = s.categoryRepo.List(c.Context())
	}
	if err != nil {
		return respondError(c, err)
	}

	return respondList(c, categories, len(categories))
}
