package server

import (
	"libris/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBooks handles GET /api/books
//
// Query parameters select the listing: q searches title/author, category
// and tag filter by taxonomy, kind picks "recommended" (default) or "new".
func (s *Server) GetBooks(c *fiber.Ctx) error {
	in := service.BrowseBooksInput{
		Kind:  c.Query("kind"),
		Query: c.Query("q"),
		Limit: c.QueryInt("limit", 10),
	}
	if categoryID := c.QueryInt("category", 0); categoryID > 0 {
		in.CategoryID = uint(categoryID)
	}
	if tagID := c.QueryInt("tag", 0); tagID > 0 {
		in.TagID = uint(tagID)
	}

	books, err := s.bookService.Browse(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	return respondList(c, books, len(books))
}

// GetBook handles GET /api/books/:id
func (s *Server) GetBook(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	book, tags, getErr := s.bookService.GetBook(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"book": book,
		"tags": tags,
	})
}

// GetChapters handles GET /api/books/:id/chapters
func (s *Server) GetChapters(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	chapters, listErr := s.bookService.ListChapters(c.Context(), bookID)
	if listErr != nil {
		return respondError(c, listErr)
	}

	return respondList(c, chapters, len(chapters))
}

// GetChapter handles GET /api/books/:id/chapters/:chapter
func (s *Server) GetChapter(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	number, err := c.ParamsInt("chapter")
	if err != nil || number <= 0 {
		return respondValidationError(c, "Invalid chapter number")
	}

	chapter, getErr := s.bookService.GetChapter(c.Context(), bookID, number)
	if getErr != nil {
		return respondError(c, getErr)
	}

	return respondData(c, fiber.StatusOK, chapter)
}
