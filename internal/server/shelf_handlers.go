package server

import (
	"libris/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBookshelf handles GET /api/bookshelf
func (s *Server) GetBookshelf(c *fiber.Ctx) error {
	entries, err := s.shelfService.List(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondList(c, entries, len(entries))
}

// AddToBookshelf handles POST /api/bookshelf
func (s *Server) AddToBookshelf(c *fiber.Ctx) error {
	var req struct {
		BookID uint `json:"book_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, "Invalid request body")
	}
	if req.BookID == 0 {
		return respondValidationError(c, "book_id is required")
	}

	if err := s.shelfService.Add(c.Context(), currentUserID(c), req.BookID); err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusCreated, "Book added to bookshelf")
}

// RemoveFromBookshelf handles DELETE /api/bookshelf/:bookId
func (s *Server) RemoveFromBookshelf(c *fiber.Ctx) error {
	bookID, err := s.parseID(c, "bookId")
	if err != nil {
		return nil
	}

	if removeErr := s.shelfService.Remove(c.Context(), currentUserID(c), bookID); removeErr != nil {
		return respondError(c, removeErr)
	}

	return respondMessage(c, fiber.StatusOK, "Book removed from bookshelf")
}

// UpdateReadingProgress handles PUT /api/bookshelf/progress
func (s *Server) UpdateReadingProgress(c *fiber.Ctx) error {
	var req struct {
		BookID   uint `json:"book_id"`
		Progress int  `json:"progress"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, "Invalid request body")
	}
	if req.BookID == 0 {
		return respondValidationError(c, "book_id is required")
	}

	err := s.shelfService.UpdateProgress(c.Context(), service.UpdateProgressInput{
		UserID:   currentUserID(c),
		BookID:   req.BookID,
		Progress: req.Progress,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, fiber.StatusOK, "Reading progress updated")
}
