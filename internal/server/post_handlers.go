package server

import (
	"libris/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	posts, err := s.communityService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondList(c, posts, len(posts))
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, comments, err := s.communityService.PostDetail(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		BookID  *uint  `json:"book_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, "Invalid request body")
	}

	post, err := s.communityService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Title:   req.Title,
		Content: req.Content,
		BookID:  req.BookID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, listErr := s.communityService.ListUserPosts(c.Context(), userID, p.Limit, p.Offset, currentUserID(c))
	if listErr != nil {
		return respondError(c, listErr)
	}

	return respondList(c, posts, len(posts))
}

// GetComments handles GET /api/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, listErr := s.communityService.ListComments(c.Context(), postID)
	if listErr != nil {
		return respondError(c, listErr)
	}

	return respondList(c, comments, len(comments))
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return respondValidationError(c, "Invalid request body")
	}

	comment, createErr := s.communityService.AddComment(c.Context(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if createErr != nil {
		return respondError(c, createErr)
	}

	return respondData(c, fiber.StatusCreated, comment)
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	liked, toggleErr := s.communityService.ToggleLike(c.Context(), currentUserID(c), postID)
	if toggleErr != nil {
		return respondError(c, toggleErr)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"liked": liked,
	})
}
