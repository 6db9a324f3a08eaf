package service

import (
	"context"

	"libris/internal/models"
	"libris/internal/repository"
)

// BookService implements catalog browsing, search, and reading.
type BookService struct {
	bookRepo repository.BookRepository
}

// BrowseBooksInput selects which catalog listing to return. Query wins over
// Category, which wins over Tag; otherwise Kind picks the listing.
type BrowseBooksInput struct {
	Kind       string // "recommended" (default) or "new"
	Query      string
	CategoryID uint
	TagID      uint
	Limit      int
}

func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

func (s *BookService) Browse(ctx context.Context, in BrowseBooksInput) ([]*models.Book, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	switch {
	case in.Query != "":
		return s.bookRepo.Search(ctx, in.Query, limit)
	case in.CategoryID != 0:
		return s.bookRepo.ByCategory(ctx, in.CategoryID, limit)
	case in.TagID != 0:
		return s.bookRepo.ByTag(ctx, in.TagID, limit)
	case in.Kind == "new":
		return s.bookRepo.Newest(ctx, limit)
	default:
		return s.bookRepo.Recommended(ctx, limit)
	}
}

// GetBook returns the book and its tags.
func (s *BookService) GetBook(ctx context.Context, id uint) (*models.Book, []*models.Tag, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tags, err := s.bookRepo.Tags(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return book, tags, nil
}

func (s *BookService) ListChapters(ctx context.Context, bookID uint) ([]*models.Chapter, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.bookRepo.Chapters(ctx, bookID)
}

func (s *BookService) GetChapter(ctx context.Context, bookID uint, number int) (*models.Chapter, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.bookRepo.Chapter(ctx, bookID, number)
}
