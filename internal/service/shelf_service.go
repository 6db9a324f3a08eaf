package service

import (
	"context"

	"libris/internal/models"
	"libris/internal/repository"
)

// ShelfService implements per-user bookshelves and reading progress.
type ShelfService struct {
	shelfRepo repository.ShelfRepository
	bookRepo  repository.BookRepository
}

type UpdateProgressInput struct {
	UserID   uint
	BookID   uint
	Progress int
}

func NewShelfService(
	shelfRepo repository.ShelfRepository,
	bookRepo repository.BookRepository,
) *ShelfService {
	return &ShelfService{
		shelfRepo: shelfRepo,
		bookRepo:  bookRepo,
	}
}

func (s *ShelfService) List(ctx context.Context, userID uint) ([]*models.ShelfEntry, error) {
	return s.shelfRepo.ListByUser(ctx, userID)
}

func (s *ShelfService) Add(ctx context.Context, userID, bookID uint) error {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return err
	}
	return s.shelfRepo.Add(ctx, userID, bookID)
}

func (s *ShelfService) Remove(ctx context.Context, userID, bookID uint) error {
	return s.shelfRepo.Remove(ctx, userID, bookID)
}

func (s *ShelfService) UpdateProgress(ctx context.Context, in UpdateProgressInput) error {
	if in.Progress < 0 || in.Progress > 100 {
		return models.NewValidationError("Progress must be between 0 and 100")
	}
	if _, err := s.bookRepo.GetByID(ctx, in.BookID); err != nil {
		return err
	}
	return s.shelfRepo.UpdateProgress(ctx, in.UserID, in.BookID, in.Progress)
}
