package repository

import (
	"context"
	"time"

	"libris/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShelfRepository defines persistence operations for user bookshelves.
type ShelfRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*models.ShelfEntry, error)
	Add(ctx context.Context, userID, bookID uint) error
	Remove(ctx context.Context, userID, bookID uint) error
	UpdateProgress(ctx context.Context, userID, bookID uint, progress int) error
}

type shelfRepository struct {
	db *gorm.DB
}

// NewShelfRepository creates a new shelf repository.
func NewShelfRepository(db *gorm.DB) ShelfRepository {
	return &shelfRepository{db: db}
}

func (r *shelfRepository) ListByUser(ctx context.Context, userID uint) ([]*models.ShelfEntry, error) {
	var entries []*models.ShelfEntry
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Category").
		Where("user_id = ?", userID).
		Order("last_read_at DESC").
		Find(&entries).Error
	return entries, err
}

// Add puts the book on the shelf; when it is already there only
// last_read_at is refreshed.
func (r *shelfRepository) Add(ctx context.Context, userID, bookID uint) error {
	entry := &models.ShelfEntry{
		UserID:     userID,
		BookID:     bookID,
		LastReadAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_read_at", "updated_at"}),
	}).Create(entry).Error
}

func (r *shelfRepository) Remove(ctx context.Context, userID, bookID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.ShelfEntry{}).Error
}

// UpdateProgress upserts the shelf entry with the new progress and stamps
// last_read_at, so reading a book not yet shelved shelves it.
func (r *shelfRepository) UpdateProgress(ctx context.Context, userID, bookID uint, progress int) error {
	entry := &models.ShelfEntry{
		UserID:          userID,
		BookID:          bookID,
		ReadingProgress: progress,
		LastReadAt:      time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reading_progress", "last_read_at", "updated_at"}),
	}).Create(entry).Error
}
