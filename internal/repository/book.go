package repository

import (
	"context"
	"errors"

	"libris/internal/cache"
	"libris/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookRepository defines read operations over the book catalog.
type BookRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	Recommended(ctx context.Context, limit int) ([]*models.Book, error)
	Newest(ctx context.Context, limit int) ([]*models.Book, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Book, error)
	ByCategory(ctx context.Context, categoryID uint, limit int) ([]*models.Book, error)
	ByTag(ctx context.Context, tagID uint, limit int) ([]*models.Book, error)
	Chapters(ctx context.Context, bookID uint) ([]*models.Chapter, error)
	Chapter(ctx context.Context, bookID uint, number int) (*models.Chapter, error)
	Tags(ctx context.Context, bookID uint) ([]*models.Tag, error)
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// withCategoryName joins the category name onto each book row.
func (r *bookRepository) withCategoryName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Book{}).
		Select("books.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = books.category_id")
}

func (r *bookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	err := cache.Aside(ctx, cache.BookKey(id), &book, cache.BookTTL, func() error {
		if err := r.withCategoryName(r.db.WithContext(ctx)).
			Where("books.id = ?", id).
			First(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Book", id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Recommended(ctx context.Context, limit int) ([]*models.Book, error) {
	var books []*models.Book
	err := cache.Aside(ctx, cache.RecommendedKey(limit), &books, cache.RecommendedTTL, func() error {
		return r.withCategoryName(r.db.WithContext(ctx)).
			Order("rating DESC, rating_count DESC").
			Limit(limit).
			Find(&books).Error
	})
	return books, err
}

func (r *bookRepository) Newest(ctx context.Context, limit int) ([]*models.Book, error) {
	var books []*models.Book
	err := r.withCategoryName(r.db.WithContext(ctx)).
		Order("books.created_at DESC").
		Limit(limit).
		Find(&books).Error
	return books, err
}

// Search matches title, author, or description with LIKE. Ordering is the
// fixed tie-break: title matches first, author matches second, everything
// else last, with rating descending within each group.
func (r *bookRepository) Search(ctx context.Context, query string, limit int) ([]*models.Book, error) {
	var books []*models.Book
	like := "%" + query + "%"
	err := r.withCategoryName(r.db.WithContext(ctx)).
		Where("books.title LIKE ? OR books.author LIKE ? OR books.description LIKE ?", like, like, like).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN books.title LIKE ? THEN 1 WHEN books.author LIKE ? THEN 2 ELSE 3 END, books.rating DESC",
			Vars:               []interface{}{like, like},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&books).Error
	return books, err
}

func (r *bookRepository) ByCategory(ctx context.Context, categoryID uint, limit int) ([]*models.Book, error) {
	var books []*models.Book
	err := r.withCategoryName(r.db.WithContext(ctx)).
		Where("books.category_id = ?", categoryID).
		Order("rating DESC").
		Limit(limit).
		Find(&books).Error
	return books, err
}

func (r *bookRepository) ByTag(ctx context.Context, tagID uint, limit int) ([]*models.Book, error) {
	var books []*models.Book
	err := r.withCategoryName(r.db.WithContext(ctx)).
		Joins("JOIN book_tags ON book_tags.book_id = books.id").
		Where("book_tags.tag_id = ?", tagID).
		Order("rating DESC").
		Limit(limit).
		Find(&books).Error
	return books, err
}

func (r *bookRepository) Chapters(ctx context.Context, bookID uint) ([]*models.Chapter, error) {
	var chapters []*models.Chapter
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("chapter_number ASC").
		Find(&chapters).Error
	return chapters, err
}

func (r *bookRepository) Chapter(ctx context.Context, bookID uint, number int) (*models.Chapter, error) {
	var chapter models.Chapter
	err := r.db.WithContext(ctx).
		Where("book_id = ? AND chapter_number = ?", bookID, number).
		First(&chapter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chapter", number)
		}
		return nil, err
	}
	return &chapter, nil
}

func (r *bookRepository) Tags(ctx context.Context, bookID uint) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Joins("JOIN book_tags ON book_tags.tag_id = tags.id").
		Where("book_tags.book_id = ?", bookID).
		Find(&tags).Error
	return tags, err
}
