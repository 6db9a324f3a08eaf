package repository

import (
	"context"

	"libris/internal/cache"
	"libris/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines read operations over book categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
	Popular(ctx context.Context, limit int) ([]*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// withBookCount counts the books in each category at query time.
func (r *categoryRepository) withBookCount(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Category{}).
		Select("categories.*, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.category_id = categories.id").
		Group("categories.id")
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		return r.withBookCount(r.db.WithContext(ctx)).
			Order("categories.name ASC").
			Find(&categories).Error
	})
	return categories, err
}

func (r *categoryRepository) Popular(ctx context.Context, limit int) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.withBookCount(r.db.WithContext(ctx)).
		Order("book_count DESC").
		Limit(limit).
		Find(&categories).Error
	return categories, err
}
