package seed

import (
	"libris/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent catalog section.
type BuiltInCategory struct {
	Name  string
	Icon  string
	Color string
}

// BuiltInCategories defines the permanent catalog sections.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Fiction", Icon: "book-open", Color: "#6366f1"},
	{Name: "Fantasy", Icon: "wand", Color: "#8b5cf6"},
	{Name: "Science Fiction", Icon: "rocket", Color: "#0ea5e9"},
	{Name: "Mystery", Icon: "search", Color: "#64748b"},
	{Name: "Romance", Icon: "heart", Color: "#ec4899"},
	{Name: "History", Icon: "landmark", Color: "#b45309"},
	{Name: "Biography", Icon: "user", Color: "#059669"},
	{Name: "Science", Icon: "flask", Color: "#14b8a6"},
	{Name: "Self-Help", Icon: "sun", Color: "#f59e0b"},
	{Name: "Poetry", Icon: "feather", Color: "#a855f7"},
	{Name: "Classics", Icon: "scroll", Color: "#78716c"},
	{Name: "Technology", Icon: "cpu", Color: "#3b82f6"},
}

// BuiltInTags defines the default label set attached to seeded books.
var BuiltInTags = []string{
	"bestseller", "award-winner", "new-release", "translated", "series",
	"standalone", "short-reads", "epic", "cozy", "dark", "uplifting",
	"page-turner", "slow-burn", "classic", "debut",
}

// Categories seeds the permanent catalog sections idempotently.
func Categories(db *gorm.DB) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(BuiltInCategories))
	for _, item := range BuiltInCategories {
		category := models.Category{
			Name:  item.Name,
			Icon:  item.Icon,
			Color: item.Color,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"icon", "color"}),
		}).Create(&category).Error; err != nil {
			return nil, err
		}
		if category.ID == 0 {
			if err := db.Where("name = ?", item.Name).First(&category).Error; err != nil {
				return nil, err
			}
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

// Tags seeds the default label set idempotently.
func Tags(db *gorm.DB) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(BuiltInTags))
	for _, name := range BuiltInTags {
		tag := models.Tag{Name: name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&tag).Error; err != nil {
			return nil, err
		}
		if tag.ID == 0 {
			if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
				return nil, err
			}
		}
		tags = append(tags, &tag)
	}
	return tags, nil
}
