package models

import "time"

// Book represents a title in the library catalog.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null;index" json:"title"`
	Author          string    `gorm:"not null" json:"author"`
	CoverImage      string    `json:"cover_image"`
	Description     string    `gorm:"type:text" json:"description"`
	PublicationDate string    `json:"publication_date"`
	Publisher       string    `json:"publisher"`
	ISBN            string    `json:"isbn"`
	PageCount       int       `json:"page_count"`
	Rating          float64   `gorm:"not null;default:0" json:"rating"`
	RatingCount     int       `gorm:"not null;default:0" json:"rating_count"`
	CategoryID      *uint     `gorm:"index" json:"category_id,omitempty"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	// CategoryName is not persisted; joined from categories at query time
	CategoryName string `gorm:"->;-:migration" json:"category_name,omitempty"`
}

// Chapter holds the readable content of one chapter of a book.
// The combination of BookID and ChapterNumber is unique.
type Chapter struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BookID        uint      `gorm:"not null;uniqueIndex:idx_book_chapter" json:"book_id"`
	ChapterNumber int       `gorm:"not null;uniqueIndex:idx_book_chapter" json:"chapter_number"`
	ChapterTitle  string    `gorm:"not null" json:"chapter_title"`
	Content       string    `gorm:"type:text" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Book Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

// Tag is a free-form label attached to books.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// BookTag joins books and tags.
type BookTag struct {
	BookID uint `gorm:"primaryKey" json:"book_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`

	Book Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	Tag  Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
}
