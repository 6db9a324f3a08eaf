package models

import "time"

// Post is a community message, optionally referencing a book.
//
// LikesCount and CommentsCount are denormalized counters persisted on the
// row. The repository write paths keep them equal to the number of like
// and comment rows referencing the post; there is no database trigger.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	BookID        *uint     `gorm:"index" json:"book_id,omitempty"`
	Book          *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->;-:migration" json:"liked"`
}
