package models

import "time"

// ShelfEntry records that a user keeps a book on their shelf, along with
// how far they have read. The combination of UserID and BookID is unique.
type ShelfEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex:idx_user_book" json:"user_id"`
	BookID          uint      `gorm:"not null;uniqueIndex:idx_user_book" json:"book_id"`
	ReadingProgress int       `gorm:"not null;default:0" json:"reading_progress"`
	LastReadAt      time.Time `json:"last_read_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Book Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book"`
}
