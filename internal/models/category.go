package models

import "time"

// Category groups books into a browsable section of the library.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	// BookCount is not persisted; computed at query time
	BookCount int `gorm:"->;-:migration" json:"book_count"`
}
