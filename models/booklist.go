package models

import "gorm.io/gorm"

// BookList represents a user-created named collection of books.
// A list can hold many books and a book can belong to many lists.
type BookList struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Books  []Book `gorm:"many2many:book_list_items;" json:"books,omitempty"`
}
