package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered reader
type User struct {
	gorm.Model
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `json:"-"`
	GoogleID     string    `gorm:"default:null" json:"-"`
	IsDemo       bool      `gorm:"default:false" json:"is_demo"`
	ResetOTP     string    `json:"-"`
	ResetExpires time.Time `json:"-"`
	LastLoginAt  time.Time `json:"last_login_at"`

	Books []Book     `json:"books,omitempty" gorm:"foreignKey:UserID"`
	Lists []BookList `json:"lists,omitempty" gorm:"foreignKey:UserID"`
}

// Reading status values
const (
	StatusWantToRead       = "want_to_read"
	StatusCurrentlyReading = "currently_reading"
	StatusFinished         = "finished"
)

// StatusLabels maps status values to their display labels
var StatusLabels = map[string]string{
	StatusWantToRead:       "Want to Read",
	StatusCurrentlyReading: "Currently Reading",
	StatusFinished:         "Finished",
}

// GenreLabels maps genre codes to their display labels
var GenreLabels = map[string]string{
	"fiction":    "Fiction",
	"nonfiction": "Non-Fiction",
	"mystery":    "Mystery",
	"scifi":      "Science Fiction",
	"fantasy":    "Fantasy",
	"thriller":   "Thriller",
	"romance":    "Romance",
	"biography":  "Biography",
	"history":    "History",
	"selfhelp":   "Self-Help",
}

// ValidGenre reports whether code is one of the fixed genre codes
func ValidGenre(code string) bool {
	_, ok := GenreLabels[code]
	return ok
}

// ValidStatus reports whether status is one of the fixed status values
func ValidStatus(status string) bool {
	_, ok := StatusLabels[status]
	return ok
}

// Book represents a single tracked book owned by a user
type Book struct {
	gorm.Model
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Title        string     `gorm:"not null" json:"title"`
	Author       string     `gorm:"not null" json:"author"`
	Status       string     `gorm:"not null;default:'finished'" json:"status"`
	Genre        string     `gorm:"not null" json:"genre"`
	Rating       *int       `json:"rating"`
	Review       string     `json:"review"`
	DateFinished *time.Time `json:"date_finished"`
	PurchaseLink string     `json:"purchase_link"`
	ImageURL     string     `json:"image_url"`
}

// GenreLabel returns the display label for the book's genre code
func (b *Book) GenreLabel() string {
	return GenreLabels[b.Genre]
}

// StarDisplay returns the book's rating as filled/unfilled stars,
// or an empty string when the book is unrated
func (b *Book) StarDisplay() string {
	if b.Rating == nil {
		return ""
	}
	filled := strings.Repeat("⭐", *b.Rating)
	empty := strings.Repeat("☆", 5-*b.Rating)
	return filled + empty
}
