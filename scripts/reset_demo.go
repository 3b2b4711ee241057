package main

import (
	"log"
	"os"
	"time"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
)

// Seed data for the shared demo account. Books are matched back into
// lists by title, so titles must stay unique within this set.
type seedBook struct {
	Title        string
	Author       string
	Genre        string
	Status       string
	Rating       int // 0 = unrated
	Review       string
	DateFinished string // YYYY-MM-DD, empty = none
	PurchaseLink string
}

type seedList struct {
	Name  string
	Books []string
}

var demoBooks = []seedBook{
	{"The Hobbit", "J.R.R. Tolkien", "fantasy", models.StatusFinished, 5, "A comfort read, every time.", "2024-03-10", "https://example.com/the-hobbit"},
	{"Dune", "Frank Herbert", "scifi", models.StatusFinished, 5, "Dense but rewarding.", "2024-05-22", ""},
	{"Project Hail Mary", "Andy Weir", "scifi", models.StatusFinished, 4, "", "2024-07-01", ""},
	{"The Name of the Wind", "Patrick Rothfuss", "fantasy", models.StatusFinished, 4, "Still waiting for book three.", "2023-11-18", ""},
	{"Gone Girl", "Gillian Flynn", "thriller", models.StatusFinished, 3, "", "2023-06-02", ""},
	{"Educated", "Tara Westover", "biography", models.StatusFinished, 5, "Hard to put down.", "2024-01-15", ""},
	{"Atomic Habits", "James Clear", "selfhelp", models.StatusFinished, 4, "", "2023-02-27", ""},
	{"The Midnight Library", "Matt Haig", "fiction", models.StatusCurrentlyReading, 0, "", "", ""},
	{"A Brief History of Time", "Stephen Hawking", "nonfiction", models.StatusWantToRead, 0, "", "", ""},
	{"The Silent Patient", "Alex Michaelides", "mystery", models.StatusWantToRead, 0, "", "", ""},
}

var demoLists = []seedList{
	{"All-time favorites", []string{"The Hobbit", "Dune", "Educated"}},
	{"Sci-fi shelf", []string{"Dune", "Project Hail Mary"}},
	{"Up next", []string{"A Brief History of Time", "The Silent Patient"}},
}

func main() {
	config.InitDB()

	demoEmail := os.Getenv("DEMO_EMAIL")
	if demoEmail == "" {
		log.Fatal("DEMO_EMAIL not configured")
	}

	var demoUser models.User
	if err := config.DB.Where("email = ?", demoEmail).First(&demoUser).Error; err != nil {
		log.Fatal("No demo user found: ", err)
	}

	// Wipe the demo account's existing data. Clearing list memberships
	// first keeps the join table consistent.
	tx := config.DB.Begin()
	if tx.Error != nil {
		log.Fatal("Failed to start transaction: ", tx.Error)
	}
	if err := tx.Exec(`DELETE FROM book_list_items WHERE book_list_id IN
		(SELECT id FROM book_lists WHERE user_id = ?)`, demoUser.ID).Error; err != nil {
		tx.Rollback()
		log.Fatal("Failed to clear demo list memberships: ", err)
	}
	if err := tx.Where("user_id = ?", demoUser.ID).Delete(&models.BookList{}).Error; err != nil {
		tx.Rollback()
		log.Fatal("Failed to delete demo lists: ", err)
	}
	if err := tx.Where("user_id = ?", demoUser.ID).Delete(&models.Book{}).Error; err != nil {
		tx.Rollback()
		log.Fatal("Failed to delete demo books: ", err)
	}
	if err := tx.Commit().Error; err != nil {
		log.Fatal("Failed to commit wipe: ", err)
	}
	log.Println("Deleted existing demo data")

	// Recreate books from seed data
	byTitle := make(map[string]models.Book)
	for _, sb := range demoBooks {
		book := models.Book{
			UserID:       demoUser.ID,
			Title:        sb.Title,
			Author:       sb.Author,
			Genre:        sb.Genre,
			Status:       sb.Status,
			Review:       sb.Review,
			PurchaseLink: sb.PurchaseLink,
		}
		if sb.Rating > 0 {
			rating := sb.Rating
			book.Rating = &rating
		}
		if sb.DateFinished != "" {
			date, err := time.Parse("2006-01-02", sb.DateFinished)
			if err != nil {
				log.Fatalf("Bad seed date for %q: %v", sb.Title, err)
			}
			book.DateFinished = &date
		}
		if err := config.DB.Create(&book).Error; err != nil {
			log.Fatalf("Failed to create book %q: %v", sb.Title, err)
		}
		byTitle[book.Title] = book
	}
	log.Printf("Created %d books", len(demoBooks))

	// Recreate lists and reconnect books by title
	for _, sl := range demoLists {
		list := models.BookList{
			UserID: demoUser.ID,
			Name:   sl.Name,
		}
		if err := config.DB.Create(&list).Error; err != nil {
			log.Fatalf("Failed to create list %q: %v", sl.Name, err)
		}
		for _, title := range sl.Books {
			book, ok := byTitle[title]
			if !ok {
				log.Printf("Book not found: %s", title)
				continue
			}
			if err := config.DB.Model(&list).Association("Books").Append(&book); err != nil {
				log.Fatalf("Failed to add %q to list %q: %v", title, sl.Name, err)
			}
		}
	}
	log.Printf("Created %d lists", len(demoLists))

	log.Println("Demo account reset successfully!")
}
