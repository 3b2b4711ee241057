package utils

import (
	"gorm.io/gorm"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
)

// CreateUser creates a new user
func CreateUser(user *models.User) error {
	return config.DB.Create(user).Error
}

// GetUserByID retrieves a user by ID
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user
func UpdateUser(user *models.User) error {
	return config.DB.Save(user).Error
}

// UpdateUserPassword sets a new password hash for a user
func UpdateUserPassword(userID uint, hash string) error {
	return config.DB.Model(&models.User{}).Where("id = ?", userID).Update("password", hash).Error
}

// OwnedBook fetches a book by ID scoped to its owner. A book that exists
// but belongs to another user is indistinguishable from a missing one.
func OwnedBook(userID uint, bookID uint) (*models.Book, error) {
	var book models.Book
	if err := config.DB.Where("id = ? AND user_id = ?", bookID, userID).First(&book).Error; err != nil {
		return nil, NotFoundError("Book not found", err)
	}
	return &book, nil
}

// OwnedBooks fetches all of a user's books in the default title ordering
func OwnedBooks(userID uint) ([]models.Book, error) {
	var books []models.Book
	if err := config.DB.Where("user_id = ?", userID).Order("title ASC, id ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// OwnedFinishedBooks fetches a user's books with status finished
func OwnedFinishedBooks(userID uint) ([]models.Book, error) {
	var books []models.Book
	if err := config.DB.Where("user_id = ? AND status = ?", userID, models.StatusFinished).
		Order("title ASC, id ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// OwnedList fetches a list by ID scoped to its owner, optionally with
// its member books preloaded
func OwnedList(userID uint, listID uint, withBooks bool) (*models.BookList, error) {
	query := config.DB.Where("id = ? AND user_id = ?", listID, userID)
	if withBooks {
		query = query.Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("books.title ASC, books.id ASC")
		})
	}
	var list models.BookList
	if err := query.First(&list).Error; err != nil {
		return nil, NotFoundError("List not found", err)
	}
	return &list, nil
}
