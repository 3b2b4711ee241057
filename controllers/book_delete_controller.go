package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/utils"
)

// DeleteBook removes an owned book and cleans it out of every list
// that referenced it
func DeleteBook(c *gin.Context) {
	utils.LogInfo("DeleteBook called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid book ID", nil)
		return
	}

	book, err := utils.OwnedBook(user.ID, uint(id))
	if err != nil {
		utils.LogError("Book %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "Book not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to process deletion", nil)
		return
	}

	// Remove the book from any lists that reference it
	if err := tx.Exec("DELETE FROM book_list_items WHERE book_id = ?", book.ID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to remove book %d from lists: %v", book.ID, err)
		utils.InternalServerError(c, "Failed to delete book", nil)
		return
	}

	if err := tx.Delete(book).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete book %d: %v", book.ID, err)
		utils.InternalServerError(c, "Failed to delete book", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to complete deletion", nil)
		return
	}

	if book.ImageURL != "" {
		// Best effort; the record is already gone
		_ = utils.DeleteFile(book.ImageURL)
	}

	utils.LogInfo("Book deleted: %s (ID: %d) for user %d", book.Title, book.ID, user.ID)
	utils.Success(c, "Book deleted successfully", nil)
}
