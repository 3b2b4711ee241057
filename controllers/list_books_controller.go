package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// ListBooksRequest carries the book IDs for list membership changes
type ListBooksRequest struct {
	BookIDs []uint `json:"book_ids" binding:"required"`
}

// AddBooksToList adds owned books to an owned list. Books the user does
// not own are reported as not found.
func AddBooksToList(c *gin.Context) {
	utils.LogInfo("AddBooksToList called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid list ID", nil)
		return
	}

	list, err := utils.OwnedList(user.ID, uint(id), false)
	if err != nil {
		utils.LogError("List %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "List not found")
		return
	}

	var req ListBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide book_ids")
		return
	}
	if len(req.BookIDs) == 0 {
		utils.BadRequest(c, "No books provided", "book_ids must not be empty")
		return
	}

	// Every requested book must belong to the requesting user
	var books []models.Book
	if err := config.DB.Where("user_id = ? AND id IN ?", user.ID, req.BookIDs).Find(&books).Error; err != nil {
		utils.LogError("Failed to fetch books for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch books", err.Error())
		return
	}
	if len(books) != len(req.BookIDs) {
		utils.LogError("User %d requested books not in their library", user.ID)
		utils.NotFound(c, "Book not found")
		return
	}

	if err := config.DB.Model(list).Association("Books").Append(&books); err != nil {
		utils.LogError("Failed to add books to list %d: %v", list.ID, err)
		utils.InternalServerError(c, "Failed to add books to list", err.Error())
		return
	}

	utils.LogInfo("Added %d books to list %d for user %d", len(books), list.ID, user.ID)
	utils.Success(c, "Books added to list successfully", gin.H{
		"list_id": list.ID,
		"added":   len(books),
	})
}

// RemoveBooksFromList removes books from an owned list
func RemoveBooksFromList(c *gin.Context) {
	utils.LogInfo("RemoveBooksFromList called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid list ID", nil)
		return
	}

	list, err := utils.OwnedList(user.ID, uint(id), false)
	if err != nil {
		utils.LogError("List %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "List not found")
		return
	}

	var req ListBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide book_ids")
		return
	}
	if len(req.BookIDs) == 0 {
		utils.BadRequest(c, "No books provided", "book_ids must not be empty")
		return
	}

	books := make([]models.Book, len(req.BookIDs))
	for i, bookID := range req.BookIDs {
		books[i] = models.Book{}
		books[i].ID = bookID
	}

	if err := config.DB.Model(list).Association("Books").Delete(&books); err != nil {
		utils.LogError("Failed to remove books from list %d: %v", list.ID, err)
		utils.InternalServerError(c, "Failed to remove books from list", err.Error())
		return
	}

	utils.LogInfo("Removed %d books from list %d for user %d", len(req.BookIDs), list.ID, user.ID)
	utils.Success(c, "Books removed from list successfully", gin.H{
		"list_id": list.ID,
		"removed": len(req.BookIDs),
	})
}
