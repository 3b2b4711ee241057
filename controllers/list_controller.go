package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// listResponse shapes a list for API output
func listResponse(l models.BookList, bookCount int64) gin.H {
	return gin.H{
		"id":         l.ID,
		"name":       l.Name,
		"book_count": bookCount,
		"created_at": l.CreatedAt,
	}
}

// MyLists returns the user's lists, newest first, together with the
// per-status counts shown on the lists page
func MyLists(c *gin.Context) {
	utils.LogInfo("MyLists called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var lists []models.BookList
	if err := config.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&lists).Error; err != nil {
		utils.LogError("Failed to fetch lists for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch lists", err.Error())
		return
	}

	listData := make([]gin.H, len(lists))
	for i, l := range lists {
		count := config.DB.Model(&l).Association("Books").Count()
		listData[i] = listResponse(l, count)
	}

	// Per-status counts across the user's whole collection
	statusCounts := gin.H{}
	for _, status := range []string{models.StatusFinished, models.StatusCurrentlyReading, models.StatusWantToRead} {
		var count int64
		config.DB.Model(&models.Book{}).Where("user_id = ? AND status = ?", user.ID, status).Count(&count)
		statusCounts[status] = count
	}

	utils.Success(c, "Lists retrieved successfully", gin.H{
		"lists":         listData,
		"status_counts": statusCounts,
	})
}

// CreateList creates a new named list for the user
func CreateList(c *gin.Context) {
	utils.LogInfo("CreateList called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide a list name")
		return
	}

	name := utils.SanitizeString(req.Name)
	if valid, msg := utils.ValidateListName(name); !valid {
		utils.BadRequest(c, "Invalid list name", msg)
		return
	}

	list := models.BookList{
		UserID: user.ID,
		Name:   name,
	}
	if err := config.DB.Create(&list).Error; err != nil {
		utils.LogError("Failed to create list for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create list", err.Error())
		return
	}

	utils.LogInfo("List created: %s (ID: %d) for user %d", list.Name, list.ID, user.ID)
	utils.Created(c, "List created successfully", gin.H{"list": listResponse(list, 0)})
}

// GetListDetails returns an owned list with its member books
func GetListDetails(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid list ID", nil)
		return
	}

	list, err := utils.OwnedList(user.ID, uint(id), true)
	if err != nil {
		utils.LogError("List %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "List not found")
		return
	}

	utils.Success(c, "List retrieved successfully", gin.H{
		"list":  listResponse(*list, int64(len(list.Books))),
		"books": bookResponses(list.Books),
	})
}

// DeleteList removes an owned list; its books stay in the library
func DeleteList(c *gin.Context) {
	utils.LogInfo("DeleteList called")

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

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to process deletion", nil)
		return
	}

	if err := tx.Exec("DELETE FROM book_list_items WHERE book_list_id = ?", list.ID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear list %d memberships: %v", list.ID, err)
		utils.InternalServerError(c, "Failed to delete list", nil)
		return
	}

	if err := tx.Delete(list).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete list %d: %v", list.ID, err)
		utils.InternalServerError(c, "Failed to delete list", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to complete deletion", nil)
		return
	}

	utils.LogInfo("List deleted: %s (ID: %d) for user %d", list.Name, list.ID, user.ID)
	utils.Success(c, "List deleted successfully", nil)
}
