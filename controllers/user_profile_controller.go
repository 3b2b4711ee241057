package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// GetProfile returns the authenticated user's profile with collection counts
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var bookCount, listCount int64
	config.DB.Model(&models.Book{}).Where("user_id = ?", user.ID).Count(&bookCount)
	config.DB.Model(&models.BookList{}).Where("user_id = ?", user.ID).Count(&listCount)

	utils.Success(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"email":         user.Email,
			"is_demo":       user.IsDemo,
			"member_since":  user.CreatedAt,
			"last_login_at": user.LastLoginAt,
		},
		"book_count": bookCount,
		"list_count": listCount,
	})
}

// EditUsername changes the authenticated user's username
func EditUsername(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide a username")
		return
	}

	if valid, msg := utils.ValidateUsername(req.Username); !valid {
		utils.BadRequest(c, "Invalid username", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ? AND id != ?", req.Username, user.ID).First(&existing).Error; err == nil {
		utils.Conflict(c, "Username already taken", nil)
		return
	}

	user.Username = req.Username
	if err := utils.UpdateUser(&user); err != nil {
		utils.LogError("Failed to update username for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update username", err.Error())
		return
	}

	utils.LogInfo("Username updated for user %d", user.ID)
	utils.Success(c, "Username updated successfully", gin.H{"username": user.Username})
}

// EditEmail changes the authenticated user's email address
func EditEmail(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", "Please provide an email address")
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ? AND id != ?", req.Email, user.ID).First(&existing).Error; err == nil {
		utils.Conflict(c, "Email already registered", nil)
		return
	}

	user.Email = req.Email
	if err := utils.UpdateUser(&user); err != nil {
		utils.LogError("Failed to update email for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update email", err.Error())
		return
	}

	utils.LogInfo("Email updated for user %d", user.ID)
	utils.Success(c, "Email updated successfully", gin.H{"email": user.Email})
}

// DeleteAccount removes the user and all of their books and lists
func DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}

	// List memberships first, then lists and books, then the user
	if err := tx.Exec(`DELETE FROM book_list_items WHERE book_list_id IN
		(SELECT id FROM book_lists WHERE user_id = ?)`, user.ID).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear list memberships for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.BookList{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete lists for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Book{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete books for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}
	if err := tx.Delete(&user).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit account deletion: %v", err)
		utils.InternalServerError(c, "Failed to delete account", nil)
		return
	}

	utils.LogInfo("Account deleted: user %d", user.ID)
	utils.Success(c, "Account deleted successfully", nil)
}
