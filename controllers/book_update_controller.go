package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// EditBook updates an owned book. All editable fields are submitted
// together, mirroring the edit form; the owner reference never changes.
func EditBook(c *gin.Context) {
	utils.LogInfo("EditBook called")

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

	title := utils.SanitizeString(c.PostForm("title"))
	author := utils.SanitizeString(c.PostForm("author"))

	if valid, msg := utils.ValidateBookTitle(title); !valid {
		utils.BadRequest(c, "Invalid title", msg)
		return
	}
	if valid, msg := utils.ValidateAuthor(author); !valid {
		utils.BadRequest(c, "Invalid author", msg)
		return
	}

	status := c.DefaultPostForm("status", book.Status)
	if !models.ValidStatus(status) {
		utils.BadRequest(c, "Invalid status", "Status must be one of want_to_read, currently_reading, finished")
		return
	}

	genre := c.PostForm("genre")
	if !models.ValidGenre(genre) {
		utils.BadRequest(c, "Invalid genre", "Unknown genre code")
		return
	}

	// Empty rating clears it
	var rating *int
	if ratingStr := c.PostForm("rating"); ratingStr != "" {
		value, err := strconv.Atoi(ratingStr)
		if err != nil {
			utils.BadRequest(c, "Invalid rating", "Rating must be a number")
			return
		}
		if valid, msg := utils.ValidateRating(value); !valid {
			utils.BadRequest(c, "Invalid rating", msg)
			return
		}
		rating = &value
	}

	dateFinished, err := parseDate(c.PostForm("date_finished"))
	if err != nil {
		utils.BadRequest(c, "Invalid date_finished", "Date must be in YYYY-MM-DD format")
		return
	}

	purchaseLink := c.PostForm("purchase_link")
	if valid, msg := utils.ValidatePurchaseLink(purchaseLink); !valid {
		utils.BadRequest(c, "Invalid purchase link", msg)
		return
	}

	book.Title = title
	book.Author = author
	book.Status = status
	book.Genre = genre
	book.Rating = rating
	book.Review = utils.SanitizeString(c.PostForm("review"))
	book.DateFinished = dateFinished
	book.PurchaseLink = purchaseLink

	if file, err := c.FormFile("image"); err == nil && file != nil {
		imagePath, err := utils.SaveCoverImage(file, "uploads")
		if err != nil {
			utils.LogError("Failed to save cover image: %v", err)
			utils.BadRequest(c, "Failed to save cover image", err.Error())
			return
		}
		if book.ImageURL != "" {
			_ = utils.DeleteFile(book.ImageURL)
		}
		book.ImageURL = imagePath
	}

	// Save clears Rating/DateFinished columns too when they are nil
	if err := config.DB.Model(book).Select("Title", "Author", "Status", "Genre",
		"Rating", "Review", "DateFinished", "PurchaseLink", "ImageURL").Updates(book).Error; err != nil {
		utils.LogError("Failed to update book %d: %v", book.ID, err)
		utils.InternalServerError(c, "Failed to update book", err.Error())
		return
	}

	utils.LogInfo("Book updated: %s (ID: %d) for user %d", book.Title, book.ID, user.ID)
	utils.Success(c, "Book updated successfully", gin.H{"book": bookResponse(*book)})
}
