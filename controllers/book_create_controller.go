package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/config"
	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// AddBook creates a new book owned by the authenticated user. Accepts
// multipart form data with an optional cover image.
func AddBook(c *gin.Context) {
	utils.LogInfo("AddBook called")

	user, ok := currentUser(c)
	if !ok {
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

	status := c.DefaultPostForm("status", models.StatusFinished)
	if !models.ValidStatus(status) {
		utils.BadRequest(c, "Invalid status", "Status must be one of want_to_read, currently_reading, finished")
		return
	}

	genre := c.PostForm("genre")
	if !models.ValidGenre(genre) {
		utils.BadRequest(c, "Invalid genre", "Unknown genre code")
		return
	}

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

	book := models.Book{
		UserID:       user.ID, // owner bound from the session, never from client input
		Title:        title,
		Author:       author,
		Status:       status,
		Genre:        genre,
		Rating:       rating,
		Review:       utils.SanitizeString(c.PostForm("review")),
		DateFinished: dateFinished,
		PurchaseLink: purchaseLink,
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		imagePath, err := utils.SaveCoverImage(file, "uploads")
		if err != nil {
			utils.LogError("Failed to save cover image: %v", err)
			utils.BadRequest(c, "Failed to save cover image", err.Error())
			return
		}
		book.ImageURL = imagePath
	}

	if err := config.DB.Create(&book).Error; err != nil {
		utils.LogError("Failed to create book for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create book", err.Error())
		return
	}

	utils.LogInfo("Book created: %s (ID: %d) for user %d", book.Title, book.ID, user.ID)
	utils.Created(c, "Book added successfully", gin.H{"book": bookResponse(book)})
}
