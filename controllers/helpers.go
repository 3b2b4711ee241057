package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

// currentUser extracts the authenticated user placed in the context by
// the auth middleware. The second return is false if the handler was
// reached without authentication.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.InternalServerError(c, "Invalid user in context", nil)
		return models.User{}, false
	}
	return user, true
}

// parseDate parses a YYYY-MM-DD form value; empty input yields nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// bookResponse shapes a book for API output, including display helpers
func bookResponse(b models.Book) gin.H {
	resp := gin.H{
		"id":            b.ID,
		"title":         b.Title,
		"author":        b.Author,
		"status":        b.Status,
		"status_label":  models.StatusLabels[b.Status],
		"genre":         b.Genre,
		"genre_label":   b.GenreLabel(),
		"rating":        b.Rating,
		"stars":         b.StarDisplay(),
		"review":        b.Review,
		"purchase_link": b.PurchaseLink,
		"image_url":     b.ImageURL,
		"created_at":    b.CreatedAt,
	}
	if b.DateFinished != nil {
		resp["date_finished"] = b.DateFinished.Format("2006-01-02")
	} else {
		resp["date_finished"] = nil
	}
	return resp
}

func bookResponses(books []models.Book) []gin.H {
	out := make([]gin.H, len(books))
	for i, b := range books {
		out[i] = bookResponse(b)
	}
	return out
}
