package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/utils"
)

// GetBooks handles the book list view with filtering, sorting and pagination
func GetBooks(c *gin.Context) {
	utils.LogInfo("GetBooks called with query params: %v", c.Request.URL.Query())

	user, ok := currentUser(c)
	if !ok {
		return
	}

	query := ParseBookQuery(c)

	books, err := utils.OwnedBooks(user.ID)
	if err != nil {
		utils.LogError("Failed to fetch books for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch books", err.Error())
		return
	}

	filtered := FilterBooks(books, query)
	sorted := SortBooks(filtered, query.Sort)

	pagination := utils.NewPagination(c)
	pagination.SetTotal(int64(len(sorted)))
	start, end := pagination.Slice(len(sorted))

	utils.LogInfo("User %d book list: %d owned, %d after filters", user.ID, len(books), len(sorted))

	utils.Success(c, "Books retrieved successfully", gin.H{
		"books": bookResponses(sorted[start:end]),
		"years": AvailableYears(books),
		"filters": gin.H{
			"search": query.Search,
			"genre":  query.Genre,
			"rating": query.Rating,
			"year":   query.Year,
		},
		"sort": query.Sort,
		"pagination": gin.H{
			"total":       pagination.Total,
			"page":        pagination.Page,
			"limit":       pagination.Limit,
			"total_pages": pagination.LastPage,
		},
	})
}

// GetBookDetails returns a single owned book
func GetBookDetails(c *gin.Context) {
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

	utils.Success(c, "Book retrieved successfully", gin.H{"book": bookResponse(*book)})
}
