package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/utils"
)

// GetReadingStats returns the statistics summary over the user's
// finished books
func GetReadingStats(c *gin.Context) {
	utils.LogInfo("GetReadingStats called")

	user, ok := currentUser(c)
	if !ok {
		return
	}

	finished, err := utils.OwnedFinishedBooks(user.ID)
	if err != nil {
		utils.LogError("Failed to fetch finished books for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch statistics", err.Error())
		return
	}

	stats := BuildReadingStats(finished)

	utils.Success(c, "Statistics retrieved successfully", gin.H{
		"total_books":       stats.TotalBooks,
		"avg_rating":        stats.AvgRating,
		"genre_stats":       stats.GenreStats,
		"author_stats":      stats.AuthorStats,
		"year_stats":        stats.YearStats,
		"top3_recent_books": bookResponses(stats.Top3RecentBooks),
	})
}
