package controllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ria-dsouza/shelflife/models"
)

func finishedBook(title, author, genre string, rating *int, finished *time.Time) models.Book {
	return models.Book{
		Title:        title,
		Author:       author,
		Genre:        genre,
		Status:       models.StatusFinished,
		Rating:       rating,
		DateFinished: finished,
	}
}

func TestBuildReadingStatsEmpty(t *testing.T) {
	stats := BuildReadingStats(nil)

	assert.Zero(t, stats.TotalBooks)
	assert.Zero(t, stats.AvgRating)
	assert.NotNil(t, stats.GenreStats)
	assert.Empty(t, stats.GenreStats)
	assert.NotNil(t, stats.AuthorStats)
	assert.Empty(t, stats.AuthorStats)
	assert.NotNil(t, stats.YearStats)
	assert.Empty(t, stats.YearStats)
	assert.NotNil(t, stats.Top3RecentBooks)
	assert.Empty(t, stats.Top3RecentBooks)
}

func TestBuildReadingStatsAvgRatingRounding(t *testing.T) {
	books := []models.Book{
		finishedBook("A", "X", "fiction", intPtr(5), nil),
		finishedBook("B", "X", "fiction", intPtr(5), nil),
		finishedBook("C", "X", "fiction", intPtr(5), nil),
		finishedBook("D", "X", "fiction", intPtr(5), nil),
		finishedBook("E", "X", "fiction", intPtr(3), nil),
	}

	stats := BuildReadingStats(books)

	// 23 / 5 = 4.6 exactly, rounded to one decimal
	assert.Equal(t, 4.6, stats.AvgRating)
	assert.Equal(t, 5, stats.TotalBooks)
}

func TestBuildReadingStatsUnratedExcludedFromAverages(t *testing.T) {
	books := []models.Book{
		finishedBook("A", "X", "fiction", intPtr(4), nil),
		finishedBook("B", "X", "fiction", nil, nil),
		finishedBook("C", "X", "fiction", intPtr(2), nil),
	}

	stats := BuildReadingStats(books)

	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 3.0, stats.AvgRating)
	assert.Equal(t, 3.0, stats.GenreStats[0].AvgRating)
	assert.Equal(t, 3, stats.GenreStats[0].Count)
}

func TestBuildReadingStatsGenreOrdering(t *testing.T) {
	books := []models.Book{
		finishedBook("A", "X", "scifi", nil, nil),
		finishedBook("B", "X", "scifi", nil, nil),
		finishedBook("C", "X", "fantasy", nil, nil),
		finishedBook("D", "X", "history", nil, nil),
	}

	stats := BuildReadingStats(books)

	assert.Len(t, stats.GenreStats, 3)
	assert.Equal(t, "scifi", stats.GenreStats[0].Genre)
	assert.Equal(t, "Science Fiction", stats.GenreStats[0].Label)
	assert.Equal(t, 2, stats.GenreStats[0].Count)
	// Tied counts order by display label ascending
	assert.Equal(t, "fantasy", stats.GenreStats[1].Genre)
	assert.Equal(t, "history", stats.GenreStats[2].Genre)
}

func TestBuildReadingStatsTopAuthorsTruncated(t *testing.T) {
	books := make([]models.Book, 0)
	for i := 0; i < 7; i++ {
		author := fmt.Sprintf("Author %d", i)
		for j := 0; j <= i; j++ {
			books = append(books, finishedBook(fmt.Sprintf("Book %d-%d", i, j), author, "fiction", nil, nil))
		}
	}

	stats := BuildReadingStats(books)

	assert.Len(t, stats.AuthorStats, 5)
	assert.Equal(t, "Author 6", stats.AuthorStats[0].Author)
	assert.Equal(t, 7, stats.AuthorStats[0].Count)
	assert.Equal(t, "Author 2", stats.AuthorStats[4].Author)
}

func TestBuildReadingStatsYearsNewestFirst(t *testing.T) {
	books := []models.Book{
		finishedBook("A", "X", "fiction", nil, datePtr(2022, 1, 1)),
		finishedBook("B", "X", "fiction", nil, datePtr(2024, 1, 1)),
		finishedBook("C", "X", "fiction", nil, datePtr(2024, 6, 1)),
		finishedBook("D", "X", "fiction", nil, nil),
	}

	stats := BuildReadingStats(books)

	assert.Equal(t, []YearStat{{Year: 2024, Count: 2}, {Year: 2022, Count: 1}}, stats.YearStats)
}

func TestTopRecentFiveStarKeepsThreeNewest(t *testing.T) {
	books := []models.Book{
		finishedBook("Oldest", "X", "fiction", intPtr(5), datePtr(2021, 1, 1)),
		finishedBook("Newest", "X", "fiction", intPtr(5), datePtr(2024, 8, 1)),
		finishedBook("Middle", "X", "fiction", intPtr(5), datePtr(2023, 4, 1)),
		finishedBook("Older", "X", "fiction", intPtr(5), datePtr(2022, 2, 1)),
	}

	top := topRecentFiveStar(books, 3)

	assert.Equal(t, []string{"Newest", "Middle", "Older"}, titles(top))
}

func TestTopRecentFiveStarExcludesLowerRatedAndUndated(t *testing.T) {
	books := []models.Book{
		finishedBook("Four Stars", "X", "fiction", intPtr(4), datePtr(2024, 1, 1)),
		finishedBook("Undated", "X", "fiction", intPtr(5), nil),
		finishedBook("Unrated", "X", "fiction", nil, datePtr(2024, 1, 1)),
		finishedBook("Qualified", "X", "fiction", intPtr(5), datePtr(2023, 1, 1)),
	}

	top := topRecentFiveStar(books, 3)

	assert.Equal(t, []string{"Qualified"}, titles(top))
}

func TestTopRecentFiveStarNeverPadded(t *testing.T) {
	top := topRecentFiveStar([]models.Book{}, 3)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}
