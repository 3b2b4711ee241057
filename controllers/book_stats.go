package controllers

import (
	"math"
	"sort"

	"github.com/ria-dsouza/shelflife/models"
)

// GenreStat holds the per-genre breakdown for a user's finished books
type GenreStat struct {
	Genre     string  `json:"genre"`
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// AuthorStat holds the per-author book count
type AuthorStat struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// YearStat holds the count of books finished in a calendar year
type YearStat struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// ReadingStats is the statistics summary for a user's finished books
type ReadingStats struct {
	TotalBooks      int           `json:"total_books"`
	AvgRating       float64       `json:"avg_rating"`
	GenreStats      []GenreStat   `json:"genre_stats"`
	AuthorStats     []AuthorStat  `json:"author_stats"`
	YearStats       []YearStat    `json:"year_stats"`
	Top3RecentBooks []models.Book `json:"top3_recent_books"`
}

const topAuthorLimit = 5

// BuildReadingStats computes the aggregate statistics over a user's
// finished books. Callers must pass finished books only; other
// statuses are excluded from every statistic. Unrated books are
// excluded from averages, undated books from year grouping and from
// the recent top-3.
func BuildReadingStats(finished []models.Book) ReadingStats {
	stats := ReadingStats{
		TotalBooks:      len(finished),
		GenreStats:      []GenreStat{},
		AuthorStats:     []AuthorStat{},
		YearStats:       []YearStat{},
		Top3RecentBooks: []models.Book{},
	}

	type genreAcc struct {
		count     int
		ratingSum int
		rated     int
	}
	genres := make(map[string]*genreAcc)
	authors := make(map[string]int)
	years := make(map[int]int)

	ratingSum, ratedCount := 0, 0
	for _, b := range finished {
		acc := genres[b.Genre]
		if acc == nil {
			acc = &genreAcc{}
			genres[b.Genre] = acc
		}
		acc.count++
		if b.Rating != nil {
			acc.ratingSum += *b.Rating
			acc.rated++
			ratingSum += *b.Rating
			ratedCount++
		}

		authors[b.Author]++

		if b.DateFinished != nil {
			years[b.DateFinished.Year()]++
		}
	}

	if ratedCount > 0 {
		stats.AvgRating = roundOneDecimal(float64(ratingSum) / float64(ratedCount))
	}

	for genre, acc := range genres {
		stat := GenreStat{
			Genre: genre,
			Label: models.GenreLabels[genre],
			Count: acc.count,
		}
		if acc.rated > 0 {
			stat.AvgRating = roundOneDecimal(float64(acc.ratingSum) / float64(acc.rated))
		}
		stats.GenreStats = append(stats.GenreStats, stat)
	}
	sort.Slice(stats.GenreStats, func(i, j int) bool {
		if stats.GenreStats[i].Count != stats.GenreStats[j].Count {
			return stats.GenreStats[i].Count > stats.GenreStats[j].Count
		}
		return stats.GenreStats[i].Label < stats.GenreStats[j].Label
	})

	for author, count := range authors {
		stats.AuthorStats = append(stats.AuthorStats, AuthorStat{Author: author, Count: count})
	}
	sort.Slice(stats.AuthorStats, func(i, j int) bool {
		if stats.AuthorStats[i].Count != stats.AuthorStats[j].Count {
			return stats.AuthorStats[i].Count > stats.AuthorStats[j].Count
		}
		return stats.AuthorStats[i].Author < stats.AuthorStats[j].Author
	})
	if len(stats.AuthorStats) > topAuthorLimit {
		stats.AuthorStats = stats.AuthorStats[:topAuthorLimit]
	}

	for year, count := range years {
		stats.YearStats = append(stats.YearStats, YearStat{Year: year, Count: count})
	}
	sort.Slice(stats.YearStats, func(i, j int) bool {
		return stats.YearStats[i].Year > stats.YearStats[j].Year
	})

	stats.Top3RecentBooks = topRecentFiveStar(finished, 3)

	return stats
}

// topRecentFiveStar returns at most limit five-star books with a
// finished date, most recently finished first. Never padded.
func topRecentFiveStar(books []models.Book, limit int) []models.Book {
	qualified := make([]models.Book, 0)
	for _, b := range books {
		if b.Rating != nil && *b.Rating == 5 && b.DateFinished != nil {
			qualified = append(qualified, b)
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].DateFinished.After(*qualified[j].DateFinished)
	})
	if len(qualified) > limit {
		qualified = qualified[:limit]
	}
	return qualified
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
