package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ria-dsouza/shelflife/models"
)

// Recognized sort keys for the book list view
const (
	SortTitleAsc   = "title_asc"
	SortAuthorAsc  = "author_asc"
	SortRatingDesc = "rating_desc"
	SortRatingAsc  = "rating_asc"
	SortDateDesc   = "date_desc"
	SortDateAsc    = "date_asc"
)

// BookQuery holds the optional filter and sort parameters for the book
// list view. Zero values mean "no filter"/"default sort".
type BookQuery struct {
	Search string
	Genre  string
	Rating int
	Year   int
	Sort   string
}

// ParseBookQuery reads filter and sort parameters from the request
// query string. Malformed numeric values degrade to "no filter".
func ParseBookQuery(c *gin.Context) BookQuery {
	q := BookQuery{
		Search: strings.TrimSpace(c.Query("search")),
		Genre:  c.Query("genre"),
		Sort:   c.Query("sort"),
	}
	if rating, err := strconv.Atoi(c.Query("rating")); err == nil {
		q.Rating = rating
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		q.Year = year
	}
	return q
}

// FilterBooks returns the subset of books matching every supplied
// filter. Search matches title OR author case-insensitively; genre,
// rating and year are exact matches; all supplied filters combine with
// AND. Books without a finished date never match a year filter.
func FilterBooks(books []models.Book, q BookQuery) []models.Book {
	search := strings.ToLower(q.Search)
	filtered := make([]models.Book, 0, len(books))
	for _, b := range books {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Title), search) &&
			!strings.Contains(strings.ToLower(b.Author), search) {
			continue
		}
		if q.Genre != "" && b.Genre != q.Genre {
			continue
		}
		if q.Rating != 0 && (b.Rating == nil || *b.Rating != q.Rating) {
			continue
		}
		if q.Year != 0 && (b.DateFinished == nil || b.DateFinished.Year() != q.Year) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// SortBooks returns a copy of books ordered by the given sort key.
// Unknown or empty keys fall back to title ascending. Ties keep title
// ascending order, then insertion (ID) order. Unrated and undated
// books sort after the rest for both directions of their keys.
func SortBooks(books []models.Book, key string) []models.Book {
	sorted := make([]models.Book, len(books))
	copy(sorted, books)

	// Establish the stable secondary ordering first
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := strings.ToLower(sorted[i].Title), strings.ToLower(sorted[j].Title)
		if ti != tj {
			return ti < tj
		}
		return sorted[i].ID < sorted[j].ID
	})

	switch key {
	case SortAuthorAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Author) < strings.ToLower(sorted[j].Author)
		})
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, iRated := bookRating(sorted[i])
			rj, jRated := bookRating(sorted[j])
			if iRated && jRated {
				return ri > rj
			}
			return iRated && !jRated
		})
	case SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, iRated := bookRating(sorted[i])
			rj, jRated := bookRating(sorted[j])
			if iRated && jRated {
				return ri < rj
			}
			return iRated && !jRated
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			di, iDated := bookDate(sorted[i])
			dj, jDated := bookDate(sorted[j])
			if iDated && jDated {
				return di.After(dj)
			}
			return iDated && !jDated
		})
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			di, iDated := bookDate(sorted[i])
			dj, jDated := bookDate(sorted[j])
			if iDated && jDated {
				return di.Before(dj)
			}
			return iDated && !jDated
		})
	case SortTitleAsc, "":
		// Secondary ordering is already title ascending
	default:
		// Unrecognized keys fall back to the default ordering
	}

	return sorted
}

// AvailableYears returns the distinct finished years across books,
// newest first, for the year filter dropdown.
func AvailableYears(books []models.Book) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, b := range books {
		if b.DateFinished == nil {
			continue
		}
		year := b.DateFinished.Year()
		if !seen[year] {
			seen[year] = true
			years = append(years, year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func bookRating(b models.Book) (int, bool) {
	if b.Rating == nil {
		return 0, false
	}
	return *b.Rating, true
}

func bookDate(b models.Book) (time.Time, bool) {
	if b.DateFinished == nil {
		return time.Time{}, false
	}
	return *b.DateFinished, true
}
