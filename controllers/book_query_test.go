package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ria-dsouza/shelflife/models"
)

func intPtr(v int) *int { return &v }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func testShelf() []models.Book {
	books := []models.Book{
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "fantasy", Status: models.StatusFinished, Rating: intPtr(5), DateFinished: datePtr(2024, 3, 10)},
		{Title: "Atomic Habits", Author: "James Clear", Genre: "selfhelp", Status: models.StatusFinished, Rating: intPtr(4), DateFinished: datePtr(2023, 2, 27)},
		{Title: "Dune", Author: "Frank Herbert", Genre: "scifi", Status: models.StatusFinished, Rating: intPtr(5), DateFinished: datePtr(2024, 5, 22)},
		{Title: "Gone Girl", Author: "Gillian Flynn", Genre: "thriller", Status: models.StatusFinished, Rating: intPtr(3), DateFinished: datePtr(2023, 6, 2)},
		{Title: "The Midnight Library", Author: "Matt Haig", Genre: "fiction", Status: models.StatusCurrentlyReading},
	}
	for i := range books {
		books[i].ID = uint(i + 1)
	}
	return books
}

func titles(books []models.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/user/books?"+rawQuery, nil)
	return c
}

func TestParseBookQuery(t *testing.T) {
	c := queryContext(t, "search=++dune++&genre=scifi&rating=5&year=2024&sort=rating_desc")
	q := ParseBookQuery(c)

	assert.Equal(t, "dune", q.Search)
	assert.Equal(t, "scifi", q.Genre)
	assert.Equal(t, 5, q.Rating)
	assert.Equal(t, 2024, q.Year)
	assert.Equal(t, SortRatingDesc, q.Sort)
}

func TestParseBookQueryMalformedNumbersDegrade(t *testing.T) {
	c := queryContext(t, "rating=banana&year=20x4")
	q := ParseBookQuery(c)

	assert.Zero(t, q.Rating)
	assert.Zero(t, q.Year)
}

func TestFilterBooksNoFiltersReturnsAll(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{})
	assert.Len(t, filtered, len(books))
}

func TestFilterBooksSearchIsCaseInsensitive(t *testing.T) {
	books := testShelf()

	upper := FilterBooks(books, BookQuery{Search: "Hobbit"})
	lower := FilterBooks(books, BookQuery{Search: "hobbit"})

	assert.Equal(t, titles(upper), titles(lower))
	assert.Equal(t, []string{"The Hobbit"}, titles(upper))
}

func TestFilterBooksSearchMatchesAuthor(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{Search: "flynn"})
	assert.Equal(t, []string{"Gone Girl"}, titles(filtered))
}

func TestFilterBooksGenreIsExact(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{Genre: "scifi"})

	assert.Len(t, filtered, 1)
	for _, b := range filtered {
		assert.Equal(t, "scifi", b.Genre)
	}
}

func TestFilterBooksYearExcludesUndated(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{Year: 2024})

	assert.Len(t, filtered, 2)
	for _, b := range filtered {
		assert.NotNil(t, b.DateFinished)
		assert.Equal(t, 2024, b.DateFinished.Year())
	}
}

func TestFilterBooksRatingExcludesUnrated(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{Rating: 5})

	assert.Equal(t, []string{"The Hobbit", "Dune"}, titles(filtered))
}

func TestFilterBooksCombinesWithAnd(t *testing.T) {
	books := testShelf()
	filtered := FilterBooks(books, BookQuery{Search: "the", Genre: "fantasy", Rating: 5})

	assert.Equal(t, []string{"The Hobbit"}, titles(filtered))
}

func TestSortBooksDefaultIsTitleAscending(t *testing.T) {
	books := testShelf()
	want := []string{"Atomic Habits", "Dune", "Gone Girl", "The Hobbit", "The Midnight Library"}

	assert.Equal(t, want, titles(SortBooks(books, "")))
	assert.Equal(t, want, titles(SortBooks(books, SortTitleAsc)))
	assert.Equal(t, want, titles(SortBooks(books, "nonsense")))
}

func TestSortBooksDoesNotMutateInput(t *testing.T) {
	books := testShelf()
	before := titles(books)
	SortBooks(books, SortRatingDesc)
	assert.Equal(t, before, titles(books))
}

func TestSortBooksByAuthor(t *testing.T) {
	books := testShelf()
	sorted := SortBooks(books, SortAuthorAsc)
	assert.Equal(t, []string{"Dune", "Gone Girl", "The Hobbit", "Atomic Habits", "The Midnight Library"}, titles(sorted))
}

func TestSortBooksRatingDescNilsLast(t *testing.T) {
	books := testShelf()
	sorted := SortBooks(books, SortRatingDesc)

	// Tied five-star books keep title ascending order
	assert.Equal(t, []string{"Dune", "The Hobbit", "Atomic Habits", "Gone Girl", "The Midnight Library"}, titles(sorted))
	assert.Nil(t, sorted[len(sorted)-1].Rating)
}

func TestSortBooksRatingAscNilsStillLast(t *testing.T) {
	books := testShelf()
	sorted := SortBooks(books, SortRatingAsc)

	assert.Equal(t, []string{"Gone Girl", "Atomic Habits", "Dune", "The Hobbit", "The Midnight Library"}, titles(sorted))
	assert.Nil(t, sorted[len(sorted)-1].Rating)
}

func TestSortBooksByDate(t *testing.T) {
	books := testShelf()

	newest := SortBooks(books, SortDateDesc)
	assert.Equal(t, []string{"Dune", "The Hobbit", "Gone Girl", "Atomic Habits", "The Midnight Library"}, titles(newest))

	oldest := SortBooks(books, SortDateAsc)
	assert.Equal(t, []string{"Atomic Habits", "Gone Girl", "The Hobbit", "Dune", "The Midnight Library"}, titles(oldest))
}

func TestAvailableYears(t *testing.T) {
	books := testShelf()
	assert.Equal(t, []int{2024, 2023}, AvailableYears(books))
}

func TestAvailableYearsEmpty(t *testing.T) {
	years := AvailableYears([]models.Book{{Title: "Unread", Author: "A"}})
	assert.NotNil(t, years)
	assert.Empty(t, years)
}
