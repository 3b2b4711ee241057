package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestStarDisplayThreeStars(t *testing.T) {
	book := Book{Title: "Test Book", Rating: intPtr(3)}
	assert.Equal(t, "⭐⭐⭐☆☆", book.StarDisplay())
}

func TestStarDisplayNoRating(t *testing.T) {
	book := Book{Title: "Test Book"}
	assert.Equal(t, "", book.StarDisplay())
}

func TestStarDisplayOneStar(t *testing.T) {
	book := Book{Rating: intPtr(1)}
	assert.Equal(t, "⭐☆☆☆☆", book.StarDisplay())
}

func TestStarDisplayFiveStars(t *testing.T) {
	book := Book{Rating: intPtr(5)}
	assert.Equal(t, "⭐⭐⭐⭐⭐", book.StarDisplay())
}

func TestGenreLabel(t *testing.T) {
	book := Book{Genre: "scifi"}
	assert.Equal(t, "Science Fiction", book.GenreLabel())
}

func TestValidGenre(t *testing.T) {
	assert.True(t, ValidGenre("fiction"))
	assert.True(t, ValidGenre("selfhelp"))
	assert.False(t, ValidGenre("Fiction"))
	assert.False(t, ValidGenre("poetry"))
	assert.False(t, ValidGenre(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusFinished))
	assert.True(t, ValidStatus(StatusWantToRead))
	assert.True(t, ValidStatus(StatusCurrentlyReading))
	assert.False(t, ValidStatus("read"))
}
