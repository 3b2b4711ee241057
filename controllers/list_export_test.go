package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ria-dsouza/shelflife/models"
)

func TestExportRows(t *testing.T) {
	books := []models.Book{
		{
			Title:        "Dune",
			Author:       "Frank Herbert",
			Genre:        "scifi",
			Status:       models.StatusFinished,
			Rating:       intPtr(5),
			Review:       "Dense but rewarding.",
			DateFinished: datePtr(2024, 5, 22),
		},
		{
			Title:  "The Midnight Library",
			Author: "Matt Haig",
			Genre:  "fiction",
			Status: models.StatusCurrentlyReading,
		},
	}

	rows := exportRows(books)

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"Dune", "Frank Herbert", "Science Fiction", "Finished", "5", "2024-05-22", "Dense but rewarding."}, rows[0])
	// Unrated and undated cells come out blank rather than zero values
	assert.Equal(t, []string{"The Midnight Library", "Matt Haig", "Fiction", "Currently Reading", "", "", ""}, rows[1])

	for _, row := range rows {
		assert.Len(t, row, len(exportHeader))
	}
}

func TestExportRowsEmptyList(t *testing.T) {
	rows := exportRows(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
