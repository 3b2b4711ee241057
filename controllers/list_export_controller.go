package controllers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/ria-dsouza/shelflife/models"
	"github.com/ria-dsouza/shelflife/utils"
)

var exportHeader = []string{"Title", "Author", "Genre", "Status", "Rating", "Date Finished", "Review"}

// exportRows flattens list books into export table rows
func exportRows(books []models.Book) [][]string {
	rows := make([][]string, len(books))
	for i, b := range books {
		rating := ""
		if b.Rating != nil {
			rating = strconv.Itoa(*b.Rating)
		}
		date := ""
		if b.DateFinished != nil {
			date = b.DateFinished.Format("2006-01-02")
		}
		rows[i] = []string{
			b.Title,
			b.Author,
			b.GenreLabel(),
			models.StatusLabels[b.Status],
			rating,
			date,
			b.Review,
		}
	}
	return rows
}

// fetchExportList loads the owned list with books for an export handler
func fetchExportList(c *gin.Context) (*models.BookList, bool) {
	user, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid list ID", nil)
		return nil, false
	}

	list, err := utils.OwnedList(user.ID, uint(id), true)
	if err != nil {
		utils.LogError("List %d not found for user %d: %v", id, user.ID, err)
		utils.NotFound(c, "List not found")
		return nil, false
	}
	return list, true
}

// ExportListCSV downloads a list as CSV
func ExportListCSV(c *gin.Context) {
	utils.LogInfo("ExportListCSV called")

	list, ok := fetchExportList(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=list_%d.csv", list.ID))

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeader); err != nil {
		utils.LogError("Failed to write CSV header: %v", err)
		return
	}
	for _, row := range exportRows(list.Books) {
		if err := writer.Write(row); err != nil {
			utils.LogError("Failed to write CSV row: %v", err)
			return
		}
	}
	writer.Flush()
	utils.LogInfo("CSV export completed for list %d (%d books)", list.ID, len(list.Books))
}

// ExportListPDF downloads a list as PDF
func ExportListPDF(c *gin.Context) {
	utils.LogInfo("ExportListPDF called")

	list, ok := fetchExportList(c)
	if !ok {
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "ShelfLife")
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(100, 8, utils.Title(list.Name))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(100, 8, fmt.Sprintf("%d books - created %s", len(list.Books), list.CreatedAt.Format("2006-01-02")))
	pdf.Ln(12)

	// Table header
	widths := []float64{70, 50, 35, 35, 20, 30, 0}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range exportHeader {
		if i == len(exportHeader)-1 {
			// Review column is dropped from the PDF layout
			break
		}
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, b := range list.Books {
		rating := ""
		if b.Rating != nil {
			rating = strconv.Itoa(*b.Rating)
		}
		date := ""
		if b.DateFinished != nil {
			date = b.DateFinished.Format("2006-01-02")
		}
		pdf.CellFormat(widths[0], 8, b.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, b.Author, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, b.GenreLabel(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, models.StatusLabels[b.Status], "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, rating, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 8, date, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=list_%d.pdf", list.ID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF: %v", err)
		return
	}
	utils.LogInfo("PDF export completed for list %d (%d books)", list.ID, len(list.Books))
}

// ExportListXLSX downloads a list as an Excel workbook
func ExportListXLSX(c *gin.Context) {
	utils.LogInfo("ExportListXLSX called")

	list, ok := fetchExportList(c)
	if !ok {
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Books")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("ShelfLife - " + utils.Title(list.Name))
	sheet.AddRow() // spacing

	headerRow := sheet.AddRow()
	for _, h := range exportHeader {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, row := range exportRows(list.Books) {
		sheetRow := sheet.AddRow()
		for _, value := range row {
			sheetRow.AddCell().SetString(value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=list_%d.xlsx", list.ID))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Excel export completed for list %d (%d books)", list.ID, len(list.Books))
}
