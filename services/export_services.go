package services

import (
	"fmt"

	"github.com/ajitashwath/dare-exchange/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var exportHeaders = []string{
	"ID", "Slug", "Title", "Submitter", "Email", "College", "Category",
	"Difficulty", "Status", "Views", "Likes", "Completions", "Created At",
}

// BuildDareWorkbook renders every dare into an xlsx workbook for the
// moderation export
func BuildDareWorkbook(db *gorm.DB) (*excelize.File, error) {
	var dares []models.Dare
	err := db.Preload("Category").Preload("Difficulty").Order("created_at DESC").Find(&dares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load dares for export: %w", err)
	}

	xlsx := excelize.NewFile()
	sheet := "Dares"
	index, err := xlsx.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	xlsx.SetActiveSheet(index)
	xlsx.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for row, dare := range dares {
		categoryName := ""
		if dare.Category != nil {
			categoryName = dare.Category.Name
		}
		difficultyName := ""
		if dare.Difficulty != nil {
			difficultyName = dare.Difficulty.Name
		}

		values := []interface{}{
			dare.ID, dare.Slug, dare.Title, dare.Name, dare.Email, dare.College,
			categoryName, difficultyName, dare.Status, dare.ViewsCount,
			dare.LikesCount, dare.CompletionsCount, dare.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			xlsx.SetCellValue(sheet, cell, value)
		}
	}

	return xlsx, nil
}
