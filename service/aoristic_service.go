package services

import (
	"fmt"
	"log"

	"github.com/GianniLaBamba/aoristic-kkf/config"
	"github.com/GianniLaBamba/aoristic-kkf/export"
	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// AoristicService ties the grid builder to the optional export branches.
type AoristicService struct {
	summaryService *SummaryService
}

// NewAoristicService constructs an AoristicService with its grid builder injected.
func NewAoristicService(summaryService *SummaryService) *AoristicService {
	return &AoristicService{summaryService: summaryService}
}

// Summarize builds the summary grid and, depending on mode, writes one
// artifact to dir (the working directory when dir is empty):
//
//	""                   grid only, nothing written
//	"xlsx"/"spreadsheet" spreadsheet with the labeled grid
//	"jpg"/"image"        heatmap image
//
// Any other mode is rejected. The returned path is empty in grid-only mode.
func (s *AoristicService) Summarize(table *models.WeightTable, mode string, dir string) (*models.SummaryGrid, string, error) {
	grid, err := s.summaryService.BuildSummaryGrid(table)
	if err != nil {
		return nil, "", err
	}

	switch mode {
	case config.MODE_GRID_ONLY:
		return grid, "", nil
	case config.MODE_XLSX, config.MODE_SPREADSHEET:
		path, err := export.WriteXLSX(grid, dir)
		if err != nil {
			return nil, "", err
		}
		log.Printf("aoristic summary spreadsheet written: %s", path)
		return grid, path, nil
	case config.MODE_JPG, config.MODE_IMAGE:
		path, err := export.RenderHeatmap(grid, dir)
		if err != nil {
			return nil, "", err
		}
		log.Printf("aoristic summary heatmap written: %s", path)
		return grid, path, nil
	default:
		return nil, "", fmt.Errorf("unrecognized output mode %q (want \"\", %q, %q, %q or %q)",
			mode, config.MODE_XLSX, config.MODE_SPREADSHEET, config.MODE_JPG, config.MODE_IMAGE)
	}
}
