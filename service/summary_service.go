package services

import (
	"math"

	"github.com/GianniLaBamba/aoristic-kkf/config"
	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// dayPermutation maps display column position to raw day (1-based slot
// group). Raw day 1 (Sunday, slots 1-24) moves to the last column and days
// 2-7 shift left by one, so the displayed week runs Mo..So and the weekend
// stays contiguous.
var dayPermutation = [config.DAYS_PER_WEEK]int{2, 3, 4, 5, 6, 7, 1}

// SummaryService turns a WeightTable into a SummaryGrid.
type SummaryService struct{}

func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// slotCell maps week slot k (1-168) onto the raw 24x7 matrix: slots 1-24
// fill raw column 1 top to bottom, slots 25-48 column 2, and so on.
func slotCell(k int) (hour, rawDay int) {
	return (k - 1) % config.HOURS_PER_DAY, (k-1)/config.HOURS_PER_DAY + 1
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// BuildSummaryGrid sums each of the 168 slot columns across all event rows,
// reshapes the sums into the 24x7 grid and applies the day reordering. The
// input is never mutated; an empty table yields an all-zero grid.
func (s *SummaryService) BuildSummaryGrid(table *models.WeightTable) (*models.SummaryGrid, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	raw := make([][]float64, config.HOURS_PER_DAY)
	for h := range raw {
		raw[h] = make([]float64, config.DAYS_PER_WEEK)
	}
	for k := 1; k <= config.SLOTS_PER_WEEK; k++ {
		hour, rawDay := slotCell(k)
		raw[hour][rawDay-1] = round3(table.ColumnSum(k))
	}

	days := make([]string, config.DAYS_PER_WEEK)
	cells := make([][]float64, config.HOURS_PER_DAY)
	for h := range cells {
		cells[h] = make([]float64, config.DAYS_PER_WEEK)
	}
	for pos, rawDay := range dayPermutation {
		days[pos] = config.RAW_DAY_LABELS[rawDay-1]
		for h := 0; h < config.HOURS_PER_DAY; h++ {
			cells[h][pos] = raw[h][rawDay-1]
		}
	}

	return &models.SummaryGrid{
		Ranges: models.HourRangeLabels(),
		Days:   days,
		Cells:  cells,
	}, nil
}
