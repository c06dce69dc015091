package models

import (
	"fmt"

	"github.com/GianniLaBamba/aoristic-kkf/config"
)

// SummaryGrid is the 24x7 aggregated output: one row per hour of day, one
// column per day of week with Sunday moved to the last position, each cell
// holding the summed weight rounded to 3 decimals. Built once per
// invocation and not modified afterwards.
type SummaryGrid struct {
	Ranges []string    // 24 hour-range labels, "0000-0059".."2300-2359"
	Days   []string    // 7 day labels in display order, Mo..So
	Cells  [][]float64 // [hour][day]
}

// LongFormRow is one (hour, day) observation of the grid, used by the
// heatmap renderers. Rank fixes the vertical ordering of day rows in the
// rendered image.
type LongFormRow struct {
	Value float64
	Hour  int    // 0-23
	Day   string // Mon..Sun
	Rank  int    // 1-168, column-major over display day order
}

// HourRangeLabels returns the 24 canonical row labels in ascending order.
func HourRangeLabels() []string {
	labels := make([]string, config.HOURS_PER_DAY)
	for h := 0; h < config.HOURS_PER_DAY; h++ {
		labels[h] = fmt.Sprintf("%02d00-%02d59", h, h)
	}
	return labels
}

// Total returns the sum of all 168 cells.
func (g *SummaryGrid) Total() float64 {
	var total float64
	for _, row := range g.Cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// LongForm flattens the grid column-major over the display day order:
// entry i (1-based) carries hour (i-1) mod 24 and the heatmap label of day
// ceil(i/24), so Monday's 24 hours come first and Sunday's last.
func (g *SummaryGrid) LongForm() []LongFormRow {
	rows := make([]LongFormRow, 0, config.SLOTS_PER_WEEK)
	for d := 0; d < config.DAYS_PER_WEEK; d++ {
		for h := 0; h < config.HOURS_PER_DAY; h++ {
			rows = append(rows, LongFormRow{
				Value: g.Cells[h][d],
				Hour:  h,
				Day:   config.HEATMAP_DAY_LABELS[d],
				Rank:  d*config.HOURS_PER_DAY + h + 1,
			})
		}
	}
	return rows
}
