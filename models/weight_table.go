package models

import (
	"fmt"

	"github.com/GianniLaBamba/aoristic-kkf/config"
)

// WeightTable is the per-event aoristic weight table produced upstream.
// One row per crime event; the weight for week slot k lives in column
// "hour<k>". A cell that was null or non-numeric in the source is simply
// absent from its row map and counts as zero when summing.
type WeightTable struct {
	Columns []string
	Rows    []map[string]float64
}

// HourColumn returns the column name for week slot k (1-based).
func HourColumn(slot int) string {
	return fmt.Sprintf("%s%d", config.HOUR_COLUMN_PREFIX, slot)
}

// Validate checks that every hour1..hour168 column is present in the header.
// A structurally missing column is a caller contract violation, unlike a
// present-but-empty cell, which summation treats as zero.
func (t *WeightTable) Validate() error {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}
	for k := 1; k <= config.SLOTS_PER_WEEK; k++ {
		if !present[HourColumn(k)] {
			return fmt.Errorf("weight table is missing column %q (expected %s1..%s%d)",
				HourColumn(k), config.HOUR_COLUMN_PREFIX, config.HOUR_COLUMN_PREFIX, config.SLOTS_PER_WEEK)
		}
	}
	return nil
}

// ColumnSum sums the weights of week slot k across all event rows.
func (t *WeightTable) ColumnSum(slot int) float64 {
	col := HourColumn(slot)
	var sum float64
	for _, row := range t.Rows {
		sum += row[col]
	}
	return sum
}
