package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GianniLaBamba/aoristic-kkf/config"
)

func TestHourRangeLabels(t *testing.T) {
	labels := HourRangeLabels()

	if len(labels) != 24 {
		t.Fatalf("Expected 24 labels, got %d", len(labels))
	}
	assert.Equal(t, "0000-0059", labels[0])
	assert.Equal(t, "0100-0159", labels[1])
	assert.Equal(t, "1200-1259", labels[12])
	assert.Equal(t, "2300-2359", labels[23])
}

func TestLongForm(t *testing.T) {
	// Arrange: mark one cell per day so ranks are easy to check.
	cells := make([][]float64, config.HOURS_PER_DAY)
	for h := range cells {
		cells[h] = make([]float64, config.DAYS_PER_WEEK)
	}
	cells[5][0] = 0.5  // Monday, hour 5
	cells[23][6] = 2.0 // Sunday, hour 23
	grid := &SummaryGrid{
		Ranges: HourRangeLabels(),
		Days:   []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"},
		Cells:  cells,
	}

	// Act
	rows := grid.LongForm()

	// Assert: column-major over display days, Monday's 24 hours first.
	if len(rows) != config.SLOTS_PER_WEEK {
		t.Fatalf("Expected 168 long-form rows, got %d", len(rows))
	}
	assert.Equal(t, "Mon", rows[0].Day)
	assert.Equal(t, 0, rows[0].Hour)
	assert.Equal(t, 1, rows[0].Rank)

	assert.Equal(t, 0.5, rows[5].Value)
	assert.Equal(t, "Mon", rows[5].Day)
	assert.Equal(t, 5, rows[5].Hour)
	assert.Equal(t, 6, rows[5].Rank)

	last := rows[len(rows)-1]
	assert.Equal(t, 2.0, last.Value)
	assert.Equal(t, "Sun", last.Day)
	assert.Equal(t, 23, last.Hour)
	assert.Equal(t, 168, last.Rank)
}

func TestTotal(t *testing.T) {
	cells := make([][]float64, config.HOURS_PER_DAY)
	for h := range cells {
		cells[h] = make([]float64, config.DAYS_PER_WEEK)
	}
	cells[0][0] = 1.25
	cells[10][3] = 0.75
	grid := &SummaryGrid{Cells: cells}

	assert.Equal(t, 2.0, grid.Total())
}

func TestWeightTableValidate(t *testing.T) {
	cols := make([]string, 0, config.SLOTS_PER_WEEK)
	for k := 1; k <= config.SLOTS_PER_WEEK; k++ {
		cols = append(cols, HourColumn(k))
	}

	t.Run("complete header passes", func(t *testing.T) {
		table := &WeightTable{Columns: cols}
		assert.NoError(t, table.Validate())
	})

	t.Run("missing column fails", func(t *testing.T) {
		table := &WeightTable{Columns: cols[1:]}
		err := table.Validate()
		if err == nil {
			t.Fatal("Expected an error, got none")
		}
		assert.Contains(t, err.Error(), "hour1")
	})
}
