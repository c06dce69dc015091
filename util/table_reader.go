package util

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// ReadWeightTableFromJSON loads a WeightTable from a JSON array of objects
// keyed "hour1".."hour168". Null and non-numeric values are dropped from
// their rows, which makes them count as zero downstream; the column set is
// the union of keys seen across all rows.
func ReadWeightTableFromJSON(filePath string) (*models.WeightTable, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weight table: %w", err)
	}

	seen := make(map[string]bool)
	table := &models.WeightTable{}
	for _, rawRow := range raw {
		row := make(map[string]float64, len(rawRow))
		for key, value := range rawRow {
			seen[key] = true
			if v, ok := value.(float64); ok {
				row[key] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	for key := range seen {
		table.Columns = append(table.Columns, key)
	}
	sort.Strings(table.Columns)
	return table, nil
}

// ReadWeightTableFromCSV loads a WeightTable from a CSV file whose first
// record is the header. Blank or unparseable cells are skipped, not errors.
func ReadWeightTableFromCSV(filePath string) (*models.WeightTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", filePath, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %q: %w", filePath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no header record", filePath)
	}

	table := &models.WeightTable{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(map[string]float64, len(record))
		for i, cell := range record {
			if i >= len(table.Columns) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				row[table.Columns[i]] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
