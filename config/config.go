package config

import "os"

// Aoristic table dimensions
const HOURS_PER_DAY = 24
const DAYS_PER_WEEK = 7
const SLOTS_PER_WEEK = HOURS_PER_DAY * DAYS_PER_WEEK

// Input column naming: "hour1".."hour168", slot 1 = hour 0 of the first raw day.
const HOUR_COLUMN_PREFIX = "hour"

// Day abbreviations in raw slot order: slots 1-24 belong to Sunday ("So").
// Heatmap labels are the English equivalents in display order (Monday first).
var RAW_DAY_LABELS = [DAYS_PER_WEEK]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}
var HEATMAP_DAY_LABELS = [DAYS_PER_WEEK]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Header label of the hour-range column in the exported grid.
const RANGE_COLUMN_LABEL = "Range"

// Output file naming
const OUTPUT_FILE_PREFIX = "Aoristic_summary_"
const XLSX_SHEET_NAME = "Aoristic"
const XLSX_EXTENSION = "xlsx"
const JPG_EXTENSION = "jpg"
const HTML_EXTENSION = "html"
const MAX_FILENAME_ATTEMPTS = 10000

// Heatmap canvas
const HEATMAP_WIDTH_PX = 1200
const HEATMAP_HEIGHT_PX = 400
const HEATMAP_JPEG_QUALITY = 95

// Output modes accepted by AoristicService.Summarize
const MODE_GRID_ONLY = ""
const MODE_XLSX = "xlsx"
const MODE_SPREADSHEET = "spreadsheet"
const MODE_JPG = "jpg"
const MODE_IMAGE = "image"

// Diverging heatmap palette (low / mid / high)
const COLOR_LOW = "#5E81AC"
const COLOR_MID = "#E5E5E5"
const COLOR_HIGH = "#BF616A"

// OutputDir returns the directory exported files land in when the caller
// passes an empty target directory.
func OutputDir() string {
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}
