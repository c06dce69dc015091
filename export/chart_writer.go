package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/GianniLaBamba/aoristic-kkf/config"
	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// WriteChartHTML renders the summary grid as an interactive heatmap page and
// writes it to the first free Aoristic_summary_<N>.html name in dir. Same
// palette and day ordering as the JPEG renderer; this is a direct library
// call, not one of the output modes.
func WriteChartHTML(grid *models.SummaryGrid, dir string) (string, error) {
	path, err := NextFreePath(dir, config.HTML_EXTENSION)
	if err != nil {
		return "", err
	}

	rows := grid.LongForm()
	min, max := rows[0].Value, rows[0].Value
	data := make([]opts.HeatMapData, 0, len(rows))
	for _, r := range rows {
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
		// ECharts category y index 0 sits at the bottom, so Sunday maps to 0
		// and Monday to 6 to keep Monday on top.
		dayRow := (r.Rank - 1) / config.HOURS_PER_DAY
		data = append(data, opts.HeatMapData{Value: [3]interface{}{r.Hour, config.DAYS_PER_WEEK - 1 - dayRow, r.Value}})
	}
	if max == min {
		// Keeps the visual map well formed for a constant grid.
		max = min + 1
	}

	hours := make([]string, config.HOURS_PER_DAY)
	for h := range hours {
		hours[h] = fmt.Sprintf("%d", h)
	}
	days := make([]string, config.DAYS_PER_WEEK)
	for d, label := range config.HEATMAP_DAY_LABELS {
		days[config.DAYS_PER_WEEK-1-d] = label
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Aoristic Summary",
			Width:     fmt.Sprintf("%dpx", config.HEATMAP_WIDTH_PX),
			Height:    fmt.Sprintf("%dpx", config.HEATMAP_HEIGHT_PX),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Name: "Hour",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: days,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			InRange: &opts.VisualMapInRange{
				Color: []string{config.COLOR_LOW, config.COLOR_MID, config.COLOR_HIGH},
			},
		}),
	)
	hm.SetXAxis(hours).AddSeries("Aoristic", data,
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", tmp, err)
	}
	if err := hm.Render(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move chart into place: %w", err)
	}
	return path, nil
}
