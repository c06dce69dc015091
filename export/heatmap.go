package export

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/GianniLaBamba/aoristic-kkf/config"
	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// Plot area margins inside the 1200x400 canvas. The right margin leaves room
// for the legend gradient bar.
const (
	marginLeft   = 64.0
	marginTop    = 14.0
	marginRight  = 104.0
	marginBottom = 40.0
)

// RenderHeatmap draws the summary grid as a 24x7 cell heatmap and writes it
// as a JPEG to the first free Aoristic_summary_<N>.jpg name in dir. Hours run
// along the x axis, days top to bottom Mon..Sun, each cell colored on a
// diverging scale anchored at the midpoint of the observed value range and
// overlaid with its value rounded to the nearest integer. The image is
// written under a temporary name and renamed into place.
func RenderHeatmap(grid *models.SummaryGrid, dir string) (string, error) {
	path, err := NextFreePath(dir, config.JPG_EXTENSION)
	if err != nil {
		return "", err
	}

	rows := grid.LongForm()
	min, max := rows[0].Value, rows[0].Value
	for _, r := range rows {
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
	}

	width, height := float64(config.HEATMAP_WIDTH_PX), float64(config.HEATMAP_HEIGHT_PX)
	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom
	cellW := plotW / float64(config.HOURS_PER_DAY)
	cellH := plotH / float64(config.DAYS_PER_WEEK)

	dc := gg.NewContext(config.HEATMAP_WIDTH_PX, config.HEATMAP_HEIGHT_PX)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, r := range rows {
		dayRow := (r.Rank - 1) / config.HOURS_PER_DAY // 0 = Mon at the top
		x := marginLeft + float64(r.Hour)*cellW
		y := marginTop + float64(dayRow)*cellH
		dc.SetColor(scaleColor(r.Value, min, max))
		dc.DrawRectangle(x, y, cellW, cellH)
		dc.Fill()

		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawStringAnchored(fmt.Sprintf("%d", int(math.Round(r.Value))),
			x+cellW/2, y+cellH/2, 0.5, 0.5)
	}

	// Axis text: one tick label per hour, day labels down the left side.
	dc.SetRGB(0.15, 0.15, 0.15)
	for h := 0; h < config.HOURS_PER_DAY; h++ {
		dc.DrawStringAnchored(fmt.Sprintf("%d", h),
			marginLeft+(float64(h)+0.5)*cellW, height-marginBottom+12, 0.5, 0.5)
	}
	dc.DrawStringAnchored("Hour", marginLeft+plotW/2, height-12, 0.5, 0.5)
	for d, label := range config.HEATMAP_DAY_LABELS {
		dc.DrawStringAnchored(label, marginLeft-8, marginTop+(float64(d)+0.5)*cellH, 1, 0.5)
	}

	drawLegend(dc, min, max, width-marginRight+24, marginTop, 18, plotH)

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", tmp, err)
	}
	if err := jpeg.Encode(out, dc.Image(), &jpeg.Options{Quality: config.HEATMAP_JPEG_QUALITY}); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to encode heatmap: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move heatmap into place: %w", err)
	}
	return path, nil
}

// drawLegend paints a vertical gradient bar, max at the top, with the range
// endpoints labeled beside it.
func drawLegend(dc *gg.Context, min, max, x, y, w, h float64) {
	steps := int(h)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps; i++ {
		frac := 1 - float64(i)/float64(steps)
		v := min + frac*(max-min)
		dc.SetColor(scaleColor(v, min, max))
		dc.DrawRectangle(x, y+float64(i), w, 1)
		dc.Fill()
	}
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", max), x+w+6, y+4, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", min), x+w+6, y+h-4, 0, 0.5)
}

// scaleColor maps a value onto the diverging palette: low values toward
// muted blue, high toward muted red, with neutral gray at the midpoint of
// the observed range. A constant grid (min == max) gets the midpoint color
// for every cell.
func scaleColor(v, min, max float64) color.Color {
	low := hexRGB(config.COLOR_LOW)
	mid := hexRGB(config.COLOR_MID)
	high := hexRGB(config.COLOR_HIGH)
	if max == min {
		return mid
	}
	midpoint := min + (max-min)/2
	if v <= midpoint {
		return lerpRGB(low, mid, (v-min)/(midpoint-min))
	}
	return lerpRGB(mid, high, (v-midpoint)/(max-midpoint))
}

func hexRGB(hex string) color.RGBA {
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
