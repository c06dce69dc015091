package export

import (
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeatmap_CanvasSize(t *testing.T) {
	// Arrange
	dir := t.TempDir()

	// Act
	path, err := RenderHeatmap(cannedGrid(), dir)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	assert.Equal(t, filepath.Join(dir, "Aoristic_summary_1.jpg"), path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen image: %v", err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode JPEG: %v", err)
	}
	bounds := img.Bounds()
	assert.Equal(t, 1200, bounds.Dx())
	assert.Equal(t, 400, bounds.Dy())
}

func TestRenderHeatmap_ConstantGridDoesNotFail(t *testing.T) {
	// All cells equal means min == max; the color scale must not divide by zero.
	dir := t.TempDir()

	path, err := RenderHeatmap(zeroGrid(), dir)

	if err != nil {
		t.Fatalf("Expected no error for an all-zero grid, got %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected image at %s: %v", path, err)
	}
}

func TestRenderHeatmap_IncrementsOnCollision(t *testing.T) {
	dir := t.TempDir()

	first, err := RenderHeatmap(cannedGrid(), dir)
	if err != nil {
		t.Fatalf("Expected no error on first render, got %v", err)
	}
	second, err := RenderHeatmap(cannedGrid(), dir)
	if err != nil {
		t.Fatalf("Expected no error on second render, got %v", err)
	}

	assert.Equal(t, filepath.Join(dir, "Aoristic_summary_1.jpg"), first)
	assert.Equal(t, filepath.Join(dir, "Aoristic_summary_2.jpg"), second)
}

func TestScaleColor(t *testing.T) {
	low := hexRGB("#5E81AC")
	mid := hexRGB("#E5E5E5")
	high := hexRGB("#BF616A")

	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected color.Color
	}{
		{"min maps to low", 0, 0, 10, low},
		{"midpoint maps to mid", 5, 0, 10, mid},
		{"max maps to high", 10, 0, 10, high},
		{"constant range maps to mid", 3, 3, 3, mid},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, scaleColor(test.value, test.min, test.max))
		})
	}
}
