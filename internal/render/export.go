package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"time"
)

const (
	MinExportSize     = 512
	MaxExportSize     = 4096
	DefaultExportSize = 1536

	// Device scale is capped like a browser's devicePixelRatio would be.
	maxDeviceScale = 3
)

// ClampExportSize limits size to [MinExportSize, MaxExportSize].
func ClampExportSize(size int) int {
	return max(MinExportSize, min(MaxExportSize, size))
}

// ExportDimension is the pixel size of a square export at the given device
// scale. Scales outside [1,3] are clamped.
func ExportDimension(size int, deviceScale float64) int {
	if math.IsNaN(deviceScale) || deviceScale < 1 {
		deviceScale = 1
	}
	deviceScale = math.Min(maxDeviceScale, deviceScale)
	return int(math.Floor(float64(ClampExportSize(size)) * deviceScale))
}

// DefaultFilename names an export after the current time.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("flavor-gradient-%d.png", now.UnixMilli())
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to filename.
func SavePNG(filename string, img image.Image) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := EncodePNG(outFile, img); err != nil {
		outFile.Close()
		return err
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", filename, err)
	}
	return nil
}
