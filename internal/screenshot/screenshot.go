// Package screenshot writes captured frames to disk as PNG.
package screenshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// Dir is where screenshots go, relative to the working directory.
const Dir = "screenshots"

// Filename returns the file name for a screenshot taken at t.
func Filename(t time.Time) string {
	return "screenshot_" + t.Format("20060102_150405") + ".png"
}

// Save writes img to dir as a PNG named after now and returns the path written.
func Save(dir string, img image.Image, now time.Time) (string, error) {
	if img == nil {
		return "", fmt.Errorf("screenshot: no image")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("screenshot %s: %w", path, err)
	}
	return path, nil
}
