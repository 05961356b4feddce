// Package textures finds and decodes the image files offered in texture mode.
// Uploading to the GPU is left to the renderer.
package textures

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Dir is the default texture directory.
const Dir = "assets/textures"

// MaxSize is the largest edge, in pixels, a texture is uploaded at.
const MaxSize = 1024

// List returns the PNG and JPEG files in dir, sorted by name. A missing dir yields nil.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list textures: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// Load decodes path and shrinks it so neither edge exceeds maxEdge, keeping the aspect ratio.
func Load(path string, maxEdge int) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return Fit(img, maxEdge), nil
}

// Fit returns img unchanged when it already fits in maxEdge, else a resized copy.
func Fit(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return img
	}
	if w >= h {
		h = max(h*maxEdge/w, 1)
		w = maxEdge
	} else {
		w = max(w*maxEdge/h, 1)
		h = maxEdge
	}
	return transform.Resize(img, w, h, transform.Linear)
}
