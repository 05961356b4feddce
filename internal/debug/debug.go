package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var hudColor = rl.NewColor(230, 230, 230, 220)

// Debug holds the overlays drawn over the scene: FPS and memory at the top-right,
// the status block at the top-left.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowHUD      bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	font         *rl.Font
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont draws the overlays with f instead of raylib's built-in font.
func (d *Debug) SetFont(f rl.Font) { d.font = &f }

func (d *Debug) text(s string, x, y int32, c rl.Color) {
	if d.font == nil {
		rl.DrawText(s, x, y, fontSize, c)
		return
	}
	rl.DrawTextEx(*d.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
}

func (d *Debug) measure(s string) int32 {
	if d.font == nil {
		return rl.MeasureText(s, fontSize)
	}
	return int32(rl.MeasureTextEx(*d.font, s, fontSize, 1).X)
}

// Draw renders the enabled overlays. hud is the status block, one entry per line.
func (d *Debug) Draw(hud []string) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	if d.ShowHUD {
		for i, line := range hud {
			d.text(line, padding, int32(padding+i*lineHeight), hudColor)
		}
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y)
	}
}

func (d *Debug) drawRight(text string, y int32) {
	if text == "" {
		return
	}
	d.text(text, int32(rl.GetScreenWidth())-d.measure(text)-padding, y, rl.Green)
}
