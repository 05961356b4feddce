package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the display preferences file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds display-only preferences (overlays, grid, shading, audio, telemetry). Persisted across runs.
// Simulation settings live in config/bounce.yaml and are handled by simconfig.
type EnginePrefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	ShowHUD      bool   `json:"show_hud"`
	GridMode     string `json:"grid_mode"`       // none, basic, detailed
	Shading      string `json:"shading"`         // phong, gouraud
	RenderMode   string `json:"render_mode"`     // wireframe, shading, texture
	Trajectory   string `json:"trajectory_mode"` // none, line, strobe
	Metallic     bool   `json:"metallic"`
	LightFollow  bool   `json:"light_follow"`
	Audio        bool   `json:"audio"`
	Telemetry    string `json:"telemetry_addr,omitempty"` // empty disables the listener
	Font         string `json:"hud_font,omitempty"`       // family under assets/fonts; empty picks any
}

// Default returns default preferences (overlays off, HUD on, Phong shading, no grid).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		ShowHUD:      true,
		GridMode:     "none",
		Shading:      "phong",
		RenderMode:   "shading",
		Trajectory:   "none",
		Metallic:     false,
		LightFollow:  false,
		Audio:        false,
	}
}

// Load reads preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom is Load with an explicit path. Keys missing from the file keep their defaults.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo is Save with an explicit path.
func SaveTo(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
