package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the engine prefs file, relative to the process working directory.
const PrefsPath = "config/prefs.json"

// Prefs holds engine-only preferences toggled from the console (debug overlays, grid,
// look sensitivity). Persisted across runs.
type Prefs struct {
	ShowFPS          bool    `json:"show_fps"`
	ShowMemAlloc     bool    `json:"show_memalloc"`
	GridVisible      bool    `json:"grid_visible"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`
}

// DefaultPrefs returns default prefs (debug overlays off, grid on).
func DefaultPrefs() Prefs {
	return Prefs{
		GridVisible:      true,
		MouseSensitivity: 0.1,
	}
}

// LoadPrefs reads prefs from path. If the file is missing or invalid it returns
// DefaultPrefs() and does not create a file.
func LoadPrefs(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs()
	}
	p := DefaultPrefs()
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs()
	}
	if p.MouseSensitivity <= 0 {
		p.MouseSensitivity = DefaultPrefs().MouseSensitivity
	}
	return p
}

// SavePrefs writes prefs to path, creating the directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
