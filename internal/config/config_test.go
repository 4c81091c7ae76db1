package config

import (
	"os"
	"path/filepath"
	"testing"

	"walkthrough/internal/logger"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want Default()", cfg)
	}
}

func TestLoad_OverridesOnlyNamedFields(t *testing.T) {
	path := writeFile(t, "walkthrough.yaml", `
controller:
  step: measured
  sprint_speed: 0.05
world:
  model_position: [10, 0, -10]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Controller.Step != "measured" || cfg.Controller.SprintSpeed != 0.05 {
		t.Errorf("controller = %+v", cfg.Controller)
	}
	if cfg.Controller.WalkSpeed != 0.01 || cfg.Controller.Floor != -40 {
		t.Errorf("unnamed controller fields lost their defaults: %+v", cfg.Controller)
	}
	if cfg.World.ModelPosition != [3]float32{10, 0, -10} {
		t.Errorf("model position = %v", cfg.World.ModelPosition)
	}
	if cfg.Camera != Default().Camera {
		t.Errorf("camera = %+v", cfg.Camera)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "controller: [unterminated")
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want Default()", cfg)
	}
}

func TestPrefs_RoundTripAndFallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.json")

	if got := LoadPrefs(path); got != DefaultPrefs() {
		t.Fatalf("missing file = %+v", got)
	}

	want := Prefs{ShowFPS: true, GridVisible: false, MouseSensitivity: 0.25}
	if err := SavePrefs(path, want); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	if got := LoadPrefs(path); got != want {
		t.Fatalf("LoadPrefs = %+v, want %+v", got, want)
	}

	bad := writeFile(t, "bad.json", "{")
	if got := LoadPrefs(bad); got != DefaultPrefs() {
		t.Fatalf("invalid file = %+v", got)
	}

	old := writeFile(t, "old.json", `{"show_fps": true}`)
	if got := LoadPrefs(old); !got.ShowFPS || !got.GridVisible || got.MouseSensitivity != 0.1 {
		t.Fatalf("partial file = %+v", got)
	}
}

func TestLoad_ShippedFileMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", ConfigPath))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("shipped config drifted from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefault_WindowAndLog(t *testing.T) {
	cfg := Default()
	if cfg.Window.ClearColor != [4]uint8{17, 17, 17, 255} {
		t.Errorf("clear colour = %v", cfg.Window.ClearColor)
	}
	if cfg.Log.Path != logger.LogFilePath {
		t.Errorf("log path = %q", cfg.Log.Path)
	}
}
