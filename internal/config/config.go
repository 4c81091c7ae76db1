// Package config loads the walkthrough's YAML settings and the engine's JSON prefs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"walkthrough/internal/logger"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default settings file, relative to the working directory.
const ConfigPath = "config/walkthrough.yaml"

// Config is the whole settings file. Every field has a default; the file only needs to
// name what it changes.
type Config struct {
	Window     Window     `yaml:"window"`
	Assets     Assets     `yaml:"assets"`
	Camera     Camera     `yaml:"camera"`
	Controller Controller `yaml:"controller"`
	World      World      `yaml:"world"`
	Log        Log        `yaml:"log"`
}

type Window struct {
	Title      string   `yaml:"title"`
	Width      int32    `yaml:"width"`
	Height     int32    `yaml:"height"`
	Fullscreen bool     `yaml:"fullscreen"`
	TargetFPS  int32    `yaml:"target_fps"`
	ClearColor [4]uint8 `yaml:"clear_color"`
	Ambient    [4]uint8 `yaml:"ambient"`
}

type Assets struct {
	Dir    string `yaml:"dir"`
	Skybox string `yaml:"skybox"`
	Model  string `yaml:"model"`
	Fonts  string `yaml:"fonts"`

	// Stylesheet is an optional CSS file whose rules override the built-in UI styles.
	Stylesheet string `yaml:"stylesheet"`
}

type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
}

// Controller tunes movement. Speeds and forces are per nominal frame.
type Controller struct {
	WalkSpeed   float32    `yaml:"walk_speed"`
	SprintSpeed float32    `yaml:"sprint_speed"`
	Boundary    float32    `yaml:"boundary"`
	PlayerSize  [3]float32 `yaml:"player_size"`
	Step        string     `yaml:"step"`
	Gravity     float32    `yaml:"gravity"`
	JumpForce   float32    `yaml:"jump_force"`
	Floor       float32    `yaml:"floor"`
	NominalStep float32    `yaml:"nominal_step"`
}

// World places the static scene content.
type World struct {
	SkyboxScale   float32    `yaml:"skybox_scale"`
	ModelScale    float32    `yaml:"model_scale"`
	ModelPosition [3]float32 `yaml:"model_position"`
	ProxySize     [3]float32 `yaml:"proxy_size"`
	GridSlices    int32      `yaml:"grid_slices"`
	GridSpacing   float32    `yaml:"grid_spacing"`
}

type Log struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the settings the walkthrough ships with.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "walkthrough",
			Width:      1280,
			Height:     720,
			TargetFPS:  60,
			ClearColor: [4]uint8{17, 17, 17, 255},
			Ambient:    [4]uint8{255, 255, 255, 255},
		},
		Assets: Assets{
			Dir:    "assets",
			Skybox: "skybox/quarry.glb",
			Model:  "models/reimu.glb",
			Fonts:  "assets/fonts",
		},
		Camera: Camera{
			Position: [3]float32{147, -40, 73},
			Target:   [3]float32{147, -40, 72},
			Fovy:     100,
		},
		Controller: Controller{
			WalkSpeed:   0.01,
			SprintSpeed: 0.03,
			Boundary:    220,
			PlayerSize:  [3]float32{0.05, 0.1, 0.05},
			Step:        "fixed",
			Gravity:     0.98,
			JumpForce:   0.1,
			Floor:       -40,
			NominalStep: 0.016,
		},
		World: World{
			SkyboxScale:   1550,
			ModelScale:    5,
			ModelPosition: [3]float32{50, 0, 50},
			ProxySize:     [3]float32{3, 6, 3},
			GridSlices:    40,
			GridSpacing:   10,
		},
		Log: Log{
			Path:  logger.LogFilePath,
			Level: "info",
		},
	}
}

// Load reads path over Default(). A missing file yields Default() and no error; an
// unreadable or invalid file yields Default() and the error, so callers can log and go on.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
