package fps

import (
	"fmt"

	"walkthrough/internal/config"
	"walkthrough/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StepMode selects how a frame's duration feeds the integrator.
type StepMode string

const (
	// StepFixed treats every frame as NominalStep long, whatever its real duration.
	StepFixed StepMode = "fixed"
	// StepMeasured scales motion by dt/NominalStep so speed is frame-rate independent.
	StepMeasured StepMode = "measured"
)

// maxStepScale caps measured-time frames, e.g. the first frame after a long load.
const maxStepScale = 4

// ParseStepMode accepts "fixed" or "measured".
func ParseStepMode(s string) (StepMode, error) {
	switch StepMode(s) {
	case StepFixed, StepMeasured:
		return StepMode(s), nil
	case "":
		return StepFixed, nil
	}
	return "", fmt.Errorf("unknown step mode %q (want fixed or measured)", s)
}

// Settings tunes the controller. Speeds are world units per nominal frame.
type Settings struct {
	WalkSpeed   float32
	SprintSpeed float32
	Boundary    float32
	PlayerSize  rl.Vector3
	Step        StepMode
	Vertical    physics.Vertical
}

// DefaultSettings returns the walkthrough's tuning.
func DefaultSettings() Settings {
	return Settings{
		WalkSpeed:   0.01,
		SprintSpeed: 0.03,
		Boundary:    220,
		PlayerSize:  rl.NewVector3(0.05, 0.1, 0.05),
		Step:        StepFixed,
		Vertical:    physics.DefaultVertical(),
	}
}

// SettingsFrom converts the controller section of the config file.
func SettingsFrom(c config.Controller) (Settings, error) {
	mode, err := ParseStepMode(c.Step)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		WalkSpeed:   c.WalkSpeed,
		SprintSpeed: c.SprintSpeed,
		Boundary:    c.Boundary,
		PlayerSize:  rl.NewVector3(c.PlayerSize[0], c.PlayerSize[1], c.PlayerSize[2]),
		Step:        mode,
		Vertical: physics.Vertical{
			Gravity:     c.Gravity,
			JumpForce:   c.JumpForce,
			Floor:       c.Floor,
			NominalStep: c.NominalStep,
		},
	}, nil
}

// stepScale returns the integration scale for a frame of length dt.
func (s Settings) stepScale(dt float32) float32 {
	if s.Step != StepMeasured || dt <= 0 || s.Vertical.NominalStep <= 0 {
		return 1
	}
	return min(dt/s.Vertical.NominalStep, maxStepScale)
}
