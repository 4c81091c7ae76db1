// Package fps is the first-person walk controller: per-frame movement under gravity,
// a square world boundary, and rollback on collision.
package fps

import (
	"walkthrough/internal/collision"
	"walkthrough/internal/input"
	"walkthrough/internal/logger"
	"walkthrough/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the pose the controller drives. SetPosition must leave orientation alone.
type Camera interface {
	Position() rl.Vector3
	SetPosition(pos rl.Vector3)
	Right() rl.Vector3
	Up() rl.Vector3
}

// Outcome describes what happened to a frame's proposed move.
type Outcome int

const (
	Accepted Outcome = iota
	OutOfBounds
	Collided
)

func (o Outcome) String() string {
	switch o {
	case OutOfBounds:
		return "out of bounds"
	case Collided:
		return "collided"
	}
	return "accepted"
}

// Controller owns the input state and vertical kinematics for one mounted session.
// All methods run on the frame thread.
type Controller struct {
	settings Settings
	bindings input.Bindings
	latch    *input.Latch
	kin      physics.Kinematics
	resolver *collision.Resolver
	log      *logger.Logger

	enabled bool
	last    Outcome
	closed  bool
}

// New mounts a controller: it subscribes to src, takes ownership of overlay and starts
// grounded. Call Close to unmount.
func New(settings Settings, bindings input.Bindings, src input.Source, overlay input.Overlay, provider collision.Provider, log *logger.Logger) *Controller {
	c := &Controller{
		settings: settings,
		bindings: bindings,
		latch:    input.NewLatch(src, input.NewState(), overlay, bindings.Coords),
		kin:      physics.NewKinematics(),
		resolver: collision.NewResolver(provider, settings.PlayerSize),
		log:      log,
		enabled:  true,
	}
	if log != nil {
		log.Info("controller mounted", "step", string(settings.Step), "walk", settings.WalkSpeed, "sprint", settings.SprintSpeed)
	}
	return c
}

// SetInputEnabled gates movement input and the coordinate toggle. Gravity keeps
// running while disabled.
func (c *Controller) SetInputEnabled(on bool) {
	if c.enabled == on {
		return
	}
	c.enabled = on
	c.latch.Mute(!on)
}

// SetStepMode switches between fixed and measured-time integration.
func (c *Controller) SetStepMode(m StepMode) {
	c.settings.Step = m
}

// Settings returns the active tuning.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Kinematics returns the current vertical state.
func (c *Controller) Kinematics() physics.Kinematics {
	return c.kin
}

// LastOutcome reports how the previous Update resolved.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}

// Update advances one frame: integrate a candidate position, then keep it only if it is
// inside the boundary and clear of every collidable box. Otherwise the previous position
// is restored exactly, vertical change included.
func (c *Controller) Update(cam Camera, dt float32) {
	if c.closed || cam == nil {
		return
	}
	var in input.Intent
	if c.enabled {
		in = c.bindings.Intent(c.latch.State())
	}
	prev := cam.Position()
	next, outcome := c.Propose(prev, cam.Right(), cam.Up(), in, dt)
	c.last = outcome
	if outcome == Accepted && next != prev {
		cam.SetPosition(next)
	}
	c.latch.Refresh(cam.Position())
}

// Propose integrates one frame from prev and resolves it. It mutates the vertical
// kinematics but not the camera.
func (c *Controller) Propose(prev, right, up rl.Vector3, in input.Intent, dt float32) (rl.Vector3, Outcome) {
	scale := c.settings.stepScale(dt)

	next := prev
	next.Y = c.kin.Step(prev.Y, in.Jump, c.settings.Vertical, scale)
	next = rl.Vector3Add(next, Displacement(in, right, up, c.settings.Speed(in)*scale))

	if c.settings.OutOfBounds(next) {
		return prev, OutOfBounds
	}
	if c.resolver.Blocked(next) {
		return prev, Collided
	}
	return next, Accepted
}

// Close unsubscribes from input and removes the overlay. Further updates are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.latch.Close()
	if c.log != nil {
		c.log.Info("controller unmounted")
	}
}
