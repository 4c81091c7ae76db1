package input

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State maps keys to "currently held". A key stays held until its release event.
type State struct {
	pressed map[Key]bool
}

// NewState returns an empty state.
func NewState() *State {
	return &State{pressed: make(map[Key]bool)}
}

// Down reports whether k is held.
func (s *State) Down(k Key) bool {
	return s.pressed[k]
}

func (s *State) set(k Key, down bool) {
	s.pressed[k] = down
}

// Overlay is the on-screen coordinate readout the latch shows and hides.
type Overlay interface {
	Show()
	Hide()
	SetText(text string)
	Remove()
}

// Latch keeps State in sync with a Source for its lifetime and drives the coordinate
// overlay: visible while the toggle key is held.
type Latch struct {
	state   *State
	overlay Overlay
	toggle  Key
	visible bool
	muted   bool
	cancel  func()
}

// NewLatch subscribes to src. overlay may be nil.
func NewLatch(src Source, state *State, overlay Overlay, toggle Key) *Latch {
	l := &Latch{state: state, overlay: overlay, toggle: toggle}
	if overlay != nil {
		overlay.Hide()
	}
	l.cancel = src.Subscribe(l.handle)
	return l
}

func (l *Latch) handle(e Event) {
	down := e.Kind == Press
	l.state.set(e.Key, down)
	if e.Key != l.toggle || l.overlay == nil || l.muted {
		return
	}
	l.visible = down
	if down {
		l.overlay.Show()
	} else {
		l.overlay.Hide()
	}
}

// State returns the latched key state.
func (l *Latch) State() *State {
	return l.state
}

// Mute stops the toggle key from showing the overlay, e.g. while the key is typed into
// the console, and hides it if shown. Key state is still latched.
func (l *Latch) Mute(muted bool) {
	l.muted = muted
	if muted && l.visible && l.overlay != nil {
		l.overlay.Hide()
		l.visible = false
	}
}

// Refresh writes the camera position into the overlay. Call once per frame; it is a
// no-op while the overlay is hidden or after Close.
func (l *Latch) Refresh(pos rl.Vector3) {
	if !l.visible || l.overlay == nil {
		return
	}
	l.overlay.SetText(FormatPosition(pos))
}

// Close unsubscribes from the source and removes the overlay. Safe to call twice.
func (l *Latch) Close() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.overlay != nil {
		l.overlay.Remove()
		l.overlay = nil
	}
	l.visible = false
}

// FormatPosition renders a position the way the overlay shows it.
func FormatPosition(pos rl.Vector3) string {
	return fmt.Sprintf("X: %.2f Y: %.2f Z: %.2f", pos.X, pos.Y, pos.Z)
}
