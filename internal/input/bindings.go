package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Bindings maps movement actions to keys.
type Bindings struct {
	Forward Key
	Back    Key
	Left    Key
	Right   Key
	Sprint  Key
	Jump    Key
	Coords  Key
}

// DefaultBindings is WASD, left shift to sprint, space to jump, Z for coordinates.
func DefaultBindings() Bindings {
	return Bindings{
		Forward: rl.KeyW,
		Back:    rl.KeyS,
		Left:    rl.KeyA,
		Right:   rl.KeyD,
		Sprint:  rl.KeyLeftShift,
		Jump:    rl.KeySpace,
		Coords:  rl.KeyZ,
	}
}

// Keys lists every bound key, for KeyboardSource.Watch.
func (b Bindings) Keys() []Key {
	return []Key{b.Forward, b.Back, b.Left, b.Right, b.Sprint, b.Jump, b.Coords}
}

// Intent is one frame's movement request read from State.
type Intent struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool
	Jump    bool
}

// Intent reads the held actions from s.
func (b Bindings) Intent(s *State) Intent {
	return Intent{
		Forward: s.Down(b.Forward),
		Back:    s.Down(b.Back),
		Left:    s.Down(b.Left),
		Right:   s.Down(b.Right),
		Sprint:  s.Down(b.Sprint),
		Jump:    s.Down(b.Jump),
	}
}
