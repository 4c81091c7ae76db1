package physics

// Vertical holds the constants of the player's vertical motion. Gravity is applied as
// Gravity*NominalStep per frame; positions are in world units per frame.
type Vertical struct {
	Gravity     float32
	JumpForce   float32
	Floor       float32
	NominalStep float32
}

// DefaultVertical returns the tuning the walkthrough ships with.
func DefaultVertical() Vertical {
	return Vertical{
		Gravity:     0.98,
		JumpForce:   0.1,
		Floor:       -40,
		NominalStep: 0.016,
	}
}

// Kinematics is the player's vertical state. The zero value is airborne at rest;
// NewKinematics starts grounded.
type Kinematics struct {
	Velocity float32
	Grounded bool
}

// NewKinematics returns a grounded state with zero velocity.
func NewKinematics() Kinematics {
	return Kinematics{Grounded: true}
}

// Jump applies the jump impulse if the player is grounded. Returns whether it fired.
func (k *Kinematics) Jump(v Vertical) bool {
	if !k.Grounded {
		return false
	}
	k.Velocity = v.JumpForce
	k.Grounded = false
	return true
}

// Integrate accumulates gravity, advances y and clamps to the floor. scale is 1 for a
// nominal step; measured-time integration passes dt/NominalStep.
func (k *Kinematics) Integrate(y float32, v Vertical, scale float32) float32 {
	k.Velocity -= v.Gravity * v.NominalStep * scale
	y += k.Velocity * scale
	if y <= v.Floor {
		y = v.Floor
		k.Velocity = 0
		k.Grounded = true
	}
	return y
}

// Step runs one frame of vertical motion: optional jump, then Integrate.
func (k *Kinematics) Step(y float32, jump bool, v Vertical, scale float32) float32 {
	if jump {
		k.Jump(v)
	}
	return k.Integrate(y, v, scale)
}
