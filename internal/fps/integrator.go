package fps

import (
	"walkthrough/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Front returns the horizontal forward vector for a camera with the given right and up
// axes: up × right. With a world-space up it stays horizontal whatever the pitch.
func Front(right, up rl.Vector3) rl.Vector3 {
	return rl.Vector3CrossProduct(up, right)
}

// Displacement returns one frame's horizontal movement for the intent. The direction is
// normalized so diagonals are no faster than straight lines, then scaled by speed.
func Displacement(in input.Intent, right, up rl.Vector3, speed float32) rl.Vector3 {
	side := axis(in.Right, in.Left)
	ahead := axis(in.Forward, in.Back)
	if side == 0 && ahead == 0 {
		return rl.Vector3{}
	}
	n := math32.Hypot(side, ahead)
	side /= n
	ahead /= n

	d := rl.Vector3Add(rl.Vector3Scale(Front(right, up), ahead), rl.Vector3Scale(right, side))
	return rl.Vector3Scale(d, speed)
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// Speed picks the sprint or walk speed.
func (s Settings) Speed(in input.Intent) float32 {
	if in.Sprint {
		return s.SprintSpeed
	}
	return s.WalkSpeed
}

// OutOfBounds reports whether pos is outside the square world boundary on X or Z.
func (s Settings) OutOfBounds(pos rl.Vector3) bool {
	return math32.Abs(pos.X) > s.Boundary || math32.Abs(pos.Z) > s.Boundary
}
