package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// Rig adapts a raylib camera to the controller's view of it: a position that can be
// moved without turning the camera, plus its right and up axes.
type Rig struct {
	cam *rl.Camera3D
}

// NewRig wraps cam. The camera must outlive the rig.
func NewRig(cam *rl.Camera3D) Rig {
	return Rig{cam: cam}
}

func (r Rig) Position() rl.Vector3 {
	return r.cam.Position
}

// SetPosition moves the camera and its target together so the view direction is kept.
func (r Rig) SetPosition(pos rl.Vector3) {
	d := rl.Vector3Subtract(pos, r.cam.Position)
	r.cam.Position = pos
	r.cam.Target = rl.Vector3Add(r.cam.Target, d)
}

// Right is the camera's normalized right axis. The raw cross product shrinks as the
// camera pitches toward its up vector.
func (r Rig) Right() rl.Vector3 {
	return rl.Vector3Normalize(rl.GetCameraRight(r.cam))
}

func (r Rig) Up() rl.Vector3 {
	return rl.GetCameraUp(r.cam)
}
