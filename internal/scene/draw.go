package scene

import (
	"iter"

	"walkthrough/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridMajorEvery = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// drawSkybox draws the skybox model as a huge inside-out shell centered on the camera,
// without depth writes so everything else draws over it.
func drawSkybox(sky *scenegraph.Node, camPos rl.Vector3, scale float32) {
	if sky == nil || sky.Model == nil {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	m := *sky.Model
	m.Transform = rl.MatrixMultiply(rl.MatrixScale(scale, scale, scale), rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z))
	rl.DrawModel(m, rl.Vector3Zero(), 1, rl.White)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// drawTree draws every visible node that carries a model, using its world matrix.
// A hidden node hides its whole subtree.
func drawTree(root *scenegraph.Node, tint rl.Color) {
	if root == nil || !root.Visible {
		return
	}
	if root.Model != nil {
		m := *root.Model
		m.Transform = root.WorldMatrix()
		rl.DrawModel(m, rl.Vector3Zero(), 1, tint)
	}
	for _, c := range root.Children() {
		drawTree(c, tint)
	}
}

// drawBounds outlines the world bounds of the given nodes, for the collider debug view.
func drawBounds(nodes iter.Seq[*scenegraph.Node], c rl.Color) {
	for n := range nodes {
		rl.DrawBoundingBox(n.WorldBounds(), c)
	}
}

// drawEditorGrid draws a grid on the XZ plane at height y with major/minor lines and
// axis lines. Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid(y float32, slices int32, spacing float32) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	half := slices / 2
	extent := float32(half) * spacing
	var start, end rl.Vector3
	for i := -half; i <= half; i++ {
		c := major
		if i%gridMajorEvery != 0 {
			c = minor
		}
		v := float32(i) * spacing
		start.X, start.Y, start.Z = v, y, -extent
		end.X, end.Y, end.Z = v, y, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -extent, y, v
		end.X, end.Y, end.Z = extent, y, v
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = -extent, y, 0
	end.X, end.Y, end.Z = extent, y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, -extent
	end.X, end.Y, end.Z = 0, y, extent
	rl.DrawLine3D(start, end, axisZ)
}
