package collision

import (
	"iter"

	"walkthrough/internal/physics"
	"walkthrough/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Provider yields the world-space boxes the player can collide with this frame.
type Provider interface {
	Boxes() iter.Seq[rl.BoundingBox]
}

// SceneProvider walks the scene tree on every call and yields the current world bounds
// of each flagged node. There is no spatial index; scenes are small and static.
type SceneProvider struct {
	Root *scenegraph.Node
	Tags *Tags
}

// Boxes implements Provider.
func (p SceneProvider) Boxes() iter.Seq[rl.BoundingBox] {
	return func(yield func(rl.BoundingBox) bool) {
		for n := range Collidables(p.Root, p.Tags) {
			if !yield(n.WorldBounds()) {
				return
			}
		}
	}
}

// DefaultPlayerSize is the synthetic box around the camera.
var DefaultPlayerSize = rl.NewVector3(0.05, 0.1, 0.05)

// Resolver tests a candidate camera position against the provider's boxes.
type Resolver struct {
	provider Provider
	size     rl.Vector3
}

// NewResolver returns a resolver using a player box of the given size. A zero size
// falls back to DefaultPlayerSize.
func NewResolver(p Provider, size rl.Vector3) *Resolver {
	if size == (rl.Vector3{}) {
		size = DefaultPlayerSize
	}
	return &Resolver{provider: p, size: size}
}

// PlayerBox returns the player's box centered on pos.
func (r *Resolver) PlayerBox(pos rl.Vector3) rl.BoundingBox {
	return physics.BoxFromCenterAndSize(pos, r.size)
}

// Blocked reports whether the player box at pos intersects any collidable box.
func (r *Resolver) Blocked(pos rl.Vector3) bool {
	if r.provider == nil {
		return false
	}
	player := r.PlayerBox(pos)
	for b := range r.provider.Boxes() {
		if physics.Intersects(player, b) {
			return true
		}
	}
	return false
}
