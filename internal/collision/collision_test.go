package collision

import (
	"iter"
	"testing"

	"walkthrough/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func buildModel() (*scenegraph.Node, *scenegraph.Node) {
	scene := scenegraph.New("scene")
	model := scenegraph.New("model")
	model.Position = rl.NewVector3(50, 0, 50)
	model.Add(scenegraph.NewBox("body", rl.NewVector3(2, 4, 2)))
	model.Add(scenegraph.NewBox("hat", rl.NewVector3(1, 1, 1)))
	scene.Add(model)
	scene.Add(scenegraph.NewBox("skybox", rl.NewVector3(100, 100, 100)))
	return scene, model
}

func TestMarkTree_FlagsEveryDescendant(t *testing.T) {
	scene, model := buildModel()
	tags := NewTags()

	tags.MarkTree(model)

	for n := range model.All() {
		if !tags.Collidable(n) {
			t.Fatalf("node %q not collidable", n.Name)
		}
	}
	if tags.Collidable(scene) || tags.Collidable(scene.Find("skybox")) {
		t.Fatalf("nodes outside the asset were tagged")
	}
}

func TestMarkTree_Idempotent(t *testing.T) {
	_, model := buildModel()
	tags := NewTags()

	tags.MarkTree(model)
	tags.MarkTree(model)

	for n := range model.All() {
		if !tags.Collidable(n) {
			t.Fatalf("node %q lost its flag after second pass", n.Name)
		}
	}
	if tags.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tags.Len())
	}
}

func TestMarkTree_NilRootIsNoop(t *testing.T) {
	tags := NewTags()
	tags.MarkTree(nil)
	if tags.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tags.Len())
	}
}

func TestForget_DropsSubtree(t *testing.T) {
	_, model := buildModel()
	tags := NewTags()
	tags.MarkTree(model)

	tags.Forget(model)

	if tags.Len() != 0 {
		t.Fatalf("Len() = %d after Forget, want 0", tags.Len())
	}
}

func TestCollidables_ReflectsCurrentMembership(t *testing.T) {
	scene, model := buildModel()
	tags := NewTags()
	seq := Collidables(scene, tags)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if got := count(); got != 0 {
		t.Fatalf("before tagging: %d collidables, want 0", got)
	}
	tags.MarkTree(model)
	if got := count(); got != 3 {
		t.Fatalf("after tagging: %d collidables, want 3", got)
	}
	late := scenegraph.NewBox("late", rl.NewVector3(1, 1, 1))
	scene.Add(late)
	tags.Mark(late)
	if got := count(); got != 4 {
		t.Fatalf("after adding a node: %d collidables, want 4", got)
	}
}

func TestResolver_BlockedInsideTaggedNode(t *testing.T) {
	scene, model := buildModel()
	tags := NewTags()
	tags.MarkTree(model)
	r := NewResolver(SceneProvider{Root: scene, Tags: tags}, rl.Vector3{})

	tests := []struct {
		name string
		pos  rl.Vector3
		want bool
	}{
		{"inside body", rl.NewVector3(50, 1, 50), true},
		{"far away", rl.NewVector3(0, 0, 0), false},
		{"just outside body", rl.NewVector3(51.1, 0, 50), false},
		{"grazing body edge", rl.NewVector3(51.02, 0, 50), true},
		{"inside untagged skybox only", rl.NewVector3(20, 20, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Blocked(tt.pos); got != tt.want {
				t.Errorf("Blocked(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestResolver_FollowsMovingNode(t *testing.T) {
	scene, model := buildModel()
	tags := NewTags()
	tags.MarkTree(model)
	r := NewResolver(SceneProvider{Root: scene, Tags: tags}, rl.Vector3{})

	pos := rl.NewVector3(0, 1, 0)
	if r.Blocked(pos) {
		t.Fatalf("blocked before the model moved")
	}
	model.Position = rl.NewVector3(0, 0, 0)
	if !r.Blocked(pos) {
		t.Fatalf("not blocked after the model moved onto the player")
	}
}

type staticProvider []rl.BoundingBox

func (s staticProvider) Boxes() iter.Seq[rl.BoundingBox] {
	return func(yield func(rl.BoundingBox) bool) {
		for _, b := range s {
			if !yield(b) {
				return
			}
		}
	}
}

func TestResolver_CustomProvider(t *testing.T) {
	wall := rl.NewBoundingBox(rl.NewVector3(1, -10, -10), rl.NewVector3(2, 10, 10))
	r := NewResolver(staticProvider{wall}, rl.NewVector3(1, 1, 1))

	if r.Blocked(rl.NewVector3(0.5, 0, 0)) {
		t.Fatalf("box touching the wall face should not be blocked")
	}
	if !r.Blocked(rl.NewVector3(0.6, 0, 0)) {
		t.Fatalf("box overlapping the wall should be blocked")
	}
}

func TestResolver_NilProvider(t *testing.T) {
	r := NewResolver(nil, rl.Vector3{})
	if r.Blocked(rl.NewVector3(0, 0, 0)) {
		t.Fatalf("nil provider should never block")
	}
}
