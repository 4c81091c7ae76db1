package scene

import (
	"os"
	"strings"
	"testing"

	"walkthrough/internal/assets"
	"walkthrough/internal/config"
	"walkthrough/internal/logger"
	"walkthrough/internal/scenegraph"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	return math32.Abs(a.X-b.X) < 1e-5 && math32.Abs(a.Y-b.Y) < 1e-5 && math32.Abs(a.Z-b.Z) < 1e-5
}

func TestRig_SetPositionKeepsViewDirection(t *testing.T) {
	cam := rl.Camera3D{
		Position: rl.NewVector3(147, -40, 73),
		Target:   rl.NewVector3(147, -40, 72),
		Up:       rl.NewVector3(0, 1, 0),
	}
	r := NewRig(&cam)
	before := rl.GetCameraForward(&cam)

	r.SetPosition(rl.NewVector3(0, 0, 0))

	if r.Position() != rl.NewVector3(0, 0, 0) {
		t.Fatalf("position = %+v", r.Position())
	}
	if !near(rl.GetCameraForward(&cam), before) {
		t.Fatalf("forward changed: %+v -> %+v", before, rl.GetCameraForward(&cam))
	}
	if !near(cam.Target, rl.NewVector3(0, 0, -1)) {
		t.Fatalf("target = %+v", cam.Target)
	}
}

func TestRig_RightIsUnitWhenPitched(t *testing.T) {
	cam := rl.Camera3D{
		Position: rl.NewVector3(0, 0, 0),
		Target:   rl.NewVector3(0, -1, -1),
		Up:       rl.NewVector3(0, 1, 0),
	}
	r := NewRig(&cam)
	right := r.Right()
	if math32.Abs(rl.Vector3Length(right)-1) > 1e-5 {
		t.Fatalf("|right| = %v", rl.Vector3Length(right))
	}
	if !near(right, rl.NewVector3(1, 0, 0)) {
		t.Fatalf("right = %+v", right)
	}
}

type stubDecoder struct{}

func (stubDecoder) Decode(path string) (*scenegraph.Node, error) {
	root := scenegraph.New(path)
	mesh := scenegraph.NewBox("mesh0", rl.NewVector3(2, 2, 2))
	root.Add(mesh)
	return root, nil
}

func (stubDecoder) Release(*scenegraph.Node) {}

func TestScene_MountTagsProxyAndModel(t *testing.T) {
	cfg := config.Default()
	loader := assets.NewLoader("", stubDecoder{}, nil)
	s := New(cfg, loader, nil)

	if s.Camera.Position != rl.NewVector3(147, -40, 73) || s.Camera.Fovy != 100 {
		t.Fatalf("camera = %+v", s.Camera)
	}

	s.Mount()
	if s.Tags.Len() != 1 {
		t.Fatalf("tags before load = %d, want the proxy only", s.Tags.Len())
	}
	if s.World.Find(ProxyName) == nil {
		t.Fatal("proxy not in world")
	}

	loader.Poll(0)
	if s.Tags.Len() != 3 {
		t.Fatalf("tags after load = %d, want proxy + model root + mesh", s.Tags.Len())
	}

	blockedAt := rl.NewVector3(50, 0, 50)
	clearAt := rl.NewVector3(147, -40, 73)
	p := s.Provider()
	hits := 0
	for b := range p.Boxes() {
		if b.Min.X < blockedAt.X && blockedAt.X < b.Max.X {
			hits++
		}
		if b.Min.X < clearAt.X && clearAt.X < b.Max.X {
			t.Fatalf("box %+v covers the spawn point", b)
		}
	}
	if hits == 0 {
		t.Fatal("no collidable covers the model position")
	}

	s.Close()
	if s.Tags.Len() != 0 || len(s.World.Children()) != 0 || s.Mounted() {
		t.Fatalf("after Close: tags=%d children=%d", s.Tags.Len(), len(s.World.Children()))
	}
}

type missingDecoder struct{}

func (missingDecoder) Decode(path string) (*scenegraph.Node, error) {
	return nil, os.ErrNotExist
}

func (missingDecoder) Release(*scenegraph.Node) {}

func TestScene_MissingModelLeavesProxy(t *testing.T) {
	log := logger.InMemory()
	s := New(config.Default(), assets.NewLoader("", missingDecoder{}, log), log)

	for s.WarmAssets() > 0 {
	}
	s.Mount()
	s.Update()

	if s.Tags.Len() != 1 || s.World.Find(ProxyName) == nil {
		t.Fatalf("tags = %d, want the proxy only", s.Tags.Len())
	}
	if !strings.Contains(strings.Join(log.Lines(), "\n"), "only the collision proxy blocks") {
		t.Fatalf("lines = %q", log.Lines())
	}
}
