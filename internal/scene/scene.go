// Package scene owns the walkthrough's 3D world: camera, skybox, the model and its
// collision proxy, and pointer lock.
package scene

import (
	"walkthrough/internal/assets"
	"walkthrough/internal/collision"
	"walkthrough/internal/config"
	"walkthrough/internal/logger"
	"walkthrough/internal/scenegraph"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	clipNear = 0.01
	clipFar  = 5000

	// ProxyName names the invisible box standing in for the model's body.
	ProxyName = "collision-proxy"
)

// Scene holds the camera and the world tree. Update runs mouse look while the pointer is
// locked; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	World       *scenegraph.Node
	Tags        *collision.Tags
	GridVisible bool
	ShowBounds  bool
	Sensitivity float32

	cfg     config.Config
	loader  *assets.Loader
	log     *logger.Logger
	skybox  *scenegraph.Node
	model   *scenegraph.Node
	locked  bool
	mounted bool
	clipSet bool
}

// New returns a scene with the configured camera pose and starts preloading its assets.
// Nothing is added to the world until Mount.
func New(cfg config.Config, loader *assets.Loader, log *logger.Logger) *Scene {
	if log == nil {
		log = logger.InMemory()
	}
	s := &Scene{
		World:       scenegraph.New("world"),
		Tags:        collision.NewTags(),
		GridVisible: true,
		Sensitivity: 0.1,
		cfg:         cfg,
		loader:      loader,
		log:         log,
	}
	c := cfg.Camera
	s.Camera.Position = vec(c.Position)
	s.Camera.Target = vec(c.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = c.Fovy
	s.Camera.Projection = rl.CameraPerspective

	if loader != nil {
		loader.Preload(cfg.Assets.Skybox)
		loader.Preload(cfg.Assets.Model)
	}
	return s
}

func vec(a [3]float32) rl.Vector3 {
	return rl.NewVector3(a[0], a[1], a[2])
}

// Mount populates the world: the skybox and model arrive through the loader, the
// collision proxy is added at once. Every collidable subtree is tagged as it arrives.
func (s *Scene) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	w := s.cfg.World

	proxy := scenegraph.NewBox(ProxyName, vec(w.ProxySize))
	proxy.Position = vec(w.ModelPosition)
	proxy.Visible = false
	s.World.Add(proxy)
	s.Tags.MarkTree(proxy)

	if s.loader == nil {
		return
	}
	s.loader.Load(s.cfg.Assets.Skybox, func(root *scenegraph.Node) {
		s.skybox = root
	})
	if err := s.loader.Err(s.cfg.Assets.Model); err != nil {
		s.log.Warn("model unavailable, only the collision proxy blocks", "err", err)
	}
	s.loader.Load(s.cfg.Assets.Model, func(root *scenegraph.Node) {
		root.Position = vec(w.ModelPosition)
		root.Scale = rl.NewVector3(w.ModelScale, w.ModelScale, w.ModelScale)
		s.World.Add(root)
		s.Tags.MarkTree(root)
		s.model = root
		s.log.Info("model mounted", "name", root.Name, "collidables", s.Tags.Len())
	})
}

// Mounted reports whether Mount has run and Close has not.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Provider returns the collision source for the controller.
func (s *Scene) Provider() collision.Provider {
	return collision.SceneProvider{Root: s.World, Tags: s.Tags}
}

// Rig returns the controller's handle on the camera.
func (s *Scene) Rig() Rig {
	return NewRig(&s.Camera)
}

// Lock captures the pointer for mouse look.
func (s *Scene) Lock() {
	if s.locked {
		return
	}
	rl.DisableCursor()
	s.locked = true
}

// Unlock releases the pointer.
func (s *Scene) Unlock() {
	if !s.locked {
		return
	}
	rl.EnableCursor()
	s.locked = false
}

// Locked reports whether the pointer is captured.
func (s *Scene) Locked() bool {
	return s.locked
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// WarmAssets decodes at most one preloaded asset and returns how many are still queued.
// Call once per frame before Mount; needs the GL context.
func (s *Scene) WarmAssets() int {
	if s.loader == nil {
		return 0
	}
	s.loader.Poll(1)
	return s.loader.Pending()
}

// Update runs once per frame: finish pending asset loads, then turn the camera by the
// mouse delta while the pointer is locked. Position is left to the controller.
func (s *Scene) Update() {
	if s.loader != nil {
		s.loader.Poll(1)
	}
	if !s.locked {
		return
	}
	d := rl.GetMouseDelta()
	rl.UpdateCameraPro(&s.Camera, rl.Vector3Zero(), rl.NewVector3(d.X*s.Sensitivity, d.Y*s.Sensitivity, 0), 0)
}

// Draw renders the 3D scene. Call after ClearBackground and before any 2D overlay.
func (s *Scene) Draw() {
	if !s.clipSet {
		rl.SetClipPlanes(clipNear, clipFar)
		s.clipSet = true
	}
	w := s.cfg.World
	a := s.cfg.Window.Ambient
	rl.BeginMode3D(s.Camera)
	drawSkybox(s.skybox, s.Camera.Position, w.SkyboxScale)
	drawTree(s.World, rl.NewColor(a[0], a[1], a[2], a[3]))
	if s.GridVisible {
		drawEditorGrid(s.cfg.Controller.Floor-1, w.GridSlices, w.GridSpacing)
	}
	if s.ShowBounds {
		drawBounds(collision.Collidables(s.World, s.Tags), rl.Red)
	}
	rl.EndMode3D()
}

// Close releases the pointer, untags and detaches the world, and unloads assets.
func (s *Scene) Close() {
	s.Unlock()
	s.Tags.Forget(s.World)
	for _, c := range append([]*scenegraph.Node(nil), s.World.Children()...) {
		s.World.Remove(c)
	}
	s.skybox = nil
	s.model = nil
	if s.loader != nil {
		s.loader.Close()
	}
	s.mounted = false
}
