package main

import (
	"fmt"
	"slices"

	"walkthrough/internal/assets"
	"walkthrough/internal/commands"
	"walkthrough/internal/config"
	"walkthrough/internal/debug"
	"walkthrough/internal/fonts"
	"walkthrough/internal/fps"
	"walkthrough/internal/gate"
	"walkthrough/internal/input"
	"walkthrough/internal/logger"
	"walkthrough/internal/scene"
	"walkthrough/internal/terminal"
	"walkthrough/internal/ui"
)

// app wires the gate, the scene and the controller into the frame loop.
type app struct {
	cfg       config.Config
	prefs     config.Prefs
	prefsPath string
	log       *logger.Logger

	gate      *gate.Gate
	scene     *scene.Scene
	debug     *debug.Debug
	ui        *ui.Engine
	inspector *ui.Inspector
	term      *terminal.Terminal
	reg       *commands.Registry

	settings fps.Settings
	bindings input.Bindings
	keyboard *input.KeyboardSource
	ctrl     *fps.Controller

	fontDirs   []string
	fontLoaded bool
	warm       bool
}

func newApp(cfg config.Config, prefs config.Prefs, prefsPath string, g *gate.Gate, loader *assets.Loader, log *logger.Logger) (*app, error) {
	settings, err := fps.SettingsFrom(cfg.Controller)
	if err != nil {
		return nil, fmt.Errorf("controller config: %w", err)
	}
	gateSheet, err := gate.Stylesheet()
	if err != nil {
		return nil, fmt.Errorf("gate stylesheet: %w", err)
	}
	inspectorSheet, err := ui.InspectorStylesheet()
	if err != nil {
		return nil, fmt.Errorf("inspector stylesheet: %w", err)
	}

	a := &app{
		cfg:       cfg,
		prefs:     prefs,
		prefsPath: prefsPath,
		log:       log,
		gate:      g,
		scene:     scene.New(cfg, loader, log),
		debug:     debug.New(),
		ui:        ui.New(),
		inspector: ui.NewInspector(),
		reg:       commands.NewRegistry(),
		settings:  settings,
		bindings:  input.DefaultBindings(),
		fontDirs:  fonts.BaseDirs(cfg.Assets.Fonts),
	}
	a.ui.SetStylesheet(ui.Merge(gateSheet, inspectorSheet))
	if path := cfg.Assets.Stylesheet; path != "" {
		if err := a.ui.LoadCSS(path); err != nil {
			log.Warn("user stylesheet not loaded", "path", path, "err", err)
		}
	}
	a.ui.SetNodes(g.Nodes())
	a.debug.SetShowFPS(prefs.ShowFPS)
	a.debug.SetShowMemAlloc(prefs.ShowMemAlloc)
	a.scene.SetGridVisible(prefs.GridVisible)
	a.scene.Sensitivity = prefs.MouseSensitivity

	a.term = terminal.New(log, a.reg)
	a.term.OnToggle = a.consoleToggled
	a.registerCommands()
	return a, nil
}

// update runs one frame: console, then the gate until it is done, then input, scene and
// controller in that order.
func (a *app) update(dt float32) {
	if !a.fontLoaded {
		a.fontLoaded = true
		if path, err := fonts.First(a.fontDirs); err == nil {
			a.loadFont(path)
		}
	}
	a.term.Update()

	if !a.gate.Done() {
		var clicked string
		if !a.term.IsOpen() {
			if n := a.ui.Clicked(); n != nil {
				clicked = n.ID
			}
		}
		a.gateFrame(clicked)
		return
	}

	a.keyboard.Poll()
	a.scene.Update()
	a.ctrl.SetInputEnabled(!a.term.IsOpen())
	a.ctrl.Update(a.scene.Rig(), dt)
	a.syncInspector()
}

// gateFrame runs one frame of the entry flow. Preloaded assets decode one per frame
// while the gate is showing, so the scene is usually ready when it mounts.
func (a *app) gateFrame(clicked string) {
	if !a.warm && a.scene.WarmAssets() == 0 {
		a.warm = true
		a.log.Info("assets preloaded")
	}
	if clicked == "" || !a.gate.Click(clicked) {
		return
	}
	a.ui.SetNodes(a.gate.Nodes())
	if a.gate.Done() {
		a.mount()
	}
}

// mount builds the walkthrough once the gate is passed.
func (a *app) mount() {
	a.scene.Mount()
	a.keyboard = input.NewKeyboardSource(a.bindings.Keys()...)
	a.ctrl = fps.New(a.settings, a.bindings, a.keyboard, a.debug.AttachCoords(), a.scene.Provider(), a.log)
	if !a.term.IsOpen() {
		a.scene.Lock()
	}
}

func (a *app) consoleToggled(open bool) {
	if open {
		a.scene.Unlock()
		return
	}
	if a.ctrl != nil {
		a.scene.Lock()
	}
}

// syncInspector shows the player inspector while the console is open.
func (a *app) syncInspector() {
	nodes := a.inspector.AppendNodes(nil, a.term.IsOpen(), a.selection())
	if !slices.Equal(nodes, a.ui.Nodes()) {
		a.ui.SetNodes(nodes)
	}
}

func (a *app) selection() ui.Selection {
	pos := a.scene.Camera.Position
	k := a.ctrl.Kinematics()
	return ui.Selection{
		Position:    [3]float32{pos.X, pos.Y, pos.Z},
		Velocity:    k.Velocity,
		Grounded:    k.Grounded,
		Outcome:     a.ctrl.LastOutcome().String(),
		Step:        string(a.ctrl.Settings().Step),
		Collidables: a.scene.Tags.Len(),
	}
}

func (a *app) draw() {
	if a.scene.Mounted() {
		a.scene.Draw()
	}
	a.ui.Draw()
	a.debug.Draw()
	a.term.Draw()
}

// close runs after the loop while the GL context still exists.
func (a *app) close() {
	if a.ctrl != nil {
		a.ctrl.Close()
		a.ctrl = nil
	}
	a.scene.Close()
	a.log.Info("walkthrough closed")
}

// loadFont loads path into the UI engine and shares it with the console and overlays.
func (a *app) loadFont(path string) error {
	if err := a.ui.LoadFont(path); err != nil {
		a.log.Warn("font not loaded", "path", path, "err", err)
		return fmt.Errorf("load font %s: %w", path, err)
	}
	a.term.SetFont(a.ui.Font())
	a.debug.SetFont(a.ui.Font())
	a.log.Info("font loaded", "path", path)
	return nil
}

func (a *app) savePrefs() error {
	if err := config.SavePrefs(a.prefsPath, a.prefs); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
