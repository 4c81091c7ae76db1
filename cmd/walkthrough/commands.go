package main

import (
	"errors"
	"fmt"
	"strconv"

	"walkthrough/internal/commands"
	"walkthrough/internal/fonts"
	"walkthrough/internal/fps"
	"walkthrough/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *app) registerCommands() {
	r := a.reg

	r.RegisterToggle("fps", "the FPS counter", func(on bool) error {
		a.debug.SetShowFPS(on)
		a.prefs.ShowFPS = on
		return a.savePrefs()
	})
	r.RegisterToggle("memalloc", "the memory counter", func(on bool) error {
		a.debug.SetShowMemAlloc(on)
		a.prefs.ShowMemAlloc = on
		return a.savePrefs()
	})
	r.RegisterToggle("grid", "the editor grid", func(on bool) error {
		a.scene.SetGridVisible(on)
		a.prefs.GridVisible = on
		return a.savePrefs()
	})
	r.RegisterToggle("bounds", "collidable bounding boxes", func(on bool) error {
		a.scene.ShowBounds = on
		return nil
	})

	tp := commands.NewFlagSet("tp")
	r.Register("tp", "x y z  move the camera", tp, func() error {
		pos, err := parseVec3(tp.Args())
		if err != nil {
			return err
		}
		a.scene.Rig().SetPosition(pos)
		a.log.Log("teleported to " + input.FormatPosition(pos))
		return nil
	})

	r.Register("pos", " log the camera position", nil, func() error {
		a.log.Log(input.FormatPosition(a.scene.Camera.Position))
		return nil
	})

	node := commands.NewFlagSet("node")
	r.Register("node", "name  log a scene node's world bounds", node, func() error {
		if node.NArg() != 1 {
			return errors.New("want a node name")
		}
		n := a.scene.World.Find(node.Arg(0))
		if n == nil {
			return fmt.Errorf("no node named %q", node.Arg(0))
		}
		b := n.WorldBounds()
		a.log.Log(fmt.Sprintf("%s: min %s  max %s  collidable=%v", n.Name,
			input.FormatPosition(b.Min), input.FormatPosition(b.Max), a.scene.Tags.Collidable(n)))
		return nil
	})

	step := commands.NewFlagSet("step")
	r.Register("step", "fixed|measured  frame time handling", step, func() error {
		if step.NArg() != 1 {
			return errors.New("want one of fixed or measured")
		}
		mode, err := fps.ParseStepMode(step.Arg(0))
		if err != nil {
			return err
		}
		a.settings.Step = mode
		if a.ctrl != nil {
			a.ctrl.SetStepMode(mode)
		}
		a.log.Info("step mode changed", "mode", string(mode))
		return nil
	})

	look := commands.NewFlagSet("look")
	sensitivity := look.Float64("sensitivity", 0, "degrees per pixel of mouse travel")
	r.Register("look", "--sensitivity N  mouse look speed", look, func() error {
		defer func() { *sensitivity = 0 }()
		if *sensitivity <= 0 {
			return errors.New("--sensitivity must be positive")
		}
		a.scene.Sensitivity = float32(*sensitivity)
		a.prefs.MouseSensitivity = float32(*sensitivity)
		return a.savePrefs()
	})

	r.Register("forget", " ask the age check again next run", nil, func() error {
		if err := a.gate.Forget(); err != nil {
			return fmt.Errorf("clear age flag: %w", err)
		}
		a.log.Log("age check will be asked next run")
		return nil
	})

	font := commands.NewFlagSet("font")
	r.Register("font", "name  switch the console and UI font", font, func() error {
		if font.NArg() != 1 {
			return errors.New("want a font name")
		}
		_, path, err := fonts.FindFont(a.fontDirs, font.Arg(0))
		if err != nil {
			return err
		}
		return a.loadFont(path)
	})

	r.Register("help", " list commands", nil, func() error {
		for _, line := range r.Help() {
			a.log.Log("cmd " + line)
		}
		return nil
	})
}

func parseVec3(args []string) (rl.Vector3, error) {
	if len(args) != 3 {
		return rl.Vector3{}, fmt.Errorf("want x y z, got %d values", len(args))
	}
	var v [3]float32
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("bad coordinate %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return rl.NewVector3(v[0], v[1], v[2]), nil
}
