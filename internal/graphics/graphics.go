package graphics

import (
	"walkthrough/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the main loop. Each frame it calls update with the
// frame time, then clears to the configured colour and calls draw. closing runs once
// after the loop ends, while the GL context still exists, so GPU resources can be freed.
// ESC is not an exit key; it belongs to the console. Close via the window button.
func Run(win config.Window, update func(dt float32), draw func(), closing func()) {
	w, h := win.Width, win.Height
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	}
	rl.InitWindow(w, h, win.Title)
	defer rl.CloseWindow()
	if win.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	c := win.ClearColor
	clear := rl.NewColor(c[0], c[1], c[2], c[3])
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(clear)
		draw()
		rl.EndDrawing()
	}
	if closing != nil {
		closing()
	}
}
