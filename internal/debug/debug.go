package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	coordsPadding  = 10
)

// Semi-transparent black behind the coordinate readout.
var coordsBackdrop = rl.NewColor(0, 0, 0, 178)

// Debug holds runtime debugging features: FPS and memory counters (top-right) and the
// coordinate readout (top-left). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	coords       *Coords
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// AttachCoords creates the coordinate readout, replacing any previous one.
func (d *Debug) AttachCoords() *Coords {
	d.coords = &Coords{owner: d}
	return d.coords
}


// Draw renders any enabled debug overlays. Call last in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := float32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y)
	}

	if c := d.coords; c != nil && c.visible && c.text != "" {
		box := coordsBox(d.measure(c.text))
		rl.DrawRectangleRec(box, coordsBackdrop)
		d.drawText(c.text, box.X+coordsPadding, box.Y+coordsPadding, rl.White)
	}
}

// coordsBox is the backdrop of the coordinate readout for text of the given width.
func coordsBox(textWidth float32) rl.Rectangle {
	return rl.NewRectangle(fpsPadding, fpsPadding, textWidth+2*coordsPadding, fpsFontSize+2*coordsPadding)
}

func (d *Debug) drawRight(text string, y float32) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	d.drawText(text, screenW-d.measure(text)-fpsPadding, y, rl.Green)
}

func (d *Debug) measure(text string) float32 {
	if d.font.Texture.ID != 0 {
		return rl.MeasureTextEx(d.font, text, fpsFontSize, 1).X
	}
	return float32(rl.MeasureText(text, fpsFontSize))
}

func (d *Debug) drawText(text string, x, y float32, c rl.Color) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(x, y), fpsFontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fpsFontSize, c)
}
