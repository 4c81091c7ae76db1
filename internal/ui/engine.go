package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS parses a CSS file and appends its rules to the current stylesheet, so they
// override the built-in ones. On error the stylesheet is left unchanged.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read stylesheet: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.SetStylesheet(Merge(e.sheet, sheet))
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font (zero value when none).
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Nodes returns the current nodes.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		if rule.Matches(n) {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Matches reports whether the rule's selector names n's class or id.
func (r Rule) Matches(n *Node) bool {
	sel := r.Selector
	if len(sel) < 2 {
		return false
	}
	switch sel[0] {
	case '.':
		return n.Class == sel[1:]
	case '#':
		return n.ID == sel[1:]
	}
	return false
}

// Layout resolves styles (cached) and writes each node's screen rectangle into Bounds.
// Percentage positions are relative to the free space, so 50% centers the node.
func (e *Engine) Layout(screenW, screenH int32) {
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
		x, y := style.Left, style.Top
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}
		n.Bounds.X = float32(x)
		n.Bounds.Y = float32(y)
	}
}

// HitTest returns the topmost button containing (x, y), or nil. Uses the rectangles
// from the last Layout.
func (e *Engine) HitTest(x, y float32) *Node {
	p := rl.NewVector2(x, y)
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Type == TypeButton && rl.CheckCollisionPointRec(p, n.Bounds) {
			return n
		}
	}
	return nil
}

// Clicked returns the button under the mouse if the left button was pressed this frame.
func (e *Engine) Clicked() *Node {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return nil
	}
	m := rl.GetMousePosition()
	return e.HitTest(m.X, m.Y)
}

// Draw lays the nodes out for the current screen, then draws background, border and text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			e.drawText(n, style)
		}
	}
}

func (e *Engine) drawText(n *Node, style ComputedStyle) {
	size := float32(style.FontSize)
	pos := rl.NewVector2(n.Bounds.X+float32(style.Padding), n.Bounds.Y+float32(style.Padding))
	if style.Center {
		var m rl.Vector2
		if e.font.Texture.ID != 0 {
			m = rl.MeasureTextEx(e.font, n.Text, size, 1)
		} else {
			m = rl.NewVector2(float32(rl.MeasureText(n.Text, style.FontSize)), size)
		}
		pos.X = n.Bounds.X + (n.Bounds.Width-m.X)/2
		pos.Y = n.Bounds.Y + (n.Bounds.Height-m.Y)/2
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, n.Text, pos, size, 1, style.Color)
		return
	}
	rl.DrawText(n.Text, int32(pos.X), int32(pos.Y), style.FontSize, style.Color)
}

// HasStylesheet returns whether a stylesheet with rules is set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
