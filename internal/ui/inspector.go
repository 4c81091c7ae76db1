package ui

import (
	_ "embed"
	"fmt"
)

//go:embed inspector.css
var inspectorCSS string

// Inspector is a right-side panel showing the player's controller state while the
// console is open. It owns its nodes and rewrites their text on each AppendNodes.
type Inspector struct {
	panel    *Node
	title    *Node
	position *Node
	vertical *Node
	outcome  *Node
	world    *Node
}

// NewInspector creates an Inspector styled by .inspector, .inspector-title and .inspector-line.
func NewInspector() *Inspector {
	return &Inspector{
		panel:    NewNode(TypePanel, "inspector", "", ""),
		title:    NewNode(TypeLabel, "inspector-title", "", "Player"),
		position: NewNode(TypeLabel, "inspector-line", "inspector-position", ""),
		vertical: NewNode(TypeLabel, "inspector-line", "inspector-vertical", ""),
		outcome:  NewNode(TypeLabel, "inspector-line", "inspector-outcome", ""),
		world:    NewNode(TypeLabel, "inspector-line", "inspector-world", ""),
	}
}

// InspectorStylesheet returns the inspector's built-in styles.
func InspectorStylesheet() (*Stylesheet, error) {
	return ParseCSS(inspectorCSS)
}

// Selection is the data the inspector shows. The caller fills it from the controller;
// ui does not depend on fps.
type Selection struct {
	Position    [3]float32
	Velocity    float32
	Grounded    bool
	Outcome     string
	Step        string
	Collidables int
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels
// from sel. When visible is false, dst is returned unchanged.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	state := "airborne"
	if sel.Grounded {
		state = "grounded"
	}
	in.vertical.Text = fmt.Sprintf("Vertical: %s, v=%.3f", state, sel.Velocity)
	in.outcome.Text = fmt.Sprintf("Last move: %s (%s step)", sel.Outcome, sel.Step)
	in.world.Text = fmt.Sprintf("Collidables: %d", sel.Collidables)
	return append(dst, in.panel, in.title, in.position, in.vertical, in.outcome, in.world)
}
