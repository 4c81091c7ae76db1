package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types the engine knows. Only buttons take part in hit testing.
const (
	TypePanel  = "panel"
	TypeLabel  = "label"
	TypeButton = "button"
)

// Node is a single UI element. It has optional class and id for CSS matching, bounds
// (written by Layout), and optional text.
type Node struct {
	Type   string
	Class  string // e.g. "menu" for .menu
	ID     string // e.g. "main" for #main
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Button is shorthand for a button node; id is what click handlers switch on.
func Button(class, id, text string) *Node {
	return NewNode(TypeButton, class, id, text)
}
