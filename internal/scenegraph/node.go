// Package scenegraph is the engine's node tree: local transforms composed into world
// transforms, optional geometry bounds per node, and pre-order traversal.
package scenegraph

import (
	"iter"

	"walkthrough/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one element of the scene tree. Rotation is Euler XYZ in radians.
// Bounds is the node's own geometry in local space; nil for pure grouping nodes.
// Model, when set, is drawn with the node's world matrix.
type Node struct {
	Name     string
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
	Visible  bool
	Bounds   *rl.BoundingBox
	Model    *rl.Model

	parent   *Node
	children []*Node
}

// New returns a visible node with unit scale at the origin.
func New(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   rl.NewVector3(1, 1, 1),
		Visible: true,
	}
}

// NewBox returns a node whose geometry is a box of the given size centered on its origin.
func NewBox(name string, size rl.Vector3) *Node {
	n := New(name)
	b := physics.BoxFromCenterAndSize(rl.Vector3Zero(), size)
	n.Bounds = &b
	return n
}

// Add attaches child under n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. Returns false if child was not a direct child.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix composes scale, rotation and translation (applied in that order).
func (n *Node) LocalMatrix() rl.Matrix {
	m := rl.MatrixMultiply(rl.MatrixScale(n.Scale.X, n.Scale.Y, n.Scale.Z), rl.MatrixRotateXYZ(n.Rotation))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z))
}

// WorldMatrix is recomputed from the parent chain on every call so it always reflects
// the current transforms.
func (n *Node) WorldMatrix() rl.Matrix {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = rl.MatrixMultiply(m, p.LocalMatrix())
	}
	return m
}

// All yields n and every descendant in pre-order. The sequence walks the live tree each
// time it is ranged over. Returning false from the loop body stops the walk.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// WorldBounds returns the world-space box enclosing the geometry of n and all its
// descendants. Nodes without geometry contribute nothing; the result is empty when the
// subtree has no geometry at all.
func (n *Node) WorldBounds() rl.BoundingBox {
	out := physics.EmptyBox()
	for c := range n.All() {
		if c.Bounds == nil {
			continue
		}
		out = physics.Union(out, physics.TransformBox(*c.Bounds, c.WorldMatrix()))
	}
	return out
}

// Find returns the first node in pre-order with the given name.
func (n *Node) Find(name string) *Node {
	for c := range n.All() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
