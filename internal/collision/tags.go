// Package collision decides which scene nodes block the player and answers the per-frame
// "does this box hit anything" query.
package collision

import (
	"iter"

	"walkthrough/internal/scenegraph"
)

// Tags is a side-table of collidable nodes keyed by node identity. A node stays
// collidable until Forget is called for its subtree, which happens only when the
// subtree leaves the scene.
type Tags struct {
	set map[*scenegraph.Node]struct{}
}

// NewTags returns an empty table.
func NewTags() *Tags {
	return &Tags{set: make(map[*scenegraph.Node]struct{})}
}

// Mark flags a single node.
func (t *Tags) Mark(n *scenegraph.Node) {
	if n == nil {
		return
	}
	t.set[n] = struct{}{}
}

// MarkTree flags root and every descendant. A nil root (asset not loaded yet) is a
// no-op. Marking is idempotent.
func (t *Tags) MarkTree(root *scenegraph.Node) {
	if root == nil {
		return
	}
	for n := range root.All() {
		t.Mark(n)
	}
}

// Collidable reports whether n has been flagged.
func (t *Tags) Collidable(n *scenegraph.Node) bool {
	_, ok := t.set[n]
	return ok
}

// Forget drops root and its descendants from the table.
func (t *Tags) Forget(root *scenegraph.Node) {
	if root == nil {
		return
	}
	for n := range root.All() {
		delete(t.set, n)
	}
}

// Len returns the number of flagged nodes.
func (t *Tags) Len() int {
	return len(t.set)
}

// Collidables yields the flagged nodes under root in pre-order. The tree is walked
// fresh on each range, so membership and transforms are always current.
func Collidables(root *scenegraph.Node, tags *Tags) iter.Seq[*scenegraph.Node] {
	return func(yield func(*scenegraph.Node) bool) {
		if root == nil || tags == nil {
			return
		}
		for n := range root.All() {
			if !tags.Collidable(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
