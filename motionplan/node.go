package motionplan

import (
	"go.viam.com/rrtplan/statespace"
)

// rootParent is the parent index of a tree's root.
const rootParent = -1

// Node is a state in a Tree together with the edge that reached it.
type Node struct {
	State statespace.State

	// Index of the parent node in the tree, or -1 for the root.
	Parent int

	// Input that moved the parent to State. For trees grown in reverse it moves State back to
	// the parent instead. Nil for the root.
	Input statespace.Input
}

// IsRoot returns whether the node is the root of its tree.
func (n Node) IsRoot() bool {
	return n.Parent == rootParent
}
