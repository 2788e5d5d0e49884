package motionplan

import (
	"go.viam.com/rrtplan/statespace"
)

// extend steers the node of tree nearest to target toward it and adds the result to tree. It
// returns the new state, or nil if steering failed. It is the only place trees grow.
func extend(space statespace.StateSpace, tree *Tree, target statespace.State, reverse bool) statespace.State {
	near := tree.Nearest(target, space.Metric)
	x, u := space.NewState(tree.Node(near).State, target, reverse)
	if x == nil {
		return nil
	}
	tree.AddNode(x, near, u)
	return x
}
