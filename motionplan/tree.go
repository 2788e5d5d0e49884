package motionplan

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/rrtplan/statespace"
)

// Metric is a distance between two states, as given by StateSpace.Metric.
type Metric func(x1, x2 statespace.State) float64

// Tree is a rooted tree of states stored as an arena. Nodes are addressed by insertion index
// and every node other than the root refers to a parent inserted before it.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding only root.
func NewTree(root statespace.State) *Tree {
	return &Tree{nodes: []Node{{State: root, Parent: rootParent}}}
}

// AddNode appends a child of the node at index parent and returns its index. It panics if parent
// is not the index of an existing node.
func (t *Tree) AddNode(state statespace.State, parent int, input statespace.Input) int {
	if parent < 0 || parent >= len(t.nodes) {
		panic(errors.Errorf("cannot add node with parent %d to tree of %d nodes", parent, len(t.nodes)))
	}
	t.nodes = append(t.nodes, Node{State: state, Parent: parent, Input: input})
	return len(t.nodes) - 1
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node at index i.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Nodes returns all nodes in insertion order. The returned slice must not be modified.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.nodes[0]
}

// Nearest returns the index of the node minimizing metric(node.State, x). Ties go to the node
// inserted first.
func (t *Tree) Nearest(x statespace.State, metric Metric) int {
	best := 0
	bestDist := math.Inf(1)
	for i, n := range t.nodes {
		if dist := metric(n.State, x); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// Find returns the index of the first node whose state starts with x.
func (t *Tree) Find(x statespace.State) (int, bool) {
	for i, n := range t.nodes {
		if n.State.HasPrefix(x) {
			return i, true
		}
	}
	return 0, false
}

// PathTo returns the states from the first node matching x back to the root, along with the input
// of every edge walked. States are in node to root order and there is one input fewer than
// states. Both are nil if no node matches x.
func (t *Tree) PathTo(x statespace.State) ([]statespace.State, []statespace.Input) {
	i, ok := t.Find(x)
	if !ok {
		return nil, nil
	}
	return t.pathFrom(i)
}

func (t *Tree) pathFrom(i int) ([]statespace.State, []statespace.Input) {
	var states []statespace.State
	var inputs []statespace.Input
	for ; ; i = t.nodes[i].Parent {
		n := t.nodes[i]
		states = append(states, n.State)
		if n.IsRoot() {
			return states, inputs
		}
		inputs = append(inputs, n.Input)
	}
}
