package motionplan

import (
	"image/color"

	"go.viam.com/rrtplan/statespace"
)

// Colors used when drawing trees.
var (
	StartTreeColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	GoalTreeColor  = color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	SolutionColor  = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// A Visualizer renders planner output.
type Visualizer interface {
	DrawInitial(x statespace.State)
	DrawGoal(x statespace.State)
	DrawEdge(parent, child statespace.State, c color.Color)
	DrawSolution(states []statespace.State, c color.Color)
	Done() error
}

func drawTree(v Visualizer, tree *Tree, c color.Color) {
	for _, n := range tree.Nodes() {
		if n.IsRoot() {
			continue
		}
		v.DrawEdge(tree.Node(n.Parent).State, n.State, c)
	}
}

// DrawRRT draws every edge of the result's tree, its initial and goal states, and the solution
// if there is one, then calls Done.
func DrawRRT(v Visualizer, result *RRTResult) error {
	drawTree(v, result.Tree, StartTreeColor)
	v.DrawInitial(result.Tree.Root().State)
	v.DrawGoal(result.Goal)
	plan, err := result.Plan()
	if err == nil {
		v.DrawSolution(plan.States, SolutionColor)
	}
	return v.Done()
}

// DrawBiRRT draws both trees of the result, the initial and goal states, and the solution if
// there is one, then calls Done.
func DrawBiRRT(v Visualizer, result *BiRRTResult) error {
	drawTree(v, result.StartTree, StartTreeColor)
	drawTree(v, result.GoalTree, GoalTreeColor)
	v.DrawInitial(result.StartTree.Root().State)
	v.DrawGoal(result.GoalTree.Root().State)
	plan, err := result.Plan()
	if err == nil {
		v.DrawSolution(plan.States, SolutionColor)
	}
	return v.Done()
}
