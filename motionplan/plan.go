package motionplan

import (
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"

	"go.viam.com/rrtplan/statespace"
)

// Plan is a path of states from an initial state to the goal, and the inputs between them.
// Inputs[i] moves States[i] to States[i+1].
type Plan struct {
	States []statespace.State
	Inputs []statespace.Input
}

// newPlanFromTreePath reverses a node to root tree path.
func newPlanFromTreePath(states []statespace.State, inputs []statespace.Input) *Plan {
	states = append([]statespace.State(nil), states...)
	inputs = append([]statespace.Input(nil), inputs...)
	mutable.Reverse(states)
	mutable.Reverse(inputs)
	return &Plan{States: states, Inputs: inputs}
}

// spliceTreePaths joins a start tree path and a goal tree path that both begin at the meeting
// state. Goal tree inputs already point toward the goal root.
func spliceTreePaths(
	startStates []statespace.State,
	startInputs []statespace.Input,
	goalStates []statespace.State,
	goalInputs []statespace.Input,
) *Plan {
	plan := newPlanFromTreePath(startStates, startInputs)
	plan.States = append(plan.States, goalStates[1:]...)
	plan.Inputs = append(plan.Inputs, goalInputs...)
	return plan
}

// Len returns the number of states in the plan.
func (p *Plan) Len() int {
	return len(p.States)
}

// Length returns the sum of metric over consecutive states.
func (p *Plan) Length(metric Metric) float64 {
	if len(p.States) < 2 {
		return 0
	}
	return lo.SumBy(lo.Range(len(p.States)-1), func(i int) float64 {
		return metric(p.States[i], p.States[i+1])
	})
}
