package motionplan

import (
	"math/rand"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/statespace"
)

// BiRRTResult is the outcome of a bidirectional build.
type BiRRTResult struct {
	Status Status

	// StartTree is rooted at the initial state and GoalTree at the goal state, whichever tree
	// led on the final iteration.
	StartTree *Tree
	GoalTree  *Tree

	// The state both trees reached, or nil if the planner was exhausted.
	Meet statespace.State

	Iterations int

	startIdx int
	goalIdx  int
}

// Plan returns the path from the initial state to the goal state through the meeting state.
func (r *BiRRTResult) Plan() (*Plan, error) {
	if !r.Status.Solved() {
		return nil, errPlannerFailed
	}
	startStates, startInputs := r.StartTree.pathFrom(r.startIdx)
	goalStates, goalInputs := r.GoalTree.pathFrom(r.goalIdx)
	return spliceTreePaths(startStates, startInputs, goalStates, goalInputs), nil
}

// BiRRTPlanner grows one tree from the initial state and one from the goal state, alternating
// which one leads, until they reach the same state.
type BiRRTPlanner struct {
	*planner
}

// NewBiRRTPlanner creates a BiRRTPlanner. A nil seed or logger is replaced by a fixed seed or a
// blank logger, and nil options by the defaults. GoalBias is not used.
func NewBiRRTPlanner(space statespace.StateSpace, seed *rand.Rand, logger logging.Logger, opt *PlannerOptions) (*BiRRTPlanner, error) {
	mp, err := newPlanner(space, seed, logger, opt)
	if err != nil {
		return nil, err
	}
	return &BiRRTPlanner{planner: mp}, nil
}

// Build grows trees from xInit and xGoal until they meet or MaxIter iterations have run.
// Edges of the goal tree hold inputs that move from the child back toward the goal root.
func (mp *BiRRTPlanner) Build(xInit, xGoal statespace.State) (*BiRRTResult, error) {
	if !validQuery(mp.space, xInit, xGoal) {
		return nil, newBadQueryError(xInit, xGoal)
	}
	startTree := NewTree(xInit.Copy())
	goalTree := NewTree(xGoal.Copy())
	result := &BiRRTResult{Status: Growing, StartTree: startTree, GoalTree: goalTree}

	if xInit.Equal(xGoal) {
		mp.logger.Debug("BiRRT initial state equals the goal state")
		result.Status = Connected
		result.Meet = startTree.Root().State
		return result, nil
	}

	t1, t2 := startTree, goalTree
	reverse := false
	for i := 0; i < mp.planOpts.MaxIter; i++ {
		mp.logProgress("BiRRT", i, startTree, goalTree)
		result.Iterations = i + 1

		xRand := mp.space.RandomState()
		xNew1 := extend(mp.space, t1, xRand, reverse)
		if xNew1 != nil {
			xNew2 := extend(mp.space, t2, xNew1, !reverse)
			if xNew2 != nil && xNew1.Equal(xNew2) {
				mp.logger.Debugf("BiRRT connected after %d iterations with trees of %d and %d nodes",
					result.Iterations, startTree.Len(), goalTree.Len())
				result.Status = Connected
				result.Meet = xNew1
				// Both extends appended their node last.
				result.startIdx = startTree.Len() - 1
				result.goalIdx = goalTree.Len() - 1
				return result, nil
			}
		}
		t1, t2 = t2, t1
		reverse = !reverse
	}
	mp.logger.Debugf("BiRRT exhausted %d iterations with trees of %d and %d nodes",
		mp.planOpts.MaxIter, startTree.Len(), goalTree.Len())
	result.Status = Exhausted
	return result, nil
}
