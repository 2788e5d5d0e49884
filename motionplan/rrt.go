package motionplan

import (
	"math/rand"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/statespace"
)

// RRTResult is the outcome of a single tree build.
type RRTResult struct {
	Status Status

	// Tree grown from the initial state.
	Tree *Tree

	// The state that reached the goal region, or nil if the planner was exhausted.
	Reached statespace.State

	// Goal the tree was grown toward.
	Goal statespace.State

	Iterations int

	reachedIdx int
}

// Plan returns the path from the root to the state that reached the goal.
func (r *RRTResult) Plan() (*Plan, error) {
	if !r.Status.Solved() {
		return nil, errPlannerFailed
	}
	states, inputs := r.Tree.pathFrom(r.reachedIdx)
	return newPlanFromTreePath(states, inputs), nil
}

// RRTPlanner grows a single tree from the initial state, biased toward the goal.
type RRTPlanner struct {
	*planner
}

// NewRRTPlanner creates an RRTPlanner. A nil seed or logger is replaced by a fixed seed or a
// blank logger, and nil options by the defaults.
func NewRRTPlanner(space statespace.StateSpace, seed *rand.Rand, logger logging.Logger, opt *PlannerOptions) (*RRTPlanner, error) {
	mp, err := newPlanner(space, seed, logger, opt)
	if err != nil {
		return nil, err
	}
	return &RRTPlanner{planner: mp}, nil
}

// Build grows a tree from xInit until a new state reaches the goal region or MaxIter iterations
// have run. Running out of iterations is reported through the result's status, not an error.
func (mp *RRTPlanner) Build(xInit, xGoal statespace.State) (*RRTResult, error) {
	if !validQuery(mp.space, xInit, xGoal) {
		return nil, newBadQueryError(xInit, xGoal)
	}
	tree := NewTree(xInit.Copy())
	result := &RRTResult{Status: Growing, Tree: tree, Goal: xGoal.Copy()}

	if mp.space.GoalReached(xInit) {
		mp.logger.Debug("RRT initial state is within the goal region")
		result.Status = Succeeded
		result.Reached = tree.Root().State
		return result, nil
	}

	for i := 0; i < mp.planOpts.MaxIter; i++ {
		mp.logProgress("RRT", i, tree)
		result.Iterations = i + 1

		var xRand statespace.State
		if mp.randseed.Float64() < mp.planOpts.GoalBias {
			xRand = xGoal
		} else {
			xRand = mp.space.RandomState()
		}

		xNew := extend(mp.space, tree, xRand, false)
		if xNew != nil && mp.space.GoalReached(xNew) {
			mp.logger.Debugf("RRT found solution after %d iterations with %d nodes", result.Iterations, tree.Len())
			result.Status = Succeeded
			result.Reached = xNew
			result.reachedIdx = tree.Len() - 1
			return result, nil
		}
	}
	mp.logger.Debugf("RRT exhausted %d iterations with %d nodes", mp.planOpts.MaxIter, tree.Len())
	result.Status = Exhausted
	return result, nil
}
