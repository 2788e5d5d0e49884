package motionplan

import (
	"math/rand"

	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/statespace"
)

// Supported planning algorithms.
const (
	AlgorithmRRT   = "rrt"
	AlgorithmBiRRT = "birrt"
)

// Stats describes the work a build did.
type Stats struct {
	Iterations    int
	StartTreeSize int
	// Zero for RRT.
	GoalTreeSize int
}

// Result is the outcome of a build by any planner.
type Result interface {
	Solved() bool
	Plan() (*Plan, error)
	Stats() Stats
	Draw(v Visualizer) error
}

// A Planner builds trees between two states.
type Planner interface {
	Solve(xInit, xGoal statespace.State) (Result, error)
}

// NewPlanner creates a planner running the named algorithm.
func NewPlanner(
	algorithm string,
	space statespace.StateSpace,
	seed *rand.Rand,
	logger logging.Logger,
	opt *PlannerOptions,
) (Planner, error) {
	mp, err := newPlanner(space, seed, logger, opt)
	if err != nil {
		return nil, err
	}
	switch algorithm {
	case AlgorithmRRT:
		return &RRTPlanner{planner: mp}, nil
	case AlgorithmBiRRT:
		return &BiRRTPlanner{planner: mp}, nil
	default:
		return nil, errors.Errorf("unknown planning algorithm %q", algorithm)
	}
}

// Solve runs Build.
func (mp *RRTPlanner) Solve(xInit, xGoal statespace.State) (Result, error) {
	r, err := mp.Build(xInit, xGoal)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Solve runs Build.
func (mp *BiRRTPlanner) Solve(xInit, xGoal statespace.State) (Result, error) {
	r, err := mp.Build(xInit, xGoal)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Solved returns whether the goal was reached.
func (r *RRTResult) Solved() bool {
	return r.Status.Solved()
}

// Stats returns the iterations run and the size of the tree.
func (r *RRTResult) Stats() Stats {
	return Stats{Iterations: r.Iterations, StartTreeSize: r.Tree.Len()}
}

// Draw runs DrawRRT.
func (r *RRTResult) Draw(v Visualizer) error {
	return DrawRRT(v, r)
}

// Solved returns whether the trees met.
func (r *BiRRTResult) Solved() bool {
	return r.Status.Solved()
}

// Stats returns the iterations run and the size of both trees.
func (r *BiRRTResult) Stats() Stats {
	return Stats{Iterations: r.Iterations, StartTreeSize: r.StartTree.Len(), GoalTreeSize: r.GoalTree.Len()}
}

// Draw runs DrawBiRRT.
func (r *BiRRTResult) Draw(v Visualizer) error {
	return DrawBiRRT(v, r)
}
