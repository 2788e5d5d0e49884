// Package motionplan grows rapidly-exploring random trees over a statespace.StateSpace to find
// a path between two states.
package motionplan

import (
	"math/rand"

	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/statespace"
)

// Status is the state a planner finished a build in.
type Status int

// Planner statuses.
const (
	Growing Status = iota
	Succeeded
	Connected
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Growing:
		return "growing"
	case Succeeded:
		return "succeeded"
	case Connected:
		return "connected"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Solved returns whether the status ends a build with a path.
func (s Status) Solved() bool {
	return s == Succeeded || s == Connected
}

// planner holds what RRT and BiRRT have in common.
type planner struct {
	space    statespace.StateSpace
	randseed *rand.Rand
	logger   logging.Logger
	planOpts *PlannerOptions
}

func newPlanner(space statespace.StateSpace, seed *rand.Rand, logger logging.Logger, opt *PlannerOptions) (*planner, error) {
	if space == nil {
		return nil, errors.New("planner requires a state space")
	}
	if opt == nil {
		opt = NewPlannerOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	if seed == nil {
		//nolint:gosec
		seed = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = logging.NewBlankLogger("motionplan")
	}
	return &planner{
		space:    space,
		randseed: seed,
		logger:   logger,
		planOpts: opt,
	}, nil
}

// Options returns the options the planner runs with.
func (mp *planner) Options() PlannerOptions {
	return *mp.planOpts
}

func (mp *planner) logProgress(name string, i int, trees ...*Tree) {
	every := mp.planOpts.logEvery()
	if every == 0 || i == 0 || i%every != 0 {
		return
	}
	sizes := make([]int, 0, len(trees))
	for _, t := range trees {
		sizes = append(sizes, t.Len())
	}
	mp.logger.Debugw(name+" progress", "iteration", i, "max_iter", mp.planOpts.MaxIter, "tree_sizes", sizes)
}

// validQuery returns whether both states are valid states of space, which also rejects states of
// the wrong dimension.
func validQuery(space statespace.StateSpace, xInit, xGoal statespace.State) bool {
	return len(xInit) > 0 && len(xInit) == len(xGoal) && space.ValidState(xInit) && space.ValidState(xGoal)
}
