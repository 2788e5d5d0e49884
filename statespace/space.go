// Package statespace defines the contract a planning space must satisfy to be searched by the
// planners in motionplan, along with the concrete spaces the planners ship with.
package statespace

import (
	"github.com/golang/geo/r2"
)

// StateSpace defines a space to plan in: how to sample it, how to measure it, how to move
// through it, and which part of it is free.
type StateSpace interface {
	// RandomState returns a sample from the space's sampling distribution. The sample is a target
	// to steer toward and need not be valid.
	RandomState() State

	// Metric returns a non-negative distance used to rank nearest neighbours. It must return the
	// same value for the same arguments, and must use the shortest arc for angular components.
	Metric(x1, x2 State) float64

	// NewState steers from xNear toward xTarget by at most one step. It returns the new state
	// and the input that produced it, or nil for both if the new state is not valid. If reverse
	// is set, the returned input is negated and moves from the new state back to xNear.
	NewState(xNear, xTarget State, reverse bool) (State, Input)

	// ValidState returns whether x lies within the space's bounds and outside every obstacle.
	ValidState(x State) bool

	// GoalReached returns whether x is within the goal region.
	GoalReached(x State) bool
}

// Problem is a StateSpace that also knows the query it was built for.
type Problem interface {
	StateSpace

	// Start returns the initial state.
	Start() State

	// Goal returns the goal state.
	Goal() State

	// Bounds returns the planar workspace of the space.
	Bounds() r2.Rect
}
