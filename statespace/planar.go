package statespace

import (
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/utils"
)

// planar is the bounded 2-D point space shared by Basic2D, Bitmap and Circles. Each of them
// supplies its own validity check to newState.
type planar struct {
	bounds        r2.Rect
	start         State
	goal          State
	maxStep       float64
	goalTolerance float64
	randseed      *rand.Rand
}

func newPlanar(bounds r2.Rect, start, goal []float64, maxStep, goalTolerance float64, rng *rand.Rand) (*planar, error) {
	var errs error
	if bounds.IsEmpty() {
		errs = multierr.Append(errs, newEmptyBoundsError(bounds))
	}
	if maxStep <= 0 {
		errs = multierr.Append(errs, newNonPositiveError("max_step", maxStep))
	}
	if goalTolerance < 0 {
		errs = multierr.Append(errs, utils.NewOutOfRangeError("goal_tolerance", goalTolerance, ">= 0"))
	}
	if len(start) != 2 {
		errs = multierr.Append(errs, newDimensionError("initial", start, 2))
	} else if !bounds.ContainsPoint(r2.Point{X: start[0], Y: start[1]}) {
		errs = multierr.Append(errs, newOutOfBoundsError("initial", start, bounds))
	}
	if len(goal) != 2 {
		errs = multierr.Append(errs, newDimensionError("goal", goal, 2))
	} else if !bounds.ContainsPoint(r2.Point{X: goal[0], Y: goal[1]}) {
		errs = multierr.Append(errs, newOutOfBoundsError("goal", goal, bounds))
	}
	if errs != nil {
		return nil, errs
	}
	if rng == nil {
		//nolint:gosec
		rng = rand.New(rand.NewSource(1))
	}
	return &planar{
		bounds:        bounds,
		start:         State(start).Copy(),
		goal:          State(goal).Copy(),
		maxStep:       maxStep,
		goalTolerance: goalTolerance,
		randseed:      rng,
	}, nil
}

// NewBounds returns the rectangle [xMin, xMax] x [yMin, yMax].
func NewBounds(xMin, xMax, yMin, yMax float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: xMin, Hi: xMax}, Y: r1.Interval{Lo: yMin, Hi: yMax}}
}

// Start returns the initial state.
func (p *planar) Start() State {
	return p.start.Copy()
}

// Goal returns the goal state.
func (p *planar) Goal() State {
	return p.goal.Copy()
}

// Bounds returns the rectangle states are confined to.
func (p *planar) Bounds() r2.Rect {
	return p.bounds
}

// MaxStep returns the largest distance a single call to NewState may move.
func (p *planar) MaxStep() float64 {
	return p.maxStep
}

// Metric returns the squared euclidean distance between two positions.
func (p *planar) Metric(x1, x2 State) float64 {
	d := toPoint(x2).Sub(toPoint(x1))
	return d.Dot(d)
}

// GoalReached returns whether the squared distance from x to the goal is within the goal tolerance.
func (p *planar) GoalReached(x State) bool {
	return p.Metric(x, p.goal) <= p.goalTolerance
}

func (p *planar) inBounds(x State) bool {
	return len(x) == 2 && p.bounds.ContainsPoint(toPoint(x))
}

func (p *planar) uniformState() State {
	return State{
		p.bounds.X.Lo + p.randseed.Float64()*p.bounds.X.Length(),
		p.bounds.Y.Lo + p.randseed.Float64()*p.bounds.Y.Length(),
	}
}

// steer moves from xNear toward xTarget by at most maxStep. A target closer than maxStep is
// returned unchanged.
func (p *planar) steer(xNear, xTarget State) (State, Input) {
	near, target := toPoint(xNear), toPoint(xTarget)
	u := target.Sub(near)
	n := u.Norm()
	if n < p.maxStep {
		return State{target.X, target.Y}, Input{u.X, u.Y}
	}
	u = u.Mul(p.maxStep / n)
	x := near.Add(u)
	return State{x.X, x.Y}, Input{u.X, u.Y}
}

func (p *planar) newState(xNear, xTarget State, reverse bool, valid func(State) bool) (State, Input) {
	x, u := p.steer(xNear, xTarget)
	if !valid(x) {
		return nil, nil
	}
	if reverse {
		u = u.Negate()
	}
	return x, u
}

func toPoint(x State) r2.Point {
	return r2.Point{X: x[0], Y: x[1]}
}
