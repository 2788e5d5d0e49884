package statespace

import (
	"math/rand"
)

// Defaults for Basic2D and the spaces built on it.
const (
	defaultMaxStep       = 0.05
	defaultGoalTolerance = 0.01
)

// Basic2DConfig describes a bounded plane without obstacles.
type Basic2DConfig struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`

	Start []float64 `json:"start"`
	Goal  []float64 `json:"goal"`

	// Largest distance a single steering step may move.
	MaxStep float64 `json:"max_step"`

	// Squared distance to the goal below which the goal counts as reached.
	GoalTolerance float64 `json:"goal_tolerance"`
}

// NewBasic2DConfig returns the unit square problem from (0.5, 0.5) to (1, 1).
func NewBasic2DConfig() *Basic2DConfig {
	return &Basic2DConfig{
		XMin:          0,
		XMax:          1,
		YMin:          0,
		YMax:          1,
		Start:         []float64{0.5, 0.5},
		Goal:          []float64{1, 1},
		MaxStep:       defaultMaxStep,
		GoalTolerance: defaultGoalTolerance,
	}
}

// Basic2D is a bounded 2-D point space with no obstacles.
type Basic2D struct {
	*planar
}

// NewBasic2D creates a Basic2D space. It returns an error if the start or goal lie outside of
// the bounds.
func NewBasic2D(cfg *Basic2DConfig, rng *rand.Rand) (*Basic2D, error) {
	p, err := newPlanar(NewBounds(cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax), cfg.Start, cfg.Goal, cfg.MaxStep, cfg.GoalTolerance, rng)
	if err != nil {
		return nil, err
	}
	return &Basic2D{p}, nil
}

// RandomState returns a state drawn uniformly from the bounds.
func (b *Basic2D) RandomState() State {
	return b.uniformState()
}

// ValidState returns whether x is within the bounds.
func (b *Basic2D) ValidState(x State) bool {
	return b.inBounds(x)
}

// NewState takes a step of at most MaxStep from xNear along the vector to xTarget.
func (b *Basic2D) NewState(xNear, xTarget State, reverse bool) (State, Input) {
	return b.newState(xNear, xTarget, reverse, b.ValidState)
}
