package statespace

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/rimage"
	"go.viam.com/rrtplan/utils"
)

const (
	defaultRectangleWidth         = 20
	defaultRectangleHeight        = 40
	defaultRectangleMaxStep       = 20
	defaultRectangleGoalTolerance = 10
	defaultGridX                  = 4
	defaultGridY                  = 8
)

var defaultMaxRotation = utils.DegToRad(10)

// RectangleConfig describes an oriented rectangle moving through a raster map.
type RectangleConfig struct {
	// Path to the map image. Only used when the space is built from attributes.
	Map string `json:"map"`

	// Start and Goal are (x, y, theta).
	Start []float64 `json:"start"`
	Goal  []float64 `json:"goal"`

	// Size of the rectangle in pixels, along the body x and y axes.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Number of collision sample points along each body axis, corners included.
	GridX int `json:"grid_x"`
	GridY int `json:"grid_y"`

	MaxStep     float64 `json:"max_step"`
	MaxRotation float64 `json:"max_rotation"`

	// Distance to the goal, in combined position and radian units, within which the goal is reached.
	GoalTolerance float64 `json:"goal_tolerance"`

	// Disables the zero rotation retry when a rotating step collides.
	DisableRotationFallback bool `json:"disable_rotation_fallback"`
}

// NewRectangleConfig returns a RectangleConfig with default footprint, grid and step sizes.
func NewRectangleConfig() *RectangleConfig {
	return &RectangleConfig{
		Width:         defaultRectangleWidth,
		Height:        defaultRectangleHeight,
		GridX:         defaultGridX,
		GridY:         defaultGridY,
		MaxStep:       defaultRectangleMaxStep,
		MaxRotation:   defaultMaxRotation,
		GoalTolerance: defaultRectangleGoalTolerance,
	}
}

// Rectangle is the configuration space of a rectangle translating and rotating in a raster map.
// States are (x, y, theta) with theta in [-pi, pi]. Collisions are checked on a fixed grid of
// body frame points.
type Rectangle struct {
	raster        rimage.RasterMap
	bounds        r2.Rect
	start         State
	goal          State
	width         float64
	height        float64
	maxStep       float64
	maxRotation   float64
	goalTolerance float64
	fallback      bool
	grid          []r2.Point
	randseed      *rand.Rand
}

// NewRectangle creates a Rectangle space over raster.
func NewRectangle(raster rimage.RasterMap, cfg *RectangleConfig, rng *rand.Rand) (*Rectangle, error) {
	if raster == nil || raster.Width() == 0 || raster.Height() == 0 {
		return nil, errors.New("rectangle space requires a non-empty raster map")
	}
	var err error
	if cfg.Width <= 0 {
		err = multierr.Append(err, newNonPositiveError("width", cfg.Width))
	}
	if cfg.Height <= 0 {
		err = multierr.Append(err, newNonPositiveError("height", cfg.Height))
	}
	if cfg.GridX < 2 || cfg.GridY < 2 {
		err = multierr.Append(err, errors.Errorf("collision grid must be at least 2x2, got %dx%d", cfg.GridX, cfg.GridY))
	}
	if cfg.MaxStep <= 0 {
		err = multierr.Append(err, newNonPositiveError("max_step", cfg.MaxStep))
	}
	if cfg.MaxRotation <= 0 {
		err = multierr.Append(err, newNonPositiveError("max_rotation", cfg.MaxRotation))
	}
	if cfg.GoalTolerance < 0 {
		err = multierr.Append(err, utils.NewOutOfRangeError("goal_tolerance", cfg.GoalTolerance, ">= 0"))
	}
	if len(cfg.Start) != 3 {
		err = multierr.Append(err, newDimensionError("initial", cfg.Start, 3))
	}
	if len(cfg.Goal) != 3 {
		err = multierr.Append(err, newDimensionError("goal", cfg.Goal, 3))
	}
	if err != nil {
		return nil, err
	}
	if rng == nil {
		//nolint:gosec
		rng = rand.New(rand.NewSource(1))
	}

	r := &Rectangle{
		raster:        raster,
		bounds:        NewBounds(0, float64(raster.Width()-1), 0, float64(raster.Height()-1)),
		start:         State(cfg.Start).Copy(),
		goal:          State(cfg.Goal).Copy(),
		width:         cfg.Width,
		height:        cfg.Height,
		maxStep:       cfg.MaxStep,
		maxRotation:   cfg.MaxRotation,
		goalTolerance: cfg.GoalTolerance,
		fallback:      !cfg.DisableRotationFallback,
		grid:          collisionGrid(cfg.Width, cfg.Height, cfg.GridX, cfg.GridY),
		randseed:      rng,
	}
	if !r.ValidState(r.start) {
		err = multierr.Append(err, newInvalidPoseError("initial", r.start))
	}
	if !r.ValidState(r.goal) {
		err = multierr.Append(err, newInvalidPoseError("goal", r.goal))
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// collisionGrid returns nx by ny points evenly spanning a width by height rectangle centred on the origin.
func collisionGrid(width, height float64, nx, ny int) []r2.Point {
	stepX := width / float64(nx-1)
	stepY := height / float64(ny-1)
	grid := make([]r2.Point, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			grid = append(grid, r2.Point{X: -width/2 + float64(i)*stepX, Y: -height/2 + float64(j)*stepY})
		}
	}
	return grid
}

func newInvalidPoseError(name string, x State) error {
	return errors.Errorf("%s pose %v is out of bounds or in an obstacle", name, x)
}

// Start returns the initial pose.
func (r *Rectangle) Start() State {
	return r.start.Copy()
}

// Goal returns the goal pose.
func (r *Rectangle) Goal() State {
	return r.goal.Copy()
}

// Bounds returns the pixel range of the map.
func (r *Rectangle) Bounds() r2.Rect {
	return r.bounds
}

// Map returns the raster map the space was built on.
func (r *Rectangle) Map() rimage.RasterMap {
	return r.raster
}

// Size returns the width and height of the rectangle.
func (r *Rectangle) Size() (float64, float64) {
	return r.width, r.height
}

// Footprint returns the collision grid points of the rectangle at pose x, in map coordinates.
func (r *Rectangle) Footprint(x State) []r2.Point {
	sin, cos := math.Sincos(x[2])
	center := toPoint(x)
	points := make([]r2.Point, 0, len(r.grid))
	for _, gp := range r.grid {
		points = append(points, r2.Point{X: gp.X*cos - gp.Y*sin, Y: gp.X*sin + gp.Y*cos}.Add(center))
	}
	return points
}

// RandomState returns a pose drawn uniformly from the bounds and [-pi, pi].
func (r *Rectangle) RandomState() State {
	return State{
		r.bounds.X.Lo + r.randseed.Float64()*r.bounds.X.Length(),
		r.bounds.Y.Lo + r.randseed.Float64()*r.bounds.Y.Length(),
		-math.Pi + r.randseed.Float64()*2*math.Pi,
	}
}

// Metric returns the squared distance between two poses. The shortest arc between the
// orientations is scaled so that a full turn weighs as much as the width of the map.
func (r *Rectangle) Metric(x1, x2 State) float64 {
	d := toPoint(x2).Sub(toPoint(x1))
	rot := utils.AngleDiff(x1[2], x2[2]) * r.bounds.X.Length() / (2 * math.Pi)
	return d.Dot(d) + utils.Square(rot)
}

// ValidState returns whether the pose has theta in [-pi, pi] and every point of its collision
// grid is within the map and free.
func (r *Rectangle) ValidState(x State) bool {
	if len(x) != 3 || x[2] < -math.Pi || x[2] > math.Pi || !r.bounds.ContainsPoint(toPoint(x)) {
		return false
	}
	for _, p := range r.Footprint(x) {
		if !r.bounds.ContainsPoint(p) || rimage.ObstacleAt(r.raster, p.X, p.Y) {
			return false
		}
	}
	return true
}

// GoalReached returns whether x is within the goal tolerance of the goal pose.
func (r *Rectangle) GoalReached(x State) bool {
	d := toPoint(r.goal).Sub(toPoint(x))
	rot := utils.AngleDiff(x[2], r.goal[2])
	return d.Dot(d)+utils.Square(rot) <= utils.Square(r.goalTolerance)
}

// NewState translates by at most MaxStep and rotates by at most MaxRotation from xNear toward
// xTarget. If the resulting pose collides, the step is retried once without rotation.
func (r *Rectangle) NewState(xNear, xTarget State, reverse bool) (State, Input) {
	x, u := r.steer(xNear, xTarget, true)
	if !r.ValidState(x) {
		if !r.fallback {
			return nil, nil
		}
		x, u = r.steer(xNear, xTarget, false)
		if !r.ValidState(x) {
			return nil, nil
		}
	}
	if reverse {
		u = u.Negate()
	}
	return x, u
}

func (r *Rectangle) steer(xNear, xTarget State, rotate bool) (State, Input) {
	near, target := toPoint(xNear), toPoint(xTarget)
	t, p := target.Sub(near), target
	if n := t.Norm(); n >= r.maxStep {
		t = t.Mul(r.maxStep / n)
		p = near.Add(t)
	}
	if !rotate {
		return State{p.X, p.Y, xNear[2]}, Input{t.X, t.Y, 0}
	}

	rot := utils.AngleDiff(xNear[2], xTarget[2])
	if math.Abs(rot) < r.maxRotation {
		return State{p.X, p.Y, xTarget[2]}, Input{t.X, t.Y, rot}
	}
	rot = math.Copysign(r.maxRotation, rot)
	return State{p.X, p.Y, utils.WrapToPi(xNear[2] + rot)}, Input{t.X, t.Y, rot}
}
