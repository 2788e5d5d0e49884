package statespace

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	defaultNumObstacles      = 10
	defaultMaxObstacleRadius = 0.1

	// Random obstacles are rejection sampled. Give up after this many tries per obstacle.
	maxObstacleAttempts = 1000
)

// Circle is a circular obstacle.
type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Center returns the centre of the circle.
func (c Circle) Center() r2.Point {
	return r2.Point{X: c.X, Y: c.Y}
}

// Contains returns whether p lies strictly inside the circle.
func (c Circle) Contains(p r2.Point) bool {
	d := p.Sub(c.Center())
	return d.Dot(d) < c.Radius*c.Radius
}

// CirclesConfig describes a bounded plane with circular obstacles.
type CirclesConfig struct {
	Basic2DConfig

	// Obstacles to use. If empty, NumObstacles random circles are generated.
	Obstacles []Circle `json:"obstacles"`

	NumObstacles int     `json:"num_obstacles"`
	MaxRadius    float64 `json:"max_radius"`
}

// NewCirclesConfig returns the unit square problem with ten random obstacles.
func NewCirclesConfig() *CirclesConfig {
	return &CirclesConfig{
		Basic2DConfig: *NewBasic2DConfig(),
		NumObstacles:  defaultNumObstacles,
		MaxRadius:     defaultMaxObstacleRadius,
	}
}

// Circles is a bounded plane minus the union of a set of circles.
type Circles struct {
	*planar
	obstacles []Circle
}

// NewCircles creates a Circles space. Configured obstacles containing the start or the goal
// are an error; generated obstacles never contain them.
func NewCircles(cfg *CirclesConfig, rng *rand.Rand) (*Circles, error) {
	p, err := newPlanar(NewBounds(cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax), cfg.Start, cfg.Goal, cfg.MaxStep, cfg.GoalTolerance, rng)
	if err != nil {
		return nil, err
	}
	c := &Circles{planar: p}
	if len(cfg.Obstacles) > 0 {
		c.obstacles = append([]Circle(nil), cfg.Obstacles...)
		for i, o := range c.obstacles {
			if o.Radius <= 0 {
				err = multierr.Append(err, errors.Errorf("obstacle %d radius must be positive, got %v", i, o.Radius))
			}
		}
		if c.collides(p.start) {
			err = multierr.Append(err, newInObstacleError("initial", p.start))
		}
		if c.collides(p.goal) {
			err = multierr.Append(err, newInObstacleError("goal", p.goal))
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	if cfg.MaxRadius <= 0 {
		return nil, newNonPositiveError("max_radius", cfg.MaxRadius)
	}
	obstacles, err := c.GenerateObstacles(cfg.NumObstacles, cfg.MaxRadius)
	if err != nil {
		return nil, err
	}
	c.obstacles = obstacles
	return c, nil
}

// GenerateObstacles returns n random circles with radius in [maxRadius/2, maxRadius) and
// centres within the bounds. Circles containing the start or the goal are rejected.
func (c *Circles) GenerateObstacles(n int, maxRadius float64) ([]Circle, error) {
	obstacles := make([]Circle, 0, n)
	for attempts := 0; len(obstacles) < n; attempts++ {
		if attempts >= n*maxObstacleAttempts {
			return nil, errors.Errorf("could not place %d obstacles clear of the start and goal", n)
		}
		center := c.uniformState()
		circle := Circle{X: center[0], Y: center[1], Radius: maxRadius * (c.randseed.Float64()/2 + 0.5)}
		if circle.Contains(toPoint(c.start)) || circle.Contains(toPoint(c.goal)) {
			continue
		}
		obstacles = append(obstacles, circle)
	}
	return obstacles, nil
}

// Obstacles returns the circles of the space.
func (c *Circles) Obstacles() []Circle {
	return append([]Circle(nil), c.obstacles...)
}

// RandomState returns a state drawn uniformly from the bounds.
func (c *Circles) RandomState() State {
	return c.uniformState()
}

// ValidState returns whether x is within the bounds and outside of every circle.
func (c *Circles) ValidState(x State) bool {
	return c.inBounds(x) && !c.collides(x)
}

// NewState takes a step of at most MaxStep from xNear along the vector to xTarget.
func (c *Circles) NewState(xNear, xTarget State, reverse bool) (State, Input) {
	return c.newState(xNear, xTarget, reverse, c.ValidState)
}

func (c *Circles) collides(x State) bool {
	p := toPoint(x)
	for _, o := range c.obstacles {
		if o.Contains(p) {
			return true
		}
	}
	return false
}
