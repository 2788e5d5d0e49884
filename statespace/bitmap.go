package statespace

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rrtplan/rimage"
)

const defaultBitmapGoalTolerance = 20

// BitmapConfig describes a planar space over a raster map. Free space is background-coloured.
type BitmapConfig struct {
	// Path to the map image. Only used when the space is built from attributes.
	Map string `json:"map"`

	Start []float64 `json:"start"`
	Goal  []float64 `json:"goal"`

	MaxStep       float64 `json:"max_step"`
	GoalTolerance float64 `json:"goal_tolerance"`
}

// NewBitmapConfig returns a BitmapConfig with default goal tolerance.
func NewBitmapConfig() *BitmapConfig {
	return &BitmapConfig{GoalTolerance: defaultBitmapGoalTolerance}
}

// Bitmap is a planar space whose bounds are the pixel range of a raster map, and whose
// obstacles are the map's non-background pixels.
type Bitmap struct {
	*planar
	raster rimage.RasterMap
}

// NewBitmap creates a Bitmap space over raster. It returns an error if the start or goal are
// out of the map or on an obstacle pixel.
func NewBitmap(raster rimage.RasterMap, cfg *BitmapConfig, rng *rand.Rand) (*Bitmap, error) {
	if raster == nil || raster.Width() == 0 || raster.Height() == 0 {
		return nil, errors.New("bitmap space requires a non-empty raster map")
	}
	bounds := NewBounds(0, float64(raster.Width()-1), 0, float64(raster.Height()-1))
	p, err := newPlanar(bounds, cfg.Start, cfg.Goal, cfg.MaxStep, cfg.GoalTolerance, rng)
	if err != nil {
		return nil, err
	}
	b := &Bitmap{planar: p, raster: raster}
	if b.collides(p.start) {
		err = multierr.Append(err, newInObstacleError("initial", p.start))
	}
	if b.collides(p.goal) {
		err = multierr.Append(err, newInObstacleError("goal", p.goal))
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Map returns the raster map the space was built on.
func (b *Bitmap) Map() rimage.RasterMap {
	return b.raster
}

// RandomState returns a pixel position drawn uniformly from the map.
func (b *Bitmap) RandomState() State {
	return State{
		b.bounds.X.Lo + float64(b.randseed.Intn(int(b.bounds.X.Length())+1)),
		b.bounds.Y.Lo + float64(b.randseed.Intn(int(b.bounds.Y.Length())+1)),
	}
}

// ValidState returns whether x is within the map and its pixel is free.
func (b *Bitmap) ValidState(x State) bool {
	return b.inBounds(x) && !b.collides(x)
}

// NewState takes a step of at most MaxStep from xNear along the vector to xTarget.
func (b *Bitmap) NewState(xNear, xTarget State, reverse bool) (State, Input) {
	return b.newState(xNear, xTarget, reverse, b.ValidState)
}

func (b *Bitmap) collides(x State) bool {
	return rimage.ObstacleAt(b.raster, x[0], x[1])
}
