package statespace

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/rimage"
	"go.viam.com/rrtplan/utils"
)

// Built-in space kinds.
const (
	KindBasic2D   = "basic2d"
	KindBitmap    = "bitmap"
	KindCircles   = "circles"
	KindRectangle = "rectangle"
)

// A Constructor builds a Problem from its attributes.
type Constructor func(attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

func init() {
	Register(KindBasic2D, newBasic2DFromAttributes)
	Register(KindBitmap, newBitmapFromAttributes)
	Register(KindCircles, newCirclesFromAttributes)
	Register(KindRectangle, newRectangleFromAttributes)
}

// Register associates a space kind with its constructor. It panics if the kind is already
// registered or the constructor is nil.
func Register(kind string, constructor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, old := registry[kind]; old {
		panic(errors.Errorf("trying to register two state spaces with same kind: %q", kind))
	}
	if constructor == nil {
		panic(errors.Errorf("cannot register a nil constructor for state space kind: %q", kind))
	}
	registry[kind] = constructor
}

// New builds a registered kind of space from attrs.
func New(kind string, attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error) {
	registryMu.RLock()
	constructor, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	p, err := constructor(attrs, rng, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create %s state space", kind)
	}
	return p, nil
}

// RegisteredKinds returns the registered space kinds in sorted order.
func RegisteredKinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func newBasic2DFromAttributes(attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error) {
	cfg := NewBasic2DConfig()
	if err := attrs.Decode(cfg); err != nil {
		return nil, err
	}
	return NewBasic2D(cfg, rng)
}

func newCirclesFromAttributes(attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error) {
	cfg := NewCirclesConfig()
	if err := attrs.Decode(cfg); err != nil {
		return nil, err
	}
	c, err := NewCircles(cfg, rng)
	if err != nil {
		return nil, err
	}
	logger.Debugw("circular obstacles", "count", len(c.obstacles), "generated", len(cfg.Obstacles) == 0)
	return c, nil
}

func newBitmapFromAttributes(attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error) {
	cfg := NewBitmapConfig()
	if err := attrs.Decode(cfg); err != nil {
		return nil, err
	}
	raster, err := readMap(cfg.Map, logger)
	if err != nil {
		return nil, err
	}
	return NewBitmap(raster, cfg, rng)
}

func newRectangleFromAttributes(attrs utils.AttributeMap, rng *rand.Rand, logger logging.Logger) (Problem, error) {
	cfg := NewRectangleConfig()
	if err := attrs.Decode(cfg); err != nil {
		return nil, err
	}
	raster, err := readMap(cfg.Map, logger)
	if err != nil {
		return nil, err
	}
	logger.Debugw("rectangle robot",
		"width", cfg.Width, "height", cfg.Height, "max_step", cfg.MaxStep, "max_rotation_deg", utils.RadToDeg(cfg.MaxRotation))
	return NewRectangle(raster, cfg, rng)
}

func readMap(path string, logger logging.Logger) (*rimage.ImageMap, error) {
	if path == "" {
		return nil, errors.New("map path is required")
	}
	raster, err := rimage.ReadImageMap(path)
	if err != nil {
		return nil, err
	}
	logger.Debugw("loaded raster map", "path", path, "width", raster.Width(), "height", raster.Height())
	return raster, nil
}
