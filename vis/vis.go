// Package vis renders planner trees and solutions to PNG images.
package vis

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/rimage"
	"go.viam.com/rrtplan/statespace"
)

const (
	// Spaces narrower than this are scaled up to defaultImageWidth pixels.
	minUnscaledWidth  = 100
	defaultImageWidth = 500

	labelSize   = 14
	markerSize  = 5
	edgeWidth   = 1
	pathWidth   = 3
	edgeFade    = 0.35
	obstacleHex = "#3c3c3c"
)

var (
	initialColor = color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	goalColor    = color.NRGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
)

// PNGVisualizer draws planner output onto an image and writes it to a PNG file when done.
type PNGVisualizer struct {
	path   string
	bounds r2.Rect
	scale  float64

	background image.Image
	circles    []statespace.Circle
	rectangle  *r2.Point
	logger     logging.Logger

	dc *gg.Context
}

// Option configures a PNGVisualizer.
type Option func(*PNGVisualizer)

// WithBackground draws img under everything else. States are then drawn in image coordinates
// with y pointing down.
func WithBackground(img image.Image) Option {
	return func(v *PNGVisualizer) {
		v.background = img
	}
}

// WithCircles draws circular obstacles.
func WithCircles(circles []statespace.Circle) Option {
	return func(v *PNGVisualizer) {
		v.circles = circles
	}
}

// WithScale sets the number of pixels per unit of the space.
func WithScale(scale float64) Option {
	return func(v *PNGVisualizer) {
		v.scale = scale
	}
}

// WithRectangle draws the footprint of a width by height rectangle at every state of the
// solution. States must be (x, y, theta).
func WithRectangle(width, height float64) Option {
	return func(v *PNGVisualizer) {
		v.rectangle = &r2.Point{X: width, Y: height}
	}
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) Option {
	return func(v *PNGVisualizer) {
		v.logger = logger
	}
}

// NewPNGVisualizer creates a visualizer for a space with the given bounds that writes to path.
func NewPNGVisualizer(path string, bounds r2.Rect, opts ...Option) (*PNGVisualizer, error) {
	if bounds.IsEmpty() {
		return nil, errors.New("cannot visualize empty bounds")
	}
	v := &PNGVisualizer{path: path, bounds: bounds}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = logging.NewBlankLogger("vis")
	}
	if v.scale == 0 {
		v.scale = 1
		if bounds.X.Length() < minUnscaledWidth {
			v.scale = defaultImageWidth / bounds.X.Length()
		}
	}
	if v.scale < 0 {
		return nil, errors.Errorf("scale must be positive, got %v", v.scale)
	}

	width := int(math.Ceil(bounds.X.Length()*v.scale)) + 1
	height := int(math.Ceil(bounds.Y.Length()*v.scale)) + 1
	if v.background != nil {
		width = v.background.Bounds().Dx()
		height = v.background.Bounds().Dy()
	}
	v.dc = gg.NewContext(width, height)
	v.dc.SetColor(color.White)
	v.dc.Clear()
	if v.background != nil {
		v.dc.DrawImage(v.background, 0, 0)
	}
	v.drawObstacles()
	return v, nil
}

// ForProblem creates a visualizer with the background, obstacles and footprint of p.
func ForProblem(path string, p statespace.Problem, logger logging.Logger) (*PNGVisualizer, error) {
	opts := []Option{WithLogger(logger)}
	switch s := p.(type) {
	case *statespace.Bitmap:
		if img, ok := s.Map().(interface{ Image() image.Image }); ok {
			opts = append(opts, WithBackground(img.Image()))
		}
	case *statespace.Rectangle:
		if img, ok := s.Map().(interface{ Image() image.Image }); ok {
			opts = append(opts, WithBackground(img.Image()))
		}
		opts = append(opts, WithRectangle(s.Size()))
	case *statespace.Circles:
		opts = append(opts, WithCircles(s.Obstacles()))
	}
	return NewPNGVisualizer(path, p.Bounds(), opts...)
}

// Image returns what has been drawn so far.
func (v *PNGVisualizer) Image() image.Image {
	return v.dc.Image()
}

// toPixel maps a state's position to image coordinates.
func (v *PNGVisualizer) toPixel(x statespace.State) (float64, float64) {
	if v.background != nil {
		return x[0], x[1]
	}
	px := (x[0] - v.bounds.X.Lo) * v.scale
	py := (v.bounds.Y.Hi - x[1]) * v.scale
	return px, py
}

func (v *PNGVisualizer) drawObstacles() {
	if len(v.circles) == 0 {
		return
	}
	v.dc.SetHexColor(obstacleHex)
	for _, c := range v.circles {
		px, py := v.toPixel(statespace.State{c.X, c.Y})
		v.dc.DrawCircle(px, py, c.Radius*v.scale)
		v.dc.Fill()
	}
}

func (v *PNGVisualizer) drawMarker(x statespace.State, c color.Color, label string) {
	px, py := v.toPixel(x)
	v.dc.SetColor(c)
	v.dc.DrawCircle(px, py, markerSize)
	v.dc.Fill()
	rimage.DrawLabel(v.dc, label, px+markerSize+2, py, c, labelSize)
}

// DrawInitial marks the initial state.
func (v *PNGVisualizer) DrawInitial(x statespace.State) {
	v.drawMarker(x, initialColor, "start")
}

// DrawGoal marks the goal state.
func (v *PNGVisualizer) DrawGoal(x statespace.State) {
	v.drawMarker(x, goalColor, "goal")
}

// DrawEdge draws a tree edge in a faded version of c.
func (v *PNGVisualizer) DrawEdge(parent, child statespace.State, c color.Color) {
	x1, y1 := v.toPixel(parent)
	x2, y2 := v.toPixel(child)
	v.dc.SetColor(fade(c))
	v.dc.SetLineWidth(edgeWidth)
	v.dc.DrawLine(x1, y1, x2, y2)
	v.dc.Stroke()
}

// DrawSolution draws the path through states, and the rectangle footprint at each of them if
// one was configured.
func (v *PNGVisualizer) DrawSolution(states []statespace.State, c color.Color) {
	if len(states) == 0 {
		return
	}
	v.dc.SetColor(c)
	v.dc.SetLineWidth(pathWidth)
	for i, x := range states {
		px, py := v.toPixel(x)
		if i == 0 {
			v.dc.MoveTo(px, py)
		} else {
			v.dc.LineTo(px, py)
		}
	}
	v.dc.Stroke()

	if v.rectangle == nil {
		return
	}
	for _, x := range states {
		if len(x) < 3 {
			continue
		}
		rimage.DrawPolygon(v.dc, v.corners(x), c, edgeWidth)
	}
}

// corners returns the image coordinates of the configured rectangle's corners at pose x.
func (v *PNGVisualizer) corners(x statespace.State) []gg.Point {
	sin, cos := math.Sincos(x[2])
	hw, hh := v.rectangle.X/2, v.rectangle.Y/2
	pts := make([]gg.Point, 0, 4)
	for _, c := range []r2.Point{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}} {
		px, py := v.toPixel(statespace.State{x[0] + c.X*cos - c.Y*sin, x[1] + c.X*sin + c.Y*cos})
		pts = append(pts, gg.Point{X: px, Y: py})
	}
	return pts
}

// Done writes the image to the visualizer's path.
func (v *PNGVisualizer) Done() error {
	if err := v.dc.SavePNG(v.path); err != nil {
		return errors.Wrapf(err, "cannot write visualization to %q", v.path)
	}
	v.logger.Infow("wrote visualization", "path", v.path, "width", v.dc.Width(), "height", v.dc.Height())
	return nil
}

// fade blends c toward white so that trees do not hide the solution.
func fade(c color.Color) color.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	white, _ := colorful.MakeColor(color.White)
	return cc.BlendLab(white, edgeFade).Clamped()
}

var _ motionplan.Visualizer = (*PNGVisualizer)(nil)
