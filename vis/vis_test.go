package vis

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"

	"go.viam.com/rrtplan/logging"
	"go.viam.com/rrtplan/motionplan"
	"go.viam.com/rrtplan/rimage"
	"go.viam.com/rrtplan/statespace"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestPNGVisualizerBasic2D(t *testing.T) {
	logger := logging.NewTestLogger(t)
	space, err := statespace.NewBasic2D(statespace.NewBasic2DConfig(), nil)
	test.That(t, err, test.ShouldBeNil)
	mp, err := motionplan.NewRRTPlanner(space, nil, logger, nil)
	test.That(t, err, test.ShouldBeNil)
	result, err := mp.Build(space.Start(), space.Goal())
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "rrt.png")
	v, err := ForProblem(path, space, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, motionplan.DrawRRT(v, result), test.ShouldBeNil)

	img, err := imaging.Open(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, defaultImageWidth+1)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, defaultImageWidth+1)
	// The start marker is at the centre.
	test.That(t, isWhite(img.At(250, 250)), test.ShouldBeFalse)
}

func TestPNGVisualizerCircles(t *testing.T) {
	cfg := statespace.NewCirclesConfig()
	cfg.Obstacles = []statespace.Circle{{X: 0.2, Y: 0.2, Radius: 0.1}}
	space, err := statespace.NewCircles(cfg, nil)
	test.That(t, err, test.ShouldBeNil)

	v, err := ForProblem(filepath.Join(t.TempDir(), "circles.png"), space, nil)
	test.That(t, err, test.ShouldBeNil)
	// (0.2, 0.2) is 100 pixels from the left and 100 pixels from the bottom.
	test.That(t, isWhite(v.Image().At(100, 400)), test.ShouldBeFalse)
	test.That(t, isWhite(v.Image().At(400, 100)), test.ShouldBeTrue)
}

func TestPNGVisualizerRaster(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 60))
	draw.Draw(img, img.Bounds(), image.NewUniform(rimage.Background), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(40, 0, 60, 40), image.NewUniform(color.Black), image.Point{}, draw.Src)
	cfg := statespace.NewRectangleConfig()
	cfg.Width = 10
	cfg.Height = 4
	cfg.Start = []float64{10, 50, 0}
	cfg.Goal = []float64{90, 50, 0}
	space, err := statespace.NewRectangle(rimage.NewImageMap(img), cfg, nil)
	test.That(t, err, test.ShouldBeNil)

	path := filepath.Join(t.TempDir(), "rect.png")
	v, err := ForProblem(path, space, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v.Image().Bounds().Dx(), test.ShouldEqual, 100)
	test.That(t, v.Image().Bounds().Dy(), test.ShouldEqual, 60)
	test.That(t, isWhite(v.Image().At(50, 20)), test.ShouldBeFalse)

	v.DrawEdge(statespace.State{10, 50, 0}, statespace.State{20, 55, 0}, motionplan.StartTreeColor)
	v.DrawSolution([]statespace.State{{10, 50, 0}, {30, 50, 0.5}}, motionplan.SolutionColor)
	test.That(t, isWhite(v.Image().At(20, 50)), test.ShouldBeFalse)
	test.That(t, v.Done(), test.ShouldBeNil)

	bad, err := NewPNGVisualizer(filepath.Join(t.TempDir(), "missing", "dir.png"), space.Bounds())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, bad.Done(), test.ShouldNotBeNil)
}

func TestFade(t *testing.T) {
	faded := fade(color.Black)
	r, _, _, _ := faded.RGBA()
	test.That(t, r, test.ShouldBeGreaterThan, 0)
	test.That(t, isWhite(faded), test.ShouldBeFalse)
	test.That(t, fade(color.Transparent), test.ShouldResemble, color.Transparent)
}
