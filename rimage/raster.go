package rimage

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// BMP maps are common for planning benchmarks.
	_ "golang.org/x/image/bmp"
)

// Background is the colour of free space in a raster map.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// RasterMap is a read-only 2-D pixel accessor.
type RasterMap interface {
	Width() int
	Height() int
	// At returns the colour of the pixel at (x, y). Coordinates are image coordinates
	// with the origin at the top-left corner.
	At(x, y int) color.Color
}

// ImageMap is a RasterMap backed by an in-memory image.
type ImageMap struct {
	img *image.NRGBA
}

// NewImageMap copies img into an ImageMap whose origin is (0, 0).
func NewImageMap(img image.Image) *ImageMap {
	return &ImageMap{img: imaging.Clone(img)}
}

// ReadImageMap decodes the image file at path into an ImageMap.
func ReadImageMap(path string) (*ImageMap, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read raster map %q", path)
	}
	return NewImageMap(img), nil
}

// Width returns the width of the map in pixels.
func (m *ImageMap) Width() int {
	return m.img.Rect.Dx()
}

// Height returns the height of the map in pixels.
func (m *ImageMap) Height() int {
	return m.img.Rect.Dy()
}

// At returns the colour of the pixel at (x, y).
func (m *ImageMap) At(x, y int) color.Color {
	return m.img.NRGBAAt(x, y)
}

// Image returns the underlying image.
func (m *ImageMap) Image() image.Image {
	return m.img
}

// IsObstacle classifies a pixel. Fully transparent pixels and opaque background pixels are free,
// everything else is an obstacle.
func IsObstacle(c color.Color) bool {
	p := color.NRGBAModel.Convert(c).(color.NRGBA)
	if p.A == 0 {
		return false
	}
	return p.R != Background.R || p.G != Background.G || p.B != Background.B
}

// ObstacleAt reports whether the pixel containing the point (x, y) is an obstacle. Points
// outside of the map are obstacles.
func ObstacleAt(m RasterMap, x, y float64) bool {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if px < 0 || py < 0 || px >= m.Width() || py >= m.Height() {
		return true
	}
	return IsObstacle(m.At(px, py))
}
