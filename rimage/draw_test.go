package rimage

import (
	"image/color"
	"testing"

	"github.com/fogleman/gg"
	"go.viam.com/test"
)

func TestDrawPolygon(t *testing.T) {
	dc := gg.NewContext(20, 20)
	dc.SetColor(color.White)
	dc.Clear()

	DrawPolygon(dc, []gg.Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}, color.Black, 2)
	img := dc.Image()
	test.That(t, IsObstacle(img.At(5, 10)), test.ShouldBeTrue)
	test.That(t, IsObstacle(img.At(10, 10)), test.ShouldBeFalse)
	test.That(t, IsObstacle(img.At(1, 1)), test.ShouldBeFalse)

	DrawPolygon(dc, nil, color.Black, 2)
}

func TestDrawLabel(t *testing.T) {
	test.That(t, Font(), test.ShouldNotBeNil)

	dc := gg.NewContext(60, 20)
	dc.SetColor(color.White)
	dc.Clear()
	DrawLabel(dc, "goal", 2, 10, color.Black, 14)

	drawn := false
	img := dc.Image()
	for x := 0; x < 60 && !drawn; x++ {
		for y := 0; y < 20; y++ {
			if IsObstacle(img.At(x, y)) {
				drawn = true
				break
			}
		}
	}
	test.That(t, drawn, test.ShouldBeTrue)
}
