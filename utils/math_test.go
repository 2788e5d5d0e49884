package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestWrapToPi(t *testing.T) {
	for _, tc := range []struct {
		in, out float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, -math.Pi},
		{2 * math.Pi, 0},
		{math.Pi, -math.Pi},
	} {
		test.That(t, WrapToPi(tc.in), test.ShouldAlmostEqual, tc.out)
	}
}

func TestAngleDiff(t *testing.T) {
	// the short way round from 170 to -170 degrees is +20
	test.That(t, AngleDiff(DegToRad(170), DegToRad(-170)), test.ShouldAlmostEqual, DegToRad(20))
	test.That(t, AngleDiff(DegToRad(-170), DegToRad(170)), test.ShouldAlmostEqual, DegToRad(-20))
	test.That(t, AngleDiff(1, 1), test.ShouldEqual, 0.)
}

func TestConversions(t *testing.T) {
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
	test.That(t, Square(-3), test.ShouldEqual, 9.)
}
