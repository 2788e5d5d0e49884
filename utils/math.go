package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Square returns n*n. math.Pow(x, 2) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// WrapToPi maps an angle in radians onto [-pi, pi). Unlike math.Mod, the result
// does not take the sign of the argument.
func WrapToPi(angle float64) float64 {
	return angle - 2*math.Pi*math.Floor((angle+math.Pi)/(2*math.Pi))
}

// AngleDiff returns the signed shortest-arc rotation, in radians, that takes a1 to a2.
func AngleDiff(a1, a2 float64) float64 {
	return WrapToPi(a2 - a1)
}
