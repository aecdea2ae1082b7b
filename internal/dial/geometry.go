// Package dial holds the geometry of the rotary dial: converting a touch point
// around a pivot into a clockwise angle, and deriving the lean used while dragging.
package dial

import "math"

// FullTurn is one revolution of the dial in degrees.
const FullTurn = 360.0

// MinutesPerTurn is the countdown length represented by a full revolution.
const MinutesPerTurn = 60

// DefaultTiltOffset is the maximum lean magnitude.
const DefaultTiltOffset = 10.0

// Point is a screen coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Tilt is the lean of the dial face derived from an angle.
type Tilt struct {
	X float64
	Y float64
}

// IsZero reports whether the dial is upright.
func (t Tilt) IsZero() bool {
	return t.X == 0 && t.Y == 0
}

// Magnitude returns the length of the tilt vector.
func (t Tilt) Magnitude() float64 {
	return math.Hypot(t.X, t.Y)
}

// ComputeAngle returns the angle of touch around pivot in whole degrees,
// measured clockwise from 12 o'clock, in [0, 360). The second result is false
// when touch coincides with pivot and no angle exists.
func ComputeAngle(touch, pivot Point) (float64, bool) {
	dx := touch.X - pivot.X
	dy := touch.Y - pivot.Y
	distance := math.Sqrt(float64(dx*dx + dy*dy))
	if distance == 0 {
		return 0, false
	}

	radians := math.Acos(float64(dx) / distance)
	if touch.Y < pivot.Y {
		radians = -radians
	}
	// Round before shifting the zero from 3 o'clock to 12 o'clock.
	degrees := math.Round(radians / math.Pi * 180)
	if degrees < 0 {
		degrees += FullTurn
	}
	return math.Mod(degrees+90, FullTurn), true
}

// ComputeTilt maps an angle onto a lean vector of at most offset. Each quarter
// turn interpolates between two corners, so the lean is continuous around the
// dial and ComputeTilt(0) == ComputeTilt(360) == (offset, 0).
func ComputeTilt(angle, offset float64) Tilt {
	a := math.Mod(angle, FullTurn)
	switch {
	case a >= 0 && a <= 90:
		f := a / 90
		return Tilt{X: offset - f*offset, Y: f * offset}
	case a >= 90 && a <= 180:
		f := (a - 90) / 90
		return Tilt{X: -(f * offset), Y: offset - f*offset}
	case a >= 180 && a <= 270:
		f := (a - 180) / 90
		return Tilt{X: -(offset - f*offset), Y: -(f * offset)}
	case a >= 270 && a <= 360:
		f := (a - 270) / 90
		return Tilt{X: f * offset, Y: -(offset - f*offset)}
	default:
		return Tilt{}
	}
}

// Normalize folds any angle into [0, 360).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}

// MinutesForAngle converts a displayed angle into the countdown length it sets.
func MinutesForAngle(angle float64) int {
	return int(math.Round(angle/FullTurn*MinutesPerTurn + 0.5))
}

// AngleForMinutes is the dial position showing the given minutes remaining.
func AngleForMinutes(minutes int) float64 {
	return float64(minutes) / MinutesPerTurn * FullTurn
}
