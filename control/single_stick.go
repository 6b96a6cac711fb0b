package control

import (
	"math"

	"github.com/antongulenko/rover-bridge/vector"
)

// convertStickToDirections maps one stick to the speeds of the left and right side of a skid-steered vehicle
func convertStickToDirections(stick vector.Vector2) (l, r float64) {
	// Speed/Power determined by distance from the center
	speed := stick.Magnitude()
	x, y := stick.X, stick.Y
	// Values outside the unit circle are moved onto it
	if speed > 1 {
		x /= speed
		y /= speed
		speed = 1
	}

	if x >= 0 {
		if y >= 0 {
			// Turning forward right -> left side full power
			l = 1
			r = -1 + (2 * anglePercent(x, y))
		} else {
			r = -1
			l = 1 - (2 * anglePercent(x, -y))
		}
	} else {
		if y >= 0 {
			// Turning forward left -> right side full power
			r = 1
			l = -1 + (2 * anglePercent(-x, y))
		} else {
			l = -1
			r = 1 - (2 * anglePercent(-x, -y))
		}
	}

	l *= speed
	r *= speed
	if l > 1 {
		l = 1
	}
	if r > 1 {
		r = 1
	}
	return
}

// anglePercent maps the angle of a vector in the first quadrant to 0..1
func anglePercent(x, y float64) float64 {
	return vector.Vector2{X: x, Y: y}.Angle() / (math.Pi / 2)
}
