package gamepad

import (
	"flag"
	"math"

	"github.com/antongulenko/rover-bridge/vector"
)

var DefaultThresholds = Thresholds{
	DeadZone: 0.1,
	Digital:  0.4,
}

type Thresholds struct {
	// Axis values with an absolute value below this are bound to zero
	DeadZone float64

	// Raw axis values beyond this count as a digital direction
	Digital float64
}

func (t *Thresholds) RegisterFlags() {
	flag.Float64Var(&t.DeadZone, "stick-dead-zone", t.DeadZone, "Minimum absolute stick axis value that is reported as non-zero")
	flag.Float64Var(&t.Digital, "stick-digital-threshold", t.Digital, "Stick axis value at which the stick is considered pressed in that direction")
}

type ControllerStick struct {
	vector.Vector2
	Pressed bool

	Up, Down, Left, Right bool

	// Both in -1..1
	XDigital, YDigital int
}

// Stick builds a ControllerStick from raw axis values. The digital directions are derived from the raw values,
// not from the dead-zoned ones.
func (t Thresholds) Stick(x, y float64, pressed bool) ControllerStick {
	s := ControllerStick{
		Vector2: vector.Vector2{X: t.applyDeadZone(x), Y: t.applyDeadZone(y)},
		Pressed: pressed,
		Up:      y > t.Digital,
		Down:    y < -t.Digital,
		Right:   x > t.Digital,
		Left:    x < -t.Digital,
	}
	s.XDigital = boolToInt(s.Right) - boolToInt(s.Left)
	s.YDigital = boolToInt(s.Up) - boolToInt(s.Down)
	return s
}

func (t Thresholds) applyDeadZone(val float64) float64 {
	if math.Abs(val) < t.DeadZone {
		return 0
	}
	return val
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
