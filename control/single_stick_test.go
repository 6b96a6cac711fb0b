package control

import (
	"testing"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
	"github.com/antongulenko/rover-bridge/vector"
	"github.com/stretchr/testify/assert"
)

func TestSingleStickDirections(t *testing.T) {
	a := assert.New(t)
	for _, c := range []struct {
		name  string
		stick vector.Vector2
		l, r  float64
	}{
		{"centered", vector.Vector2{}, 0, 0},
		{"forward", vector.Vector2{Y: 0.6}, 0.6, 0.6},
		{"backward", vector.Vector2{Y: -1}, -1, -1},
		{"spin right", vector.Vector2{X: 0.5}, 0.5, -0.5},
		{"spin left", vector.Vector2{X: -1}, -1, 1},
		{"forward right diagonal", vector.Vector2{X: 1, Y: 1}, 1, 0},
		{"backward left diagonal", vector.Vector2{X: -1, Y: -1}, -1, 0},
		{"far outside the circle", vector.Vector2{Y: 3}, 1, 1},
	} {
		l, r := convertStickToDirections(c.stick)
		a.InDelta(c.l, l, 1e-9, "left side, %v", c.name)
		a.InDelta(c.r, r, 1e-9, "right side, %v", c.name)
	}
}

func TestSingleStickSymmetry(t *testing.T) {
	a := assert.New(t)
	for x := -1.0; x <= 1; x += 0.25 {
		for y := -1.0; y <= 1; y += 0.25 {
			l, r := convertStickToDirections(vector.Vector2{X: x, Y: y})
			a.True(l >= -1 && l <= 1 && r >= -1 && r <= 1, "stick %v/%v out of range: %v/%v", x, y, l, r)

			// Mirroring the stick swaps the sides
			ml, mr := convertStickToDirections(vector.Vector2{X: -x, Y: y})
			a.InDelta(l, mr, 1e-9, "stick %v/%v", x, y)
			a.InDelta(r, ml, 1e-9, "stick %v/%v", x, y)
		}
	}
}

func TestDrivingSingleStickDeadZone(t *testing.T) {
	a := assert.New(t)
	d := NewDriving(DefaultIntervals.Core)
	d.SingleStick = true

	// The small x deflection is inside the dead zone, so the rover drives straight
	state := gamepad.State{
		Connected:    true,
		B:            true,
		LeftStick:    stick(0.05, 0.6),
		RightStick:   stick(0, -1),
		RightTrigger: 1,
	}
	cmd := d.Command(state, start).(message.CoreControl)
	a.InDelta(0.6, cmd.Data.LeftStick, 1e-9)
	a.InDelta(0.6, cmd.Data.RightStick, 1e-9)
	a.True(cmd.Data.Brake)
	a.Equal(InitialBaseSpeed, cmd.Data.MaxSpeed)

	cmd = d.Command(gamepad.State{Connected: true, LeftStick: stick(0.08, -0.09)}, start).(message.CoreControl)
	a.InDelta(0, cmd.Data.LeftStick, 1e-9)
	a.InDelta(0, cmd.Data.RightStick, 1e-9)

	// Leaving single stick mode uses both sticks again
	d.SingleStick = false
	cmd = d.Command(gamepad.State{LeftStick: stick(0.05, 0.6), RightStick: stick(0, -1)}, start).(message.CoreControl)
	a.Equal(0.6, cmd.Data.LeftStick)
	a.Equal(-1.0, cmd.Data.RightStick)
}
