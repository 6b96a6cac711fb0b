package joystick

import (
	"testing"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driverState reports the state of an xpad controller at connection time. Buttons use 0-based driver indices.
type driverState struct {
	closed map[uint8]bool
	hats   map[uint8][2]float32
}

func (s driverState) ButtonClosed(index uint8) bool {
	return s.closed[index]
}

func (s driverState) HatCoords(hat uint8, coords []float32) {
	if c, ok := s.hats[hat]; ok {
		coords[0], coords[1] = c[0], c[1]
	}
}

// restingXpad has both triggers released at -1 and the sticks centered
func restingXpad() driverState {
	return driverState{
		closed: map[uint8]bool{},
		hats: map[uint8][2]float32{
			1: {0, 0},
			2: {-1, 0},
			3: {0, -1},
			4: {0, 0},
		},
	}
}

func xpadDevice(js initialState) *Device {
	d := newDevice(1, 11, 8, DefaultConfig.DpadHat, DefaultConfig.DpadButtons)
	d.seed(js, 11, 4)
	return d
}

func sample(d *Device) gamepad.State {
	return gamepad.NewState(d.Sample(), &DefaultLayout, gamepad.DefaultThresholds)
}

func TestSeedFromDriverState(t *testing.T) {
	a := assert.New(t)
	js := restingXpad()
	js.closed[0] = true
	js.hats[1] = [2]float32{0.5, -0.75}
	d := xpadDevice(js)

	raw := d.Sample()
	a.True(raw.Buttons[0].Pressed)
	a.False(raw.Buttons[1].Pressed)
	a.Equal([]float64{0.5, -0.75, -1, 0, 0, -1, 0, 0}, raw.Axes)
}

func TestDefaultLayoutRestingTriggers(t *testing.T) {
	a := assert.New(t)
	state := sample(xpadDevice(restingXpad()))
	a.True(state.Connected)
	a.Equal(0.0, state.LeftTrigger)
	a.Equal(0.0, state.RightTrigger)
	a.Equal(0.0, state.RightStick.X)
	a.Equal(0.0, state.RightStick.Y)
	a.False(state.Select)
}

func TestDefaultLayoutOrder(t *testing.T) {
	a := assert.New(t)
	d := xpadDevice(restingXpad())
	d.setHat(2, 1, 0.5)   // left trigger fully pressed, right stick x
	d.setHat(3, -0.5, 1)  // right stick y (up), right trigger
	d.setButton(7, true)  // back
	d.setButton(10, true) // left stick press
	d.setHat(4, 0, 1)     // dpad down

	state := sample(d)
	a.Equal(1.0, state.LeftTrigger)
	a.Equal(1.0, state.RightTrigger)
	a.Equal(0.5, state.RightStick.X)
	a.Equal(0.5, state.RightStick.Y)
	a.True(state.Select)
	a.False(state.Start)
	a.True(state.LeftStick.Pressed)
	a.False(state.RightStick.Pressed)
	a.True(state.Dpad.Down)
	a.Equal(0.0, state.LeftStick.X)
}

func TestDefaultLayoutOverride(t *testing.T) {
	a := assert.New(t)
	layout, err := DefaultLayout.Parse([]byte("name: pad\nbuttons:\n  a: 1\n  b: 0\n"))
	require.NoError(t, err)
	a.Equal("pad", layout.Name)
	a.Equal(1, layout.Buttons.A)
	a.Equal(DefaultLayout.Axes, layout.Axes)
	a.Equal([]gamepad.TriggerSource{gamepad.TriggerAxis}, layout.TriggerSources)
	a.Equal("linux-joystick", DefaultLayout.Name)
}
