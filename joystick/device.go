package joystick

import (
	"fmt"
	"sync"

	"github.com/antongulenko/rover-bridge/gamepad"
)

// Hat coordinates beyond this value press the synthesized dpad buttons
const dpadPressThreshold = 0.5

// DpadButtons are the raw button indices that a dpad hat is mirrored to, in the order up, down, left, right
type DpadButtons [4]int

// Device mirrors the events of one joystick device into a raw state that can be sampled at any time.
type Device struct {
	index   int
	dpadHat int
	dpad    DpadButtons

	mu     sync.Mutex
	state  gamepad.RawState
	closed bool
}

func newDevice(index, numButtons, numAxes, dpadHat int, dpad DpadButtons) *Device {
	if dpadHat > 0 {
		for _, b := range dpad {
			if b >= numButtons {
				numButtons = b + 1
			}
		}
	}
	return &Device{
		index:   index,
		dpadHat: dpadHat,
		dpad:    dpad,
		state: gamepad.RawState{
			Buttons: make([]gamepad.Button, numButtons),
			Axes:    make([]float64, numAxes),
		},
	}
}

func (d *Device) ID() string {
	return fmt.Sprintf("js%v", d.index)
}

func (d *Device) Sample() *gamepad.RawState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	return &gamepad.RawState{
		Buttons: append([]gamepad.Button(nil), d.state.Buttons...),
		Axes:    append([]float64(nil), d.state.Axes...),
	}
}

// setButton uses 1-based button numbers, like the joystick driver events
func (d *Device) setButton(button int, pressed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pressButton(button-1, pressed)
}

// setHat uses 1-based hat numbers. Hat n covers the raw axes 2(n-1) and 2(n-1)+1.
func (d *Device) setHat(hat int, x, y float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := 2 * (hat - 1)
	if i >= 0 && i+1 < len(d.state.Axes) {
		d.state.Axes[i] = float64(x)
		d.state.Axes[i+1] = float64(y)
	}
	if hat == d.dpadHat {
		d.pressButton(d.dpad[0], y <= -dpadPressThreshold)
		d.pressButton(d.dpad[1], y >= dpadPressThreshold)
		d.pressButton(d.dpad[2], x <= -dpadPressThreshold)
		d.pressButton(d.dpad[3], x >= dpadPressThreshold)
	}
}

func (d *Device) pressButton(i int, pressed bool) {
	if i < 0 || i >= len(d.state.Buttons) {
		return
	}
	value := 0.0
	if pressed {
		value = 1
	}
	d.state.Buttons[i] = gamepad.Button{Pressed: pressed, Value: value}
}

// initialState is the part of *joysticks.HID that reports the state at connection time
type initialState interface {
	ButtonClosed(index uint8) bool
	HatCoords(hat uint8, coords []float32)
}

// seed copies the state reported by the driver when the device was opened, so that resting axes
// (e.g. triggers at -1) are correct before the first event. Buttons are keyed by their 0-based driver index.
func (d *Device) seed(js initialState, numButtons, numHats int) {
	for b := 1; b <= numButtons; b++ {
		d.setButton(b, js.ButtonClosed(uint8(b-1)))
	}
	coords := make([]float32, 2)
	for h := 1; h <= numHats; h++ {
		coords[0], coords[1] = 0, 0
		js.HatCoords(uint8(h), coords)
		d.setHat(h, coords[0], coords[1])
	}
}

func (d *Device) close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}
