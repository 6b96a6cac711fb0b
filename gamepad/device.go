package gamepad

type Button struct {
	Pressed bool
	Value   float64
}

// RawState is what the hardware reports for one device at one point in time.
// Axis values are nominally in -1..1 but are not validated.
type RawState struct {
	Buttons []Button
	Axes    []float64
}

func (r *RawState) button(i int) (Button, bool) {
	if r == nil || i < 0 || i >= len(r.Buttons) {
		return Button{}, false
	}
	return r.Buttons[i], true
}

func (r *RawState) axis(i int) (float64, bool) {
	if r == nil || i < 0 || i >= len(r.Axes) {
		return 0, false
	}
	return r.Axes[i], true
}

func (r *RawState) pressed(i int) bool {
	b, _ := r.button(i)
	return b.Pressed
}

func (r *RawState) axisValue(i int) float64 {
	v, _ := r.axis(i)
	return v
}

type Device interface {
	ID() string

	// Sample returns the current raw state, or nil if the device is gone
	Sample() *RawState
}

type Platform interface {
	// Devices returns all currently connected devices in connection order
	Devices() []Device
}

type EventType int

const (
	Connected EventType = iota
	Disconnected
)

func (t EventType) String() string {
	switch t {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

type Event struct {
	Type   EventType
	Device Device
}
