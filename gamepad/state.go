package gamepad

// State is an immutable snapshot of one gamepad. The zero value is the neutral state of a missing device.
type State struct {
	Connected bool

	A, B, X, Y bool

	LeftBumper, RightBumper bool

	// Both in 0..1
	LeftTrigger, RightTrigger float64

	Select, Start bool

	LeftStick, RightStick ControllerStick

	// The four dpad buttons as a stick: x is left/right, y is up/down. Diagonals are not normalized.
	Dpad ControllerStick
}

// NewState builds a snapshot from raw hardware values. A nil raw state yields the neutral state.
func NewState(raw *RawState, l *Layout, th Thresholds) State {
	if raw == nil {
		return State{}
	}
	b := &l.Buttons
	ax := &l.Axes
	s := State{
		Connected:    true,
		A:            raw.pressed(b.A),
		B:            raw.pressed(b.B),
		X:            raw.pressed(b.X),
		Y:            raw.pressed(b.Y),
		LeftBumper:   raw.pressed(b.LeftBumper),
		RightBumper:  raw.pressed(b.RightBumper),
		LeftTrigger:  l.trigger(raw, ax.LeftTrigger, b.LeftTrigger),
		RightTrigger: l.trigger(raw, ax.RightTrigger, b.RightTrigger),
		Select:       raw.pressed(b.Select),
		Start:        raw.pressed(b.Start),
	}

	ySign := 1.0
	if ax.InvertY {
		ySign = -1
	}
	s.LeftStick = th.Stick(raw.axisValue(ax.LeftX), ySign*raw.axisValue(ax.LeftY), raw.pressed(b.LeftStick))
	s.RightStick = th.Stick(raw.axisValue(ax.RightX), ySign*raw.axisValue(ax.RightY), raw.pressed(b.RightStick))

	dpadX := boolToInt(raw.pressed(b.DpadRight)) - boolToInt(raw.pressed(b.DpadLeft))
	dpadY := boolToInt(raw.pressed(b.DpadUp)) - boolToInt(raw.pressed(b.DpadDown))
	s.Dpad = th.Stick(float64(dpadX), float64(dpadY), false)
	return s
}
