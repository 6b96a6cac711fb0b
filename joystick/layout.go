package joystick

import "github.com/antongulenko/rover-bridge/gamepad"

// DefaultLayout is the order in which the Linux joystick interface reports an Xbox-style controller (xpad driver).
// Triggers are axes resting at -1, the dpad is a hat mirrored to the buttons in DefaultConfig.DpadButtons.
var DefaultLayout = gamepad.Layout{
	Name: "linux-joystick",
	Buttons: gamepad.ButtonLayout{
		A: 0, B: 1, X: 2, Y: 3,
		LeftBumper: 4, RightBumper: 5,
		Select: 6, Start: 7,
		LeftStick: 9, RightStick: 10,
		DpadUp: 12, DpadDown: 13, DpadLeft: 14, DpadRight: 15,

		// No analog trigger buttons
		LeftTrigger: -1, RightTrigger: -1,
	},
	Axes: gamepad.AxisLayout{
		LeftX: 0, LeftY: 1,
		LeftTrigger: 2,
		RightX:      3, RightY: 4,
		RightTrigger: 5,
		InvertY:      true,
	},
	TriggerSources: []gamepad.TriggerSource{gamepad.TriggerAxis},
}
