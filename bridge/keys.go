package bridge

import (
	"github.com/antongulenko/golib"
	"github.com/antongulenko/rover-bridge/control"
)

// KeyBindings maps terminal keys to operator commands
var KeyBindings = map[byte]func(b *Bridge){
	'w': func(b *Bridge) { b.MoveCamera(0, control.PtzStep) },
	's': func(b *Bridge) { b.MoveCamera(0, -control.PtzStep) },
	'a': func(b *Bridge) { b.MoveCamera(-control.PtzStep, 0) },
	'd': func(b *Bridge) { b.MoveCamera(control.PtzStep, 0) },
	'q': func(b *Bridge) { b.ZoomCamera(-control.PtzZoomStep) },
	'e': func(b *Bridge) { b.ZoomCamera(control.PtzZoomStep) },
	'r': (*Bridge).ResetCamera,
	'l': (*Bridge).ToggleArmLaser,
	'k': (*Bridge).ToggleBioLaser,
	'i': (*Bridge).ToggleArmIK,
	'm': (*Bridge).ToggleSingleStick,
	't': (*Bridge).ResetAntenna,
	'z': (*Bridge).ResetLSS,
	'v': (*Bridge).CycleServo,
	'1': func(b *Bridge) { b.activateLogged(DrivingSurface) },
	'2': func(b *Bridge) { b.activateLogged(ArmSurface) },
	'3': func(b *Bridge) { b.activateLogged(BioSurface) },
}

// HandleKey runs the command bound to key on the event loop. It reports whether the key is bound.
func (b *Bridge) HandleKey(key byte) bool {
	cmd, ok := KeyBindings[key]
	if ok {
		b.Do(func() { cmd(b) })
	}
	return ok
}

func (b *Bridge) activateLogged(surface string) {
	golib.Printerr(b.Activate(surface))
}
