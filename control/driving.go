package control

import (
	"math"
	"time"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
)

const (
	InitialBaseSpeed = 40
	SpeedAdjustment  = 10

	// Holding the left trigger fully raises the speed limit to this value
	BoostSpeed = 80
)

// Driving controls the drive motors with tank-style sticks, or with a single stick when SingleStick is set.
// The dpad adjusts the base speed limit.
type Driving struct {
	BaseSpeed   int
	SingleStick bool

	interval time.Duration
}

func NewDriving(interval time.Duration) *Driving {
	return &Driving{
		BaseSpeed: InitialBaseSpeed,
		interval:  interval,
	}
}

func (d *Driving) Name() string {
	return "driving"
}

func (d *Driving) Interval() time.Duration {
	return d.interval
}

func (d *Driving) Observe(prev, cur gamepad.State) {
	changed := prev.Dpad.Up != cur.Dpad.Up || prev.Dpad.Down != cur.Dpad.Down || prev.LeftTrigger != cur.LeftTrigger
	if !changed || cur.LeftTrigger != 0 {
		return
	}
	if cur.Dpad.Up {
		d.BaseSpeed = clampInt(d.BaseSpeed+SpeedAdjustment, 0, 100)
	} else if cur.Dpad.Down {
		d.BaseSpeed = clampInt(d.BaseSpeed-SpeedAdjustment, 0, 100)
	}
}

// MaxSpeed is the current speed limit in percent
func (d *Driving) MaxSpeed(state gamepad.State) int {
	base := float64(d.BaseSpeed)
	boost := state.LeftTrigger * math.Max(0, BoostSpeed-base)
	return clampInt(round(base+boost), 0, 100)
}

func (d *Driving) Command(state gamepad.State, now time.Time) message.Message {
	data := message.CoreControlData{
		MaxSpeed:   d.MaxSpeed(state),
		Brake:      state.B,
		LeftStick:  state.LeftStick.Y,
		RightStick: state.RightStick.Y,
	}
	if d.SingleStick {
		data.LeftStick, data.RightStick = convertStickToDirections(state.LeftStick.Vector2)
	} else if state.RightTrigger >= 0.5 {
		// Both sides follow the right stick
		data.LeftStick = state.RightStick.Y
	}
	return message.CoreControl{
		Timestamp: message.Timestamp(now),
		Data:      data,
	}
}
