package control

import (
	"time"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
)

const (
	InitialDrillSpeed    = 10
	DrillSpeedAdjustment = 5

	// Servo ids 1..MaxServoID address the sample servos, 0 addresses none
	MaxServoID = 3
)

// Bio controls the science payload. Pump and fan requests are one-shot: they are carried by the next
// transmission attempt and cleared afterwards, even if that transmission fails.
type Bio struct {
	Laser      bool
	DrillSpeed int
	ServoID    int

	interval    time.Duration
	pumpID      int
	pumpAmount  float64
	fanID       int
	fanDuration float64
}

func NewBio(interval time.Duration) *Bio {
	return &Bio{
		DrillSpeed: InitialDrillSpeed,
		interval:   interval,
	}
}

func (b *Bio) Name() string {
	return "bio"
}

func (b *Bio) Interval() time.Duration {
	return b.interval
}

func (b *Bio) RequestPump(id int, amount float64) {
	b.pumpID = id
	b.pumpAmount = amount
}

func (b *Bio) RequestFan(id int, duration float64) {
	b.fanID = id
	b.fanDuration = duration
}

func (b *Bio) Observe(prev, cur gamepad.State) {
	if prev.B == cur.B && prev.Dpad.Up == cur.Dpad.Up && prev.Dpad.Down == cur.Dpad.Down {
		return
	}
	if cur.B {
		b.Laser = !b.Laser
	}
	if cur.Dpad.Up {
		b.DrillSpeed = clampInt(b.DrillSpeed+DrillSpeedAdjustment, 0, 100)
	} else if cur.Dpad.Down {
		b.DrillSpeed = clampInt(b.DrillSpeed-DrillSpeedAdjustment, 0, 100)
	}
}

func (b *Bio) Command(state gamepad.State, now time.Time) message.Message {
	drillDir := boolToInt(state.RightBumper) - boolToInt(state.LeftBumper)
	return message.BioControl{
		Timestamp: message.Timestamp(now),
		Data: message.BioControlData{
			BioArm:         round(state.LeftStick.Y * 100),
			DrillArm:       state.RightStick.YDigital * 100,
			Drill:          drillDir * b.DrillSpeed,
			VibrationMotor: boolToInt(state.A),
			Laser:          boolToInt(b.Laser),
			PumpID:         b.pumpID,
			PumpAmount:     b.pumpAmount,
			FanID:          b.fanID,
			FanDuration:    b.fanDuration,
			ServoID:        b.ServoID,
			ServoState:     state.X,
		},
	}
}

func (b *Bio) Sent(message.Message) {
	b.pumpID = 0
	b.pumpAmount = 0
	b.fanID = 0
	b.fanDuration = 0
}
