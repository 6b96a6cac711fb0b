package control

import (
	"time"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
	"github.com/antongulenko/rover-bridge/vector"
)

// Arm sends either manual joint commands or inverse kinematics movement commands.
// Holding the right bumper switches the sticks to the end effector.
type Arm struct {
	IK    bool
	Laser bool

	interval time.Duration
}

func NewArm(interval time.Duration) *Arm {
	return &Arm{interval: interval}
}

func (a *Arm) Name() string {
	return "arm"
}

func (a *Arm) Interval() time.Duration {
	return a.interval
}

func (a *Arm) Command(state gamepad.State, now time.Time) message.Message {
	if a.IK {
		return message.ArmIK{
			Timestamp: message.Timestamp(now),
			Data:      a.ikData(state),
		}
	}
	return message.ArmManual{
		Timestamp: message.Timestamp(now),
		Data:      a.manualData(state),
	}
}

func (a *Arm) manualData(state gamepad.State) message.ArmManualData {
	data := message.ArmManualData{
		Gripper:        round(state.RightTrigger - state.LeftTrigger),
		LinearActuator: linearActuator(state),
		Laser:          boolToInt(a.Laser),
	}
	if state.RightBumper {
		data.EffectorRoll = state.RightStick.XDigital
		data.EffectorYaw = state.LeftStick.XDigital
	} else {
		data.Axis0 = state.Dpad.XDigital
		data.Axis1 = state.LeftStick.XDigital
		data.Axis2 = state.LeftStick.YDigital
		data.Axis3 = state.RightStick.YDigital
		data.Brake = state.B
	}
	return data
}

func (a *Arm) ikData(state gamepad.State) message.ArmIKData {
	data := message.ArmIKData{
		Gripper:        round(state.RightTrigger) - round(state.LeftTrigger),
		LinearActuator: linearActuator(state),
		Laser:          boolToInt(a.Laser),
	}
	if state.RightBumper {
		data.EffectorRoll = state.RightStick.XDigital
		data.EffectorYaw = state.LeftStick.XDigital
	} else {
		data.MovementVector = vector.Vector3{
			X: float64(state.LeftStick.XDigital),
			Y: float64(state.LeftStick.YDigital),
			Z: float64(state.RightStick.YDigital),
		}
	}
	return data
}

func linearActuator(state gamepad.State) int {
	return boolToInt(state.Y) - boolToInt(state.X)
}
