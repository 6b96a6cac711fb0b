package bridge

import (
	"fmt"

	"github.com/antongulenko/golib"
	"github.com/antongulenko/rover-bridge/control"
	log "github.com/sirupsen/logrus"
)

// Operator toggles and one-shot commands. All of these must be called on the event loop, see Do.

func (b *Bridge) ToggleArmLaser() {
	b.Arm.Laser = !b.Arm.Laser
	log.Printf("Arm laser: %v", b.Arm.Laser)
	b.refresh(ArmSurface)
}

func (b *Bridge) ToggleArmIK() {
	b.Arm.IK = !b.Arm.IK
	log.Printf("Arm inverse kinematics: %v", b.Arm.IK)
	b.refresh(ArmSurface)
}

func (b *Bridge) ToggleBioLaser() {
	b.Bio.Laser = !b.Bio.Laser
	log.Printf("Bio laser: %v", b.Bio.Laser)
	b.refresh(BioSurface)
}

func (b *Bridge) ToggleSingleStick() {
	b.Driving.SingleStick = !b.Driving.SingleStick
	log.Printf("Single stick driving: %v", b.Driving.SingleStick)
	b.refresh(DrivingSurface)
}

func (b *Bridge) RequestPump(id int, amount float64) {
	b.Bio.RequestPump(id, amount)
	b.refresh(BioSurface)
}

func (b *Bridge) RequestFan(id int, duration float64) {
	b.Bio.RequestFan(id, duration)
	b.refresh(BioSurface)
}

// SelectServo chooses the sample servo that the X button opens
func (b *Bridge) SelectServo(id int) error {
	if id < 0 || id > control.MaxServoID {
		return fmt.Errorf("Servo id %v out of range 0..%v", id, control.MaxServoID)
	}
	b.Bio.ServoID = id
	log.Printf("Bio servo: %v", id)
	b.refresh(BioSurface)
	return nil
}

func (b *Bridge) CycleServo() {
	golib.Printerr(b.SelectServo((b.Bio.ServoID + 1) % (control.MaxServoID + 1)))
}

func (b *Bridge) MoveCamera(deltaYaw, deltaPitch float64) {
	golib.Printerr(b.PTZ.Move(deltaYaw, deltaPitch))
}

func (b *Bridge) ZoomCamera(delta float64) {
	golib.Printerr(b.PTZ.ZoomBy(delta))
}

func (b *Bridge) ResetCamera() {
	golib.Printerr(b.PTZ.Reset())
}

func (b *Bridge) ResetAntenna() {
	golib.Printerr(control.ResetAntenna(b.sender, "reset", b.Clock()))
}

func (b *Bridge) ResetLSS() {
	golib.Printerr(control.ResetLSS(b.sender, b.Clock()))
}
