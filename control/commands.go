package control

import (
	"time"

	"github.com/antongulenko/rover-bridge/message"
)

const (
	PtzStep     = 5
	PtzZoomStep = 0.5

	PtzMaxYaw   = 135
	PtzMaxPitch = 90
	PtzMinZoom  = 1
	PtzMaxZoom  = 6

	ptzModePosition = 1
	ptzModeZoom     = 3

	lssResetCommand = "can_relay_tovic,broadcast,29,1\n"
)

// PTZ keeps the target orientation and zoom of the pan-tilt-zoom camera. Every change is sent immediately.
type PTZ struct {
	Yaw, Pitch float64
	Zoom       float64

	// Defaults to time.Now
	Clock func() time.Time

	sender Sender
}

func NewPTZ(sender Sender) *PTZ {
	return &PTZ{
		Zoom:   PtzMinZoom,
		Clock:  time.Now,
		sender: sender,
	}
}

// Move changes the target orientation in degrees, within the limits of the camera mount
func (p *PTZ) Move(deltaYaw, deltaPitch float64) error {
	p.Yaw = clamp(p.Yaw+deltaYaw, -PtzMaxYaw, PtzMaxYaw)
	p.Pitch = clamp(p.Pitch+deltaPitch, -PtzMaxPitch, PtzMaxPitch)
	return p.sendPosition()
}

func (p *PTZ) ZoomBy(delta float64) error {
	p.Zoom = clamp(p.Zoom+delta, PtzMinZoom, PtzMaxZoom)
	return p.sendZoom()
}

// Reset asks the camera to reset itself and returns the targets to their initial values
func (p *PTZ) Reset() error {
	if err := send(p.sender, message.PtzControl{
		Timestamp: p.timestamp(),
		Data:      message.PtzControlData{Reset: true},
	}); err != nil {
		return err
	}
	p.Yaw, p.Pitch, p.Zoom = 0, 0, PtzMinZoom
	if err := p.sendPosition(); err != nil {
		return err
	}
	return p.sendZoom()
}

func (p *PTZ) sendPosition() error {
	return send(p.sender, message.PtzControl{
		Timestamp: p.timestamp(),
		Data: message.PtzControlData{
			ControlMode: ptzModePosition,
			Yaw:         p.Yaw,
			Pitch:       p.Pitch,
		},
	})
}

func (p *PTZ) sendZoom() error {
	return send(p.sender, message.PtzControl{
		Timestamp: p.timestamp(),
		Data: message.PtzControlData{
			ControlMode: ptzModeZoom,
			ZoomLevel:   p.Zoom,
		},
	})
}

func (p *PTZ) timestamp() int64 {
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return message.Timestamp(clock())
}

// ResetAntenna sends a free-form reset message to the antenna station
func ResetAntenna(sender Sender, text string, now time.Time) error {
	return send(sender, message.AntennaControl{
		Timestamp: message.Timestamp(now),
		Data:      message.AntennaControlData{Message: text},
	})
}

// ResetLSS relays the reset broadcast for the servo bus through the anchor
func ResetLSS(sender Sender, now time.Time) error {
	return send(sender, message.AnchorRelay{
		Timestamp: message.Timestamp(now),
		Data:      message.AnchorRelayData{Data: lssResetCommand},
	})
}
