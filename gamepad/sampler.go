package gamepad

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultFrameRate = 60

// Sampler tracks one input device and publishes a new State to its Cell on every frame.
// Only the first connected device is used. When it disconnects, another connected device is adopted if present.
// All methods must be called from the same goroutine.
type Sampler struct {
	Layout     *Layout
	Thresholds Thresholds
	FrameRate  int

	platform Platform
	cell     *Cell
	device   Device
	ticker   *time.Ticker
}

func NewSampler(platform Platform, cell *Cell) *Sampler {
	return &Sampler{
		Layout:     &StandardLayout,
		Thresholds: DefaultThresholds,
		FrameRate:  DefaultFrameRate,
		platform:   platform,
		cell:       cell,
	}
}

func (s *Sampler) Device() Device {
	return s.device
}

func (s *Sampler) Running() bool {
	return s.device != nil
}

// Frames delivers one value per frame while a device is tracked. It returns nil otherwise, which blocks forever in a select.
func (s *Sampler) Frames() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

func (s *Sampler) HandleEvent(ev Event) {
	switch ev.Type {
	case Connected:
		if s.device != nil {
			log.Debugf("Ignoring connected gamepad %v, already using %v", ev.Device.ID(), s.device.ID())
			return
		}
		log.Printf("Using gamepad %v", ev.Device.ID())
		s.adopt(ev.Device)
	case Disconnected:
		if s.device == nil || ev.Device.ID() != s.device.ID() {
			log.Debugf("Untracked gamepad %v disconnected", ev.Device.ID())
			return
		}
		if next := s.findOther(ev.Device); next != nil {
			log.Printf("Gamepad %v disconnected, switching to %v", ev.Device.ID(), next.ID())
			s.adopt(next)
		} else {
			log.Printf("Gamepad %v disconnected, no other gamepad available", ev.Device.ID())
			s.Stop()
			s.cell.Publish(State{})
		}
	}
}

// Tick samples the tracked device once and publishes the result. It does nothing without a device.
func (s *Sampler) Tick() {
	if s.device == nil {
		return
	}
	s.cell.Publish(NewState(s.device.Sample(), s.Layout, s.Thresholds))
}

func (s *Sampler) Stop() {
	s.device = nil
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

func (s *Sampler) adopt(dev Device) {
	s.device = dev
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.frameInterval())
	}
}

func (s *Sampler) findOther(gone Device) Device {
	if s.platform == nil {
		return nil
	}
	for _, dev := range s.platform.Devices() {
		if dev.ID() != gone.ID() {
			return dev
		}
	}
	return nil
}

func (s *Sampler) frameInterval() time.Duration {
	rate := s.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}
