package joystick

import (
	"context"
	"flag"
	"sync"
	"time"

	"github.com/antongulenko/rover-bridge/gamepad"
	log "github.com/sirupsen/logrus"
	"github.com/splace/joysticks"
)

var DefaultConfig = Config{
	MaxIndex:      4,
	RetryDuration: 2 * time.Second,
	DpadHat:       4,
	DpadButtons:   DpadButtons{12, 13, 14, 15},
}

type Config struct {
	// Device indices 1..MaxIndex are scanned
	MaxIndex      int
	RetryDuration time.Duration

	// Hat that is mirrored to the dpad buttons, 0 disables it
	DpadHat     int
	DpadButtons DpadButtons
}

func (c *Config) RegisterFlags() {
	flag.IntVar(&c.MaxIndex, "js-max", c.MaxIndex, "Highest joystick device index to scan")
	flag.DurationVar(&c.RetryDuration, "js-retry", c.RetryDuration, "Time between probing for new joystick devices")
	flag.IntVar(&c.DpadHat, "js-dpad-hat", c.DpadHat, "Joystick hat that reports the dpad (0 to disable)")
}

// Platform scans for joystick devices and reports connects and disconnects.
type Platform struct {
	Config

	mu      sync.Mutex
	devices []*Device
}

func NewPlatform(config Config) *Platform {
	return &Platform{Config: config}
}

func (p *Platform) Devices() []gamepad.Device {
	p.mu.Lock()
	defer p.mu.Unlock()
	res := make([]gamepad.Device, len(p.devices))
	for i, d := range p.devices {
		res[i] = d
	}
	return res
}

// Run scans for devices until ctx is done. Connect and disconnect events are delivered to events.
func (p *Platform) Run(ctx context.Context, events chan<- gamepad.Event) error {
	gone := make(chan *Device)
	ticker := time.NewTicker(p.RetryDuration)
	defer ticker.Stop()
	for {
		p.scan(ctx, events, gone)
		select {
		case <-ctx.Done():
			return nil
		case d := <-gone:
			p.remove(d)
			log.Printf("Joystick %v disconnected", d.ID())
			if !deliver(ctx, events, gamepad.Event{Type: gamepad.Disconnected, Device: d}) {
				return nil
			}
		case <-ticker.C:
		}
	}
}

func (p *Platform) scan(ctx context.Context, events chan<- gamepad.Event, gone chan<- *Device) {
	for index := 1; index <= p.MaxIndex; index++ {
		if p.isOpen(index) || !joysticks.DeviceExists(uint8(index)) {
			continue
		}
		js := connect(ctx, index)
		if js == nil {
			continue
		}
		d := p.open(ctx, index, js, gone)
		log.Printf("Opened joystick index %v (%v buttons, %v axes)", index, len(js.Buttons), len(js.HatAxes))
		if !deliver(ctx, events, gamepad.Event{Type: gamepad.Connected, Device: d}) {
			return
		}
	}
}

func (p *Platform) open(ctx context.Context, index int, js *joysticks.HID, gone chan<- *Device) *Device {
	numHats := 0
	for numHats < len(js.HatAxes) && js.HatExists(uint8(numHats+1)) {
		numHats++
	}
	d := newDevice(index, len(js.Buttons), 2*numHats, p.DpadHat, p.DpadButtons)
	d.seed(js, len(js.Buttons), numHats)
	done := make(chan struct{})

	for b := 1; b <= len(js.Buttons); b++ {
		if !js.ButtonExists(uint8(b)) {
			continue
		}
		button := b
		pressed, released := js.OnClose(uint8(b)), js.OnOpen(uint8(b))
		go func() {
			for {
				select {
				case <-pressed:
					d.setButton(button, true)
				case <-released:
					d.setButton(button, false)
				case <-done:
					return
				}
			}
		}()
	}
	for h := 1; h <= numHats; h++ {
		hat := h
		moved := js.OnMove(uint8(h))
		go func() {
			for {
				select {
				case event := <-moved:
					coords := event.(joysticks.CoordsEvent)
					d.setHat(hat, coords.X, coords.Y)
				case <-done:
					return
				}
			}
		}()
	}

	p.mu.Lock()
	p.devices = append(p.devices, d)
	p.mu.Unlock()
	go func() {
		// Returns when the device can no longer be read
		js.ParcelOutEvents()
		d.close()
		close(done)
		select {
		case gone <- d:
		case <-ctx.Done():
		}
	}()
	return d
}

// connect opens a device. The driver only reports the end of its initial state burst with the first real
// event, so this can block until the device is used.
func connect(ctx context.Context, index int) *joysticks.HID {
	result := make(chan *joysticks.HID, 1)
	go func() {
		result <- joysticks.Connect(index)
	}()
	select {
	case js := <-result:
		return js
	case <-ctx.Done():
		return nil
	}
}

func (p *Platform) isOpen(index int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.devices {
		if d.index == index {
			return true
		}
	}
	return false
}

func (p *Platform) remove(d *Device) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, other := range p.devices {
		if other == d {
			p.devices = append(p.devices[:i:i], p.devices[i+1:]...)
			return
		}
	}
}

func deliver(ctx context.Context, events chan<- gamepad.Event, ev gamepad.Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
