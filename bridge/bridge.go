package bridge

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/antongulenko/rover-bridge/control"
	"github.com/antongulenko/rover-bridge/feedback"
	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DrivingSurface = "driving"
	ArmSurface     = "arm"
	BioSurface     = "bio"

	DefaultSurface = DrivingSurface
)

var DefaultConfig = Config{
	Layout:     &gamepad.StandardLayout,
	Intervals:  control.DefaultIntervals,
	Thresholds: gamepad.DefaultThresholds,
	FrameRate:  gamepad.DefaultFrameRate,
	Surface:    DefaultSurface,
}

type Config struct {
	Layout     *gamepad.Layout
	Intervals  control.Intervals
	Thresholds gamepad.Thresholds
	FrameRate  int

	// Initially active control surface
	Surface string
}

func (c *Config) RegisterFlags() {
	c.Intervals.RegisterFlags()
	c.Thresholds.RegisterFlags()
	flag.IntVar(&c.FrameRate, "frame-rate", c.FrameRate, "Number of gamepad samples per second")
	flag.StringVar(&c.Surface, "surface", c.Surface, fmt.Sprintf("Initially active control surface %v", Surfaces()))
}

// Bridge runs the event loop that connects the gamepad, the control surfaces and the feedback demultiplexer.
// Gamepad frames, hardware events, inbound frames and operator commands are handled one at a time on the goroutine
// calling Run. Only the active surface receives gamepad states and sends commands.
type Bridge struct {
	Sampler *gamepad.Sampler
	Cell    *gamepad.Cell
	Demux   *feedback.Demux

	Driving *control.Driving
	Arm     *control.Arm
	Bio     *control.Bio
	PTZ     *control.PTZ

	// Defaults to time.Now
	Clock func() time.Time

	config     Config
	sender     control.Sender
	throttlers map[string]*control.Throttler
	active     string
	commands   chan func()
	done       chan struct{}
}

func New(config Config, platform gamepad.Platform, sender control.Sender) *Bridge {
	b := &Bridge{
		Cell:     gamepad.NewCell(),
		Demux:    feedback.NewDemux(),
		Driving:  control.NewDriving(config.Intervals.Core),
		Arm:      control.NewArm(config.Intervals.Arm),
		Bio:      control.NewBio(config.Intervals.Core),
		PTZ:      control.NewPTZ(sender),
		Clock:    time.Now,
		config:   config,
		sender:   sender,
		commands: make(chan func(), 16),
		done:     make(chan struct{}),
	}
	b.Sampler = gamepad.NewSampler(platform, b.Cell)
	if config.Layout != nil {
		b.Sampler.Layout = config.Layout
	}
	b.Sampler.Thresholds = config.Thresholds
	b.Sampler.FrameRate = config.FrameRate
	b.throttlers = map[string]*control.Throttler{
		DrivingSurface: control.NewThrottler(b.Driving, sender),
		ArmSurface:     control.NewThrottler(b.Arm, sender),
		BioSurface:     control.NewThrottler(b.Bio, sender),
	}
	b.Cell.Subscribe(b.stateChanged)
	return b
}

func Surfaces() []string {
	return []string{DrivingSurface, ArmSurface, BioSurface}
}

// Active returns the name of the active control surface. Must be called on the event loop.
func (b *Bridge) Active() string {
	return b.active
}

// Throttler returns the throttler of the named surface, or nil
func (b *Bridge) Throttler(surface string) *control.Throttler {
	return b.throttlers[surface]
}

// Run handles events until ctx is done. A closed hw or inbound channel is ignored from then on.
func (b *Bridge) Run(ctx context.Context, hw <-chan gamepad.Event, inbound <-chan []byte) error {
	defer close(b.done)
	defer b.Sampler.Stop()
	if b.active == "" {
		if err := b.Activate(b.config.Surface); err != nil {
			return err
		}
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-hw:
			if !ok {
				hw = nil
				continue
			}
			log.Debugf("Gamepad %v %v", ev.Device.ID(), ev.Type)
			b.Sampler.HandleEvent(ev)
		case <-b.Sampler.Frames():
			b.Sampler.Tick()
		case frame, ok := <-inbound:
			if !ok {
				inbound = nil
				continue
			}
			b.Demux.Handle(frame)
		case fn := <-b.commands:
			fn()
		}
	}
}

// Do executes fn on the event loop. It returns false if the loop has already finished.
func (b *Bridge) Do(fn func()) bool {
	select {
	case b.commands <- fn:
		return true
	case <-b.done:
		return false
	}
}

// SessionStarted clears all feedback of the previous channel session. Safe to call from any goroutine.
func (b *Bridge) SessionStarted(id uuid.UUID) {
	log.WithField("session", id).Println("New channel session, clearing feedback")
	b.Demux.Reset()
}

// Activate switches the control surface that receives the gamepad states. Must be called on the event loop.
func (b *Bridge) Activate(surface string) error {
	t, ok := b.throttlers[surface]
	if !ok {
		return fmt.Errorf("Unknown control surface %q, available: %v", surface, Surfaces())
	}
	if b.active != surface {
		log.Printf("Active control surface: %v", surface)
	}
	b.active = surface
	t.Update(b.Cell.Load(), b.Clock())
	return nil
}

func (b *Bridge) stateChanged(state gamepad.State) {
	if t := b.throttlers[b.active]; t != nil {
		t.Update(state, b.Clock())
	}
}

// refresh recomputes the command of the named surface after a local toggle, if it is active
func (b *Bridge) refresh(surface string) {
	if surface == b.active {
		b.throttlers[surface].Refresh(b.Clock())
	}
}
