package control

import (
	"flag"
	"time"

	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
	log "github.com/sirupsen/logrus"
)

const (
	ArmPollingRate  = 60
	CorePollingRate = 20
)

var DefaultIntervals = Intervals{
	Arm:  time.Second / ArmPollingRate,
	Core: time.Second / CorePollingRate,
}

type Intervals struct {
	Arm  time.Duration
	Core time.Duration
}

func (i *Intervals) RegisterFlags() {
	flag.DurationVar(&i.Arm, "arm-interval", i.Arm, "Minimum time between two arm control messages")
	flag.DurationVar(&i.Core, "core-interval", i.Core, "Minimum time between two driving or bio control messages")
}

type Sender interface {
	Send(data []byte) error
}

// Surface derives the complete command of one control surface from a gamepad state.
type Surface interface {
	Name() string
	Interval() time.Duration
	Command(state gamepad.State, now time.Time) message.Message
}

// Observer is implemented by surfaces with local state that reacts to changes of the gamepad state.
type Observer interface {
	Observe(prev, cur gamepad.State)
}

// SentNotifier is implemented by surfaces that need to know when a command was due for transmission.
// Sent is called whether or not the transmission succeeded.
type SentNotifier interface {
	Sent(msg message.Message)
}

// Gate allows one transmission per interval
type Gate struct {
	Interval time.Duration

	last time.Time
	sent bool
}

func (g *Gate) Allow(now time.Time) bool {
	if g.sent && now.Sub(g.last) < g.Interval {
		return false
	}
	g.last = now
	g.sent = true
	return true
}

// Throttler recomputes the command of a surface on every update, but only sends it if the surface interval has
// passed since the last transmission. Commands that are not sent are discarded.
type Throttler struct {
	surface Surface
	sender  Sender
	gate    Gate

	state   gamepad.State
	current message.Message
	lastErr error
}

func NewThrottler(surface Surface, sender Sender) *Throttler {
	return &Throttler{
		surface: surface,
		sender:  sender,
		gate:    Gate{Interval: surface.Interval()},
	}
}

func (t *Throttler) Surface() Surface {
	return t.surface
}

// Current returns the most recently computed command, sent or not
func (t *Throttler) Current() message.Message {
	return t.current
}

// Update feeds a new gamepad state and reports whether a command was transmitted.
func (t *Throttler) Update(state gamepad.State, now time.Time) bool {
	if observer, ok := t.surface.(Observer); ok {
		observer.Observe(t.state, state)
	}
	t.state = state
	return t.tick(now)
}

// Refresh recomputes the command after a change of local surface settings.
func (t *Throttler) Refresh(now time.Time) bool {
	return t.tick(now)
}

func (t *Throttler) tick(now time.Time) bool {
	cmd := t.surface.Command(t.state, now)
	t.current = cmd
	if !t.gate.Allow(now) {
		return false
	}
	err := send(t.sender, cmd)
	// A command that failed to send is not repeated later, the next tick supersedes it
	if notifier, ok := t.surface.(SentNotifier); ok {
		notifier.Sent(cmd)
	}
	if err != nil {
		// Repeated errors (e.g. while disconnected) are only logged once
		if t.lastErr == nil || t.lastErr.Error() != err.Error() {
			log.Errorf("Failed to send %v command: %v", t.surface.Name(), err)
		} else {
			log.Debugf("Failed to send %v command: %v", t.surface.Name(), err)
		}
		t.lastErr = err
		return false
	}
	t.lastErr = nil
	return true
}

func send(sender Sender, msg message.Message) error {
	data, err := message.Encode(msg)
	if err != nil {
		return err
	}
	log.Debugf("Sending %s", data)
	return sender.Send(data)
}
