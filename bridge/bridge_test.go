package bridge

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/antongulenko/rover-bridge/control"
	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu     sync.Mutex
	frames [][]byte
}

func (s *recordingSender) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, data)
	return nil
}

func (s *recordingSender) messages(t *testing.T) []message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []message.Message
	for _, frame := range s.frames {
		msg, err := message.Decode(frame)
		require.NoError(t, err)
		res = append(res, msg)
	}
	return res
}

func (s *recordingSender) kinds(t *testing.T) []message.Kind {
	var res []message.Kind
	for _, msg := range s.messages(t) {
		res = append(res, msg.Kind())
	}
	return res
}

type fakeDevice struct {
	mu  sync.Mutex
	raw *gamepad.RawState
}

func (d *fakeDevice) ID() string { return "fake" }

func (d *fakeDevice) Sample() *gamepad.RawState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

type fakePlatform struct{}

func (fakePlatform) Devices() []gamepad.Device { return nil }

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestBridge() (*Bridge, *recordingSender, *testClock) {
	sender := new(recordingSender)
	clock := &testClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	b := New(DefaultConfig, fakePlatform{}, sender)
	b.Clock = clock.Now
	b.PTZ.Clock = clock.Now
	return b, sender, clock
}

func pressingB() *gamepad.RawState {
	raw := &gamepad.RawState{
		Buttons: make([]gamepad.Button, 16),
		Axes:    make([]float64, 6),
	}
	raw.Buttons[gamepad.StandardLayout.Buttons.B].Pressed = true
	return raw
}

func TestActivate(t *testing.T) {
	a := assert.New(t)
	b, sender, _ := newTestBridge()
	a.NoError(b.Activate(ArmSurface))
	a.Equal(ArmSurface, b.Active())
	a.Equal([]message.Kind{message.KindArmManual}, sender.kinds(t))

	a.Error(b.Activate("kitchen"))
	a.Equal(ArmSurface, b.Active())
}

func TestOnlyActiveSurfaceSends(t *testing.T) {
	a := assert.New(t)
	b, sender, clock := newTestBridge()
	require.NoError(t, b.Activate(DrivingSurface))

	clock.advance(time.Second)
	b.Cell.Publish(gamepad.NewState(pressingB(), &gamepad.StandardLayout, gamepad.DefaultThresholds))
	msgs := sender.messages(t)
	require.Len(t, msgs, 2)
	core, ok := msgs[1].(message.CoreControl)
	require.True(t, ok)
	a.True(core.Data.Brake)

	// The bio surface did not see the B press
	a.False(b.Bio.Laser)
	a.Nil(b.Throttler(BioSurface).Current())
}

func TestTogglesRefreshActiveSurface(t *testing.T) {
	a := assert.New(t)
	b, sender, clock := newTestBridge()
	require.NoError(t, b.Activate(ArmSurface))

	clock.advance(time.Second)
	b.ToggleArmLaser()
	msgs := sender.messages(t)
	require.Len(t, msgs, 2)
	arm, ok := msgs[1].(message.ArmManual)
	require.True(t, ok)
	a.Equal(1, arm.Data.Laser)

	clock.advance(time.Second)
	b.ToggleArmIK()
	msgs = sender.messages(t)
	require.Len(t, msgs, 3)
	a.Equal(message.KindArmIK, msgs[2].Kind())

	// Inactive surfaces keep the toggle, but send nothing
	clock.advance(time.Second)
	b.ToggleBioLaser()
	b.ToggleSingleStick()
	a.True(b.Bio.Laser)
	a.True(b.Driving.SingleStick)
	a.Len(sender.messages(t), 3)
}

func TestCameraCommands(t *testing.T) {
	a := assert.New(t)
	b, sender, _ := newTestBridge()
	b.MoveCamera(control.PtzStep, 0)
	b.ZoomCamera(control.PtzZoomStep)
	b.ResetAntenna()
	b.ResetLSS()
	a.Equal([]message.Kind{
		message.KindPtzControl,
		message.KindPtzControl,
		message.KindAntennaControl,
		message.KindAnchorRelay,
	}, sender.kinds(t))
	a.Equal(float64(control.PtzStep), b.PTZ.Yaw)
}

func TestSessionStartedClearsFeedback(t *testing.T) {
	a := assert.New(t)
	b, _, _ := newTestBridge()
	b.Demux.Handle([]byte(`{"type":"/core/feedback","timestamp":5,"data":{"gps_sats":7}}`))
	_, ok := b.Demux.CoreFeedback()
	a.True(ok)

	b.SessionStarted(uuid.New())
	_, ok = b.Demux.CoreFeedback()
	a.False(ok)
	_, ok = b.Demux.LastUpdate()
	a.False(ok)
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	sender := new(recordingSender)
	config := DefaultConfig
	config.FrameRate = 200
	b := New(config, fakePlatform{}, sender)

	ctx, cancel := context.WithCancel(context.Background())
	hw := make(chan gamepad.Event)
	inbound := make(chan []byte)
	done := make(chan error, 1)
	go func() {
		done <- b.Run(ctx, hw, inbound)
	}()

	hw <- gamepad.Event{Type: gamepad.Connected, Device: &fakeDevice{raw: pressingB()}}
	inbound <- []byte(`{"type":"/bio/feedback","timestamp":9,"data":{}}`)

	a.Eventually(func() bool {
		for _, msg := range sender.messages(t) {
			if core, ok := msg.(message.CoreControl); ok && core.Data.Brake {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	a.True(b.Cell.Load().B)
	last, ok := b.Demux.LastUpdate()
	a.True(ok)
	a.Equal(int64(9), last)

	a.True(b.HandleKey('m'))
	a.False(b.HandleKey('#'))
	singleStick := make(chan bool)
	a.True(b.Do(func() { singleStick <- b.Driving.SingleStick }))
	a.True(<-singleStick)

	cancel()
	select {
	case err := <-done:
		a.NoError(err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	a.False(b.Do(func() {}))
}

func TestRunUnknownSurface(t *testing.T) {
	config := DefaultConfig
	config.Surface = "kitchen"
	b := New(config, fakePlatform{}, new(recordingSender))
	assert.Error(t, b.Run(context.Background(), nil, nil))
}

func TestBioOperatorCommands(t *testing.T) {
	a := assert.New(t)
	b, sender, clock := newTestBridge()
	require.NoError(t, b.Activate(BioSurface))

	clock.advance(time.Second)
	require.NoError(t, b.Execute("pump 2 -1.5"))
	clock.advance(time.Second)
	require.NoError(t, b.Execute("  fan 3 500 "))
	clock.advance(time.Second)
	require.NoError(t, b.Execute("servo 2"))
	clock.advance(time.Second)
	b.CycleServo()
	clock.advance(time.Second)
	b.CycleServo()

	msgs := sender.messages(t)
	require.Len(t, msgs, 6)
	data := func(i int) message.BioControlData {
		return msgs[i].(message.BioControl).Data
	}
	a.Equal(2, data(1).PumpID)
	a.Equal(-1.5, data(1).PumpAmount)
	a.Equal(0, data(1).FanID)

	// One-shot requests are only carried once
	a.Equal(3, data(2).FanID)
	a.Equal(500.0, data(2).FanDuration)
	a.Equal(0, data(2).PumpID)

	a.Equal(2, data(3).ServoID)
	a.Equal(0, data(3).FanID)
	a.Equal(3, data(4).ServoID)
	a.Equal(0, data(5).ServoID)
}

func TestOperatorCommandErrors(t *testing.T) {
	a := assert.New(t)
	b, sender, _ := newTestBridge()
	require.NoError(t, b.Activate(BioSurface))
	b.Bio.ServoID = 1

	for _, line := range []string{
		"pump 2",
		"pump x 1",
		"pump 0 1",
		"pump 1 lots",
		"fan 1 -5",
		"servo 9",
		"servo -1",
		"servo",
		"dance",
	} {
		a.Error(b.Execute(line), line)
	}
	a.NoError(b.Execute("   "))
	a.Equal(1, b.Bio.ServoID)
	a.Len(sender.messages(t), 1)
}

func TestRunBioOperatorInput(t *testing.T) {
	a := assert.New(t)
	sender := new(recordingSender)
	config := DefaultConfig
	config.Surface = BioSurface
	config.FrameRate = 200
	b := New(config, fakePlatform{}, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hw := make(chan gamepad.Event)
	go func() {
		_ = b.Run(ctx, hw, nil)
	}()
	hw <- gamepad.Event{Type: gamepad.Connected, Device: &fakeDevice{raw: pressingB()}}

	a.True(b.HandleKey('v'))
	b.HandleCommand("pump 1 2.5")
	b.HandleCommand("no such command")

	a.Eventually(func() bool {
		for _, msg := range sender.messages(t) {
			if bio, ok := msg.(message.BioControl); ok && bio.Data.PumpID == 1 {
				return bio.Data.PumpAmount == 2.5 && bio.Data.ServoID == 1
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}
