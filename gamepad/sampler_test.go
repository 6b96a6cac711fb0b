package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	id  string
	raw *RawState
}

func (d *fakeDevice) ID() string        { return d.id }
func (d *fakeDevice) Sample() *RawState { return d.raw }

type fakePlatform struct {
	devices []Device
}

func (p *fakePlatform) Devices() []Device { return p.devices }

func pressing(button int) *RawState {
	raw := rawState()
	raw.Buttons[button].Pressed = true
	return raw
}

func TestSamplerNoDevice(t *testing.T) {
	a := assert.New(t)
	cell := NewCell()
	s := NewSampler(new(fakePlatform), cell)
	a.False(s.Running())
	a.Nil(s.Frames())
	s.Tick()
	a.Equal(State{}, cell.Load())
}

func TestSamplerFirstConnectedWins(t *testing.T) {
	a := assert.New(t)
	cell := NewCell()
	var published []State
	cell.Subscribe(func(st State) {
		published = append(published, st)
	})
	first := &fakeDevice{id: "first", raw: pressing(0)}
	second := &fakeDevice{id: "second", raw: pressing(1)}
	s := NewSampler(&fakePlatform{devices: []Device{first, second}}, cell)
	defer s.Stop()

	s.HandleEvent(Event{Type: Connected, Device: first})
	a.True(s.Running())
	a.NotNil(s.Frames())
	s.HandleEvent(Event{Type: Connected, Device: second})
	a.Equal(first, s.Device())

	s.Tick()
	a.True(cell.Load().A)
	a.False(cell.Load().B)
	a.Len(published, 1)
}

func TestSamplerDisconnectFallback(t *testing.T) {
	a := assert.New(t)
	cell := NewCell()
	first := &fakeDevice{id: "first", raw: pressing(0)}
	second := &fakeDevice{id: "second", raw: pressing(1)}
	platform := &fakePlatform{devices: []Device{first, second}}
	s := NewSampler(platform, cell)
	defer s.Stop()

	s.HandleEvent(Event{Type: Connected, Device: first})
	s.HandleEvent(Event{Type: Connected, Device: second})

	// Disconnect of an untracked device changes nothing
	platform.devices = []Device{first}
	s.HandleEvent(Event{Type: Disconnected, Device: second})
	a.Equal(first, s.Device())

	platform.devices = []Device{first, second}
	s.HandleEvent(Event{Type: Disconnected, Device: first})
	a.Equal(second, s.Device())
	a.True(s.Running())
	s.Tick()
	a.True(cell.Load().B)
}

func TestSamplerDisconnectStops(t *testing.T) {
	a := assert.New(t)
	cell := NewCell()
	dev := &fakeDevice{id: "only", raw: pressing(2)}
	platform := &fakePlatform{devices: []Device{dev}}
	s := NewSampler(platform, cell)

	s.HandleEvent(Event{Type: Connected, Device: dev})
	s.Tick()
	a.True(cell.Load().X)
	a.True(cell.Load().Connected)

	platform.devices = nil
	s.HandleEvent(Event{Type: Disconnected, Device: dev})
	a.False(s.Running())
	a.Nil(s.Frames())
	a.Equal(State{}, cell.Load())

	// No further samples without a device
	dev.raw = pressing(3)
	s.Tick()
	a.Equal(State{}, cell.Load())

	// A new connection restarts sampling
	s.HandleEvent(Event{Type: Connected, Device: dev})
	a.NotNil(s.Frames())
	s.Tick()
	a.True(cell.Load().Y)
	s.Stop()
}

func TestCellSubscribers(t *testing.T) {
	a := assert.New(t)
	cell := NewCell()
	var calls1, calls2 int
	cell.Subscribe(func(State) { calls1++ })
	cell.Subscribe(func(st State) {
		calls2++
		a.True(st.Connected)
	})
	cell.Publish(State{Connected: true})
	a.Equal(1, calls1)
	a.Equal(1, calls2)
	a.True(cell.Load().Connected)
}
