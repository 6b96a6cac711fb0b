package feedback

import (
	"sync"

	"github.com/antongulenko/rover-bridge/message"
	log "github.com/sirupsen/logrus"
)

// SubscriberBuffer is the channel buffer of each subscription
const SubscriberBuffer = 16

// Demux routes inbound frames into one slot per feedback kind. Each slot holds the last message of its kind.
// Subscribers of one kind are only notified about updates of that kind.
type Demux struct {
	mu          sync.RWMutex
	slots       map[message.Kind]message.Message
	lastUpdate  int64
	hasUpdate   bool
	subscribers map[message.Kind][]chan message.Message
}

func NewDemux() *Demux {
	return &Demux{
		slots:       make(map[message.Kind]message.Message),
		subscribers: make(map[message.Kind][]chan message.Message),
	}
}

// Handle processes one raw inbound frame. Malformed frames are logged and dropped, unknown kinds are dropped silently.
func (d *Demux) Handle(frame []byte) {
	msg, err := message.Decode(frame)
	if err != nil {
		log.Errorf("Dropping inbound frame: %v (%q)", err, frame)
		return
	}
	d.Store(msg)
}

// Store replaces the slot of the message's kind. It reports false for kinds without a slot.
func (d *Demux) Store(msg message.Message) bool {
	switch msg.(type) {
	case message.CoreFeedback, message.AutoFeedback, message.ArmSocketFeedback,
		message.ArmDigitFeedback, message.BioFeedback, message.AntennaFeedback:
	default:
		log.Debugf("Ignoring inbound message of kind %q", msg.Kind())
		return false
	}
	kind := msg.Kind()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slots[kind] = msg
	d.lastUpdate = msg.Time()
	d.hasUpdate = true

	// Sending does not block, so it can happen under the lock
	for _, ch := range d.subscribers[kind] {
		select {
		case ch <- msg:
		default:
			log.Warnf("Subscriber of %v is not keeping up, dropping message", kind)
		}
	}
	return true
}

func (d *Demux) Get(kind message.Kind) (message.Message, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	msg, ok := d.slots[kind]
	return msg, ok
}

// LastUpdate returns the timestamp of the most recently stored message
func (d *Demux) LastUpdate() (int64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastUpdate, d.hasUpdate
}

// Reset empties all slots, for example when a new channel session starts. Subscriptions stay intact.
func (d *Demux) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slots = make(map[message.Kind]message.Message)
	d.lastUpdate = 0
	d.hasUpdate = false
}

func (d *Demux) Subscribe(kind message.Kind) <-chan message.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	ch := make(chan message.Message, SubscriberBuffer)
	d.subscribers[kind] = append(d.subscribers[kind], ch)
	return ch
}

func (d *Demux) Unsubscribe(kind message.Kind, ch <-chan message.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	subs := d.subscribers[kind]
	for i, sub := range subs {
		if sub == ch {
			close(sub)
			d.subscribers[kind] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(d.subscribers[kind]) == 0 {
		delete(d.subscribers, kind)
	}
}

func (d *Demux) CoreFeedback() (res message.CoreFeedback, ok bool) {
	msg, ok := d.Get(message.KindCoreFeedback)
	if ok {
		res = msg.(message.CoreFeedback)
	}
	return
}

func (d *Demux) AutoFeedback() (res message.AutoFeedback, ok bool) {
	msg, ok := d.Get(message.KindAutoFeedback)
	if ok {
		res = msg.(message.AutoFeedback)
	}
	return
}

func (d *Demux) ArmSocketFeedback() (res message.ArmSocketFeedback, ok bool) {
	msg, ok := d.Get(message.KindArmSocketFeedback)
	if ok {
		res = msg.(message.ArmSocketFeedback)
	}
	return
}

func (d *Demux) ArmDigitFeedback() (res message.ArmDigitFeedback, ok bool) {
	msg, ok := d.Get(message.KindArmDigitFeedback)
	if ok {
		res = msg.(message.ArmDigitFeedback)
	}
	return
}

func (d *Demux) BioFeedback() (res message.BioFeedback, ok bool) {
	msg, ok := d.Get(message.KindBioFeedback)
	if ok {
		res = msg.(message.BioFeedback)
	}
	return
}

func (d *Demux) AntennaFeedback() (res message.AntennaFeedback, ok bool) {
	msg, ok := d.Get(message.KindAntennaFeedback)
	if ok {
		res = msg.(message.AntennaFeedback)
	}
	return
}
