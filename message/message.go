package message

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrUnknownKind = errors.New("unknown message kind")

// Message is one of the fixed set of message kinds, or Unrecognized.
type Message interface {
	Kind() Kind

	// Producer-side capture time in milliseconds since the epoch
	Time() int64

	payload() interface{}
}

// Timestamp converts t to the millisecond timestamp carried by messages
func Timestamp(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

type envelope struct {
	Type      Kind            `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Decode parses one text frame. Frames with an unknown type yield Unrecognized and no error.
// Data fields with a value of the wrong type keep their zero value.
func Decode(frame []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return nil, fmt.Errorf("Malformed message: %w", err)
	}
	ts := env.Timestamp
	var (
		msg Message
		err error
	)
	switch env.Type {
	case KindCoreFeedback:
		m := CoreFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindAutoFeedback:
		m := AutoFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindArmSocketFeedback:
		m := ArmSocketFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindArmDigitFeedback:
		m := ArmDigitFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindBioFeedback:
		m := BioFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindAntennaFeedback:
		m := AntennaFeedback{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindCoreControl:
		m := CoreControl{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindArmManual:
		m := ArmManual{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindArmIK:
		m := ArmIK{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindBioControl:
		m := BioControl{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindPtzControl:
		m := PtzControl{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindAntennaControl:
		m := AntennaControl{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	case KindAnchorRelay:
		m := AnchorRelay{Timestamp: ts}
		err = decodeData(env.Data, &m.Data)
		msg = m
	default:
		return Unrecognized{Type: env.Type, Timestamp: ts, Data: env.Data}, nil
	}
	if err != nil {
		// Fields of the wrong type are skipped, the rest of the data is kept
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("Malformed %v message: %w", env.Type, err)
		}
		log.WithField("type", env.Type).Warnf("Ignoring invalid message data: %v", err)
	}
	return msg, nil
}

func decodeData(raw json.RawMessage, into interface{}) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, into)
}

// Encode serializes a message into one text frame. Unrecognized messages are refused.
func Encode(msg Message) ([]byte, error) {
	if _, ok := msg.(Unrecognized); ok {
		return nil, fmt.Errorf("Cannot encode %q: %w", msg.Kind(), ErrUnknownKind)
	}
	data, err := json.Marshal(msg.payload())
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{
		Type:      msg.Kind(),
		Timestamp: msg.Time(),
		Data:      data,
	})
}
