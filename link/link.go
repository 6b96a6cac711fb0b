package link

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotConnected = errors.New("websocket is not connected")
	ErrBackpressure = errors.New("websocket write queue is full")
)

var DefaultConfig = Config{
	URL:           "ws://localhost:8080/api/ws",
	RetryDuration: 2 * time.Second,
	WriteTimeout:  time.Second,
	WriteQueue:    64,
}

type Config struct {
	URL           string
	RetryDuration time.Duration
	WriteTimeout  time.Duration
	WriteQueue    int
}

func (c *Config) RegisterFlags() {
	flag.StringVar(&c.URL, "url", c.URL, "Websocket URL of the rover backend")
	flag.DurationVar(&c.RetryDuration, "reconnect", c.RetryDuration, "Time to wait before reconnecting the websocket")
	flag.DurationVar(&c.WriteTimeout, "write-timeout", c.WriteTimeout, "Timeout for writing one websocket message")
	flag.IntVar(&c.WriteQueue, "write-queue", c.WriteQueue, "Number of outgoing messages that can be queued before messages are dropped")
}

// Link is a websocket client channel that reconnects on failure. Every successful connection is a new session.
type Link struct {
	Config

	// Called on the Run goroutine whenever a new session starts
	OnSession func(id uuid.UUID)

	mu      sync.Mutex
	writeCh chan []byte
	session uuid.UUID
}

func New(config Config) *Link {
	return &Link{Config: config}
}

// Send queues one text message without blocking. Messages are never queued across sessions.
func (l *Link) Send(data []byte) error {
	l.mu.Lock()
	ch := l.writeCh
	l.mu.Unlock()
	if ch == nil {
		return ErrNotConnected
	}
	select {
	case ch <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// Session returns the id of the current session, if connected
func (l *Link) Session() (uuid.UUID, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session, l.writeCh != nil
}

// Run connects and delivers every inbound text message to inbound, until ctx is done.
func (l *Link) Run(ctx context.Context, inbound chan<- []byte) error {
	for {
		err := l.runSession(ctx, inbound)
		if ctx.Err() != nil {
			return nil
		}
		log.Errorf("Websocket connection to %v failed: %v. Retrying in %v...", l.URL, err, l.RetryDuration)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.RetryDuration):
		}
	}
}

func (l *Link) runSession(ctx context.Context, inbound chan<- []byte) error {
	conn, _, err := websocket.Dial(ctx, l.URL, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	id := uuid.New()
	logger := log.WithField("session", id)
	logger.Printf("Connected to %v", l.URL)
	queue := l.WriteQueue
	if queue <= 0 {
		queue = DefaultConfig.WriteQueue
	}
	writeCh := make(chan []byte, queue)
	l.setSession(id, writeCh)
	defer l.setSession(uuid.Nil, nil)
	if l.OnSession != nil {
		l.OnSession(id)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return l.readLoop(ctx, logger, conn, inbound)
	})
	eg.Go(func() error {
		return l.writeLoop(ctx, conn, writeCh)
	})
	err = eg.Wait()
	logger.Printf("Disconnected from %v", l.URL)
	return err
}

func (l *Link) setSession(id uuid.UUID, writeCh chan []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.session = id
	l.writeCh = writeCh
}

func (l *Link) readLoop(ctx context.Context, logger *log.Entry, conn *websocket.Conn, inbound chan<- []byte) error {
	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return fmt.Errorf("Connection closed by peer (%v)", status)
			}
			return err
		}
		if msgType != websocket.MessageText {
			logger.Warnf("Ignoring websocket message of type %v", msgType)
			continue
		}
		select {
		case inbound <- data:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (l *Link) writeLoop(ctx context.Context, conn *websocket.Conn, writeCh <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data := <-writeCh:
			if err := l.write(ctx, conn, data); err != nil {
				return err
			}
		}
	}
}

func (l *Link) write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	if l.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.WriteTimeout)
		defer cancel()
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// DummySender only logs outgoing messages
type DummySender struct{}

func (DummySender) Send(data []byte) error {
	log.Printf("Dummy mode, not sending: %s", data)
	return nil
}
