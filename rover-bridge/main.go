package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/antongulenko/golib"
	"github.com/antongulenko/rover-bridge/bridge"
	"github.com/antongulenko/rover-bridge/control"
	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/joystick"
	"github.com/antongulenko/rover-bridge/link"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	r := roverBridge{
		bridgeConfig:   bridge.DefaultConfig,
		linkConfig:     link.DefaultConfig,
		joystickConfig: joystick.DefaultConfig,
		keyboard:       true,
		statusInterval: 5 * time.Second,
	}
	r.bridgeConfig.Layout = &joystick.DefaultLayout
	r.registerFlags()
	golib.RegisterFlags(golib.FlagsAll)
	flag.Parse()
	golib.ConfigureLogging()

	if r.layoutFile != "" {
		layout, err := joystick.DefaultLayout.Load(r.layoutFile)
		golib.Checkerr(err)
		log.Printf("Using gamepad layout %v from %v", layout.Name, r.layoutFile)
		r.bridgeConfig.Layout = layout
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// "Clean" shutdown with Ctrl-C signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	var cleanupOnce sync.Once
	cleanup := func() {
		cleanupOnce.Do(func() {
			cancel()
			r.stop()
		})
	}
	defer cleanup()
	go func() {
		fmt.Println("Received signal", <-c)
		cleanup()
		os.Exit(0)
	}()

	golib.Checkerr(r.run(ctx, cancel))
}

type roverBridge struct {
	bridgeConfig   bridge.Config
	linkConfig     link.Config
	joystickConfig joystick.Config
	layoutFile     string
	dummyMode      bool
	keyboard       bool
	statusInterval time.Duration

	link     *link.Link
	bridge   *bridge.Bridge
	terminal *terminal
}

func (r *roverBridge) registerFlags() {
	r.bridgeConfig.RegisterFlags()
	r.linkConfig.RegisterFlags()
	r.joystickConfig.RegisterFlags()
	flag.StringVar(&r.layoutFile, "layout", r.layoutFile, "YAML file describing the button and axis layout of the gamepad (missing fields keep the Linux joystick defaults)")
	flag.BoolVar(&r.dummyMode, "dummy", r.dummyMode, "Dummy mode: do not connect to the rover, just print outgoing messages")
	flag.BoolVar(&r.keyboard, "keyboard", r.keyboard, "Read operator commands from the terminal")
	flag.DurationVar(&r.statusInterval, "status-interval", r.statusInterval, "Interval for logging the rover and gamepad status (0 to disable)")
}

func (r *roverBridge) run(ctx context.Context, cancel context.CancelFunc) error {
	var sender control.Sender
	if r.dummyMode {
		log.Println("Dummy mode: not connecting to the rover")
		sender = link.DummySender{}
	} else {
		r.link = link.New(r.linkConfig)
		sender = r.link
	}
	platform := joystick.NewPlatform(r.joystickConfig)
	r.bridge = bridge.New(r.bridgeConfig, platform, sender)
	if r.link != nil {
		r.link.OnSession = r.bridge.SessionStarted
	}

	hw := make(chan gamepad.Event)
	inbound := make(chan []byte)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return r.bridge.Run(ctx, hw, inbound)
	})
	eg.Go(func() error {
		return platform.Run(ctx, hw)
	})
	if r.link != nil {
		eg.Go(func() error {
			return r.link.Run(ctx, inbound)
		})
	}
	if r.statusInterval > 0 {
		eg.Go(func() error {
			r.statusLoop(ctx)
			return nil
		})
	}
	eg.Go(func() error {
		warningLoop(ctx, r.bridge.Demux)
		return nil
	})
	if r.keyboard {
		term, err := openTerminal(os.Stdin)
		if err != nil {
			log.Warnf("Keyboard input disabled: %v", err)
		} else {
			r.terminal = term
			log.Println("Keyboard: w/a/s/d camera, q/e zoom, r camera reset, l arm laser, k bio laser, " +
				"i arm IK, m single stick, v bio servo, t antenna reset, z LSS reset, 1/2/3 driving/arm/bio, Ctrl-C quit")
			log.Printf("Type ':' for a command line: %v", bridge.CommandHelp)
			// Reading stdin cannot be interrupted, so this is not part of the group
			go term.readKeys(r.bridge, cancel)
		}
	}
	return eg.Wait()
}

func (r *roverBridge) stop() {
	if r.terminal != nil {
		golib.Printerr(r.terminal.restore())
	}
}
