package gamepad

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type TriggerSource string

const (
	// Analog axis in -1..1, mapped to 0..1. A reading of exactly 0 counts as missing.
	TriggerAxis TriggerSource = "axis"

	// Analog value of the trigger button
	TriggerButton TriggerSource = "button"
)

// StandardLayout is the button and axis order of the standard gamepad mapping.
var StandardLayout = Layout{
	Name: "standard",
	Buttons: ButtonLayout{
		A: 0, B: 1, X: 2, Y: 3,
		LeftBumper: 4, RightBumper: 5,
		LeftTrigger: 6, RightTrigger: 7,
		Select: 8, Start: 9,
		LeftStick: 10, RightStick: 11,
		DpadUp: 12, DpadDown: 13, DpadLeft: 14, DpadRight: 15,
	},
	Axes: AxisLayout{
		LeftX: 0, LeftY: 1,
		RightX: 2, RightY: 3,
		LeftTrigger: 4, RightTrigger: 5,
		InvertY: true,
	},
	TriggerSources: []TriggerSource{TriggerAxis, TriggerButton},
}

// Layout is a device profile: which raw button and axis index carries which control.
type Layout struct {
	Name           string          `yaml:"name"`
	Buttons        ButtonLayout    `yaml:"buttons"`
	Axes           AxisLayout      `yaml:"axes"`
	TriggerSources []TriggerSource `yaml:"trigger_sources"`
}

type ButtonLayout struct {
	A           int `yaml:"a"`
	B           int `yaml:"b"`
	X           int `yaml:"x"`
	Y           int `yaml:"y"`
	LeftBumper  int `yaml:"left_bumper"`
	RightBumper int `yaml:"right_bumper"`

	// Used by TriggerButton
	LeftTrigger  int `yaml:"left_trigger"`
	RightTrigger int `yaml:"right_trigger"`

	Select     int `yaml:"select"`
	Start      int `yaml:"start"`
	LeftStick  int `yaml:"left_stick"`
	RightStick int `yaml:"right_stick"`
	DpadUp     int `yaml:"dpad_up"`
	DpadDown   int `yaml:"dpad_down"`
	DpadLeft   int `yaml:"dpad_left"`
	DpadRight  int `yaml:"dpad_right"`
}

type AxisLayout struct {
	LeftX  int `yaml:"left_x"`
	LeftY  int `yaml:"left_y"`
	RightX int `yaml:"right_x"`
	RightY int `yaml:"right_y"`

	// Used by TriggerAxis
	LeftTrigger  int `yaml:"left_trigger"`
	RightTrigger int `yaml:"right_trigger"`

	// Most devices report "down" as positive y
	InvertY bool `yaml:"invert_y"`
}

// LoadLayout reads a YAML device profile. Fields missing from the file keep their StandardLayout value.
func LoadLayout(path string) (*Layout, error) {
	return StandardLayout.Load(path)
}

func ParseLayout(data []byte) (*Layout, error) {
	return StandardLayout.Parse(data)
}

// Load reads a YAML device profile on top of l. Fields missing from the file keep their value from l.
func (l Layout) Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(data)
}

func (l Layout) Parse(data []byte) (*Layout, error) {
	layout := l
	layout.TriggerSources = nil
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("Failed to parse gamepad layout: %w", err)
	}
	if len(layout.TriggerSources) == 0 {
		layout.TriggerSources = l.TriggerSources
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (l *Layout) Validate() error {
	for _, src := range l.TriggerSources {
		if src != TriggerAxis && src != TriggerButton {
			return fmt.Errorf("Gamepad layout %v: unknown trigger source %q", l.Name, src)
		}
	}
	return nil
}

func (l *Layout) trigger(raw *RawState, axis, button int) float64 {
	for _, src := range l.TriggerSources {
		switch src {
		case TriggerAxis:
			if val, ok := raw.axis(axis); ok && val != 0 {
				return (val + 1) / 2
			}
		case TriggerButton:
			if b, ok := raw.button(button); ok {
				return b.Value
			}
		}
	}
	return 0
}
