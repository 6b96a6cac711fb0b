package bridge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CommandHelp lists the operator command lines understood by Execute
const CommandHelp = "pump <id> <amount mL>, fan <id> <duration ms>, servo <id>"

// Execute runs one operator command line. Must be called on the event loop, see HandleCommand.
func (b *Bridge) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]
	switch fields[0] {
	case "pump":
		id, amount, err := idAndValue(args)
		if err != nil {
			return fmt.Errorf("pump: %w", err)
		}
		log.Printf("Requesting pump %v: %v mL", id, amount)
		b.RequestPump(id, amount)
	case "fan":
		id, duration, err := idAndValue(args)
		if err != nil {
			return fmt.Errorf("fan: %w", err)
		}
		if duration < 0 {
			return fmt.Errorf("fan: negative duration %v", duration)
		}
		log.Printf("Requesting fan %v for %v ms", id, duration)
		b.RequestFan(id, duration)
	case "servo":
		if len(args) != 1 {
			return errors.New("servo: expected <id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("servo: %w", err)
		}
		return b.SelectServo(id)
	default:
		return fmt.Errorf("Unknown command %q, available: %v", fields[0], CommandHelp)
	}
	return nil
}

// HandleCommand runs Execute on the event loop and logs a failing command
func (b *Bridge) HandleCommand(line string) {
	b.Do(func() {
		if err := b.Execute(line); err != nil {
			log.Errorln("Operator command failed:", err)
		}
	})
}

func idAndValue(args []string) (int, float64, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected <id> <value>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	if id <= 0 {
		return 0, 0, fmt.Errorf("id must be positive, got %v", id)
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return id, value, nil
}
