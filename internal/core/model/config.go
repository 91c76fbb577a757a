package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCountdown indicates initial countdown values outside their ranges.
var ErrInvalidCountdown = errors.New("invalid countdown")

// ErrUnknownPolicy indicates an unrecognised terminal policy name.
var ErrUnknownPolicy = errors.New("unknown terminal policy")

// Unit limits.
const (
	HoursPerDay      = 24
	MinutesPerHour   = 60
	SecondsPerMinute = 60
)

// TerminalPolicy decides what happens once every unit reaches zero.
type TerminalPolicy int

const (
	// TerminalWrap keeps rolling over past zero.
	TerminalWrap TerminalPolicy = iota
	// TerminalHalt stops the countdown at zero.
	TerminalHalt
)

// String returns the policy name.
func (policy TerminalPolicy) String() string {
	switch policy {
	case TerminalWrap:
		return "wrap"
	case TerminalHalt:
		return "halt"
	default:
		return fmt.Sprintf("policy(%d)", int(policy))
	}
}

// ParseTerminalPolicy converts a policy name to a TerminalPolicy.
func ParseTerminalPolicy(name string) (TerminalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wrap", "":
		return TerminalWrap, nil
	case "halt":
		return TerminalHalt, nil
	default:
		return TerminalWrap, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// CountdownConfig contains the initial values for a countdown session.
type CountdownConfig struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int

	Policy TerminalPolicy
}

// Validate reports the first field outside its range.
func (config CountdownConfig) Validate() error {
	if config.Days < 0 {
		return fmt.Errorf("%w: days %d is negative", ErrInvalidCountdown, config.Days)
	}
	if config.Hours < 0 || config.Hours >= HoursPerDay {
		return fmt.Errorf("%w: hours %d outside 0..%d", ErrInvalidCountdown, config.Hours, HoursPerDay-1)
	}
	if config.Minutes < 0 || config.Minutes >= MinutesPerHour {
		return fmt.Errorf("%w: minutes %d outside 0..%d", ErrInvalidCountdown, config.Minutes, MinutesPerHour-1)
	}
	if config.Seconds < 0 || config.Seconds >= SecondsPerMinute {
		return fmt.Errorf("%w: seconds %d outside 0..%d", ErrInvalidCountdown, config.Seconds, SecondsPerMinute-1)
	}
	if config.Policy != TerminalWrap && config.Policy != TerminalHalt {
		return fmt.Errorf("%w: %v", ErrUnknownPolicy, config.Policy)
	}
	return nil
}
