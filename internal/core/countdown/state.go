package countdown

import (
	"fmt"
	"time"

	"countdown/internal/core/model"
)

const (
	maxHour   = model.HoursPerDay - 1
	maxMinute = model.MinutesPerHour - 1
	maxSecond = model.SecondsPerMinute - 1
)

// State holds the four counters plus the day seeding reference.
type State struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int

	// InitialDays is fixed at construction.
	InitialDays int
	// Seeded reports whether the first-evaluation day seeding already ran.
	Seeded bool
}

// NewState builds the state for a fresh session.
func NewState(config model.CountdownConfig) State {
	return State{
		Days:        config.Days,
		Hours:       config.Hours,
		Minutes:     config.Minutes,
		Seconds:     config.Seconds,
		InitialDays: config.Days,
	}
}

// Zero reports whether every unit reads zero.
func (state State) Zero() bool {
	return state.Days == 0 && state.Hours == 0 && state.Minutes == 0 && state.Seconds == 0
}

// Snapshot returns the read-only view of the counters.
func (state State) Snapshot() Snapshot {
	return Snapshot{
		Days:    state.Days,
		Hours:   state.Hours,
		Minutes: state.Minutes,
		Seconds: state.Seconds,
	}
}

// Snapshot is the value exposed to displays.
type Snapshot struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// String renders the snapshot the way displays show it.
func (snapshot Snapshot) String() string {
	return fmt.Sprintf("%d days %d hours %d minutes %d seconds",
		snapshot.Days, snapshot.Hours, snapshot.Minutes, snapshot.Seconds)
}

// Duration returns the remaining time the snapshot represents.
func (snapshot Snapshot) Duration() time.Duration {
	return time.Duration(snapshot.Days)*24*time.Hour +
		time.Duration(snapshot.Hours)*time.Hour +
		time.Duration(snapshot.Minutes)*time.Minute +
		time.Duration(snapshot.Seconds)*time.Second
}

// Changes is the set of units whose change notification fired in a tick.
type Changes uint8

const (
	ChangeSecond Changes = 1 << iota
	ChangeMinute
	ChangeHour
	ChangeDay
)

// Has reports whether every change in other is present.
func (changes Changes) Has(other Changes) bool {
	return changes&other == other
}

// String lists the fired units in cascade order.
func (changes Changes) String() string {
	if changes == 0 {
		return "none"
	}
	names := ""
	for _, entry := range []struct {
		change Changes
		name   string
	}{
		{ChangeSecond, "second"},
		{ChangeMinute, "minute"},
		{ChangeHour, "hour"},
		{ChangeDay, "day"},
	} {
		if !changes.Has(entry.change) {
			continue
		}
		if names != "" {
			names += "|"
		}
		names += entry.name
	}
	return names
}

// Transition is the outcome of a single tick.
type Transition struct {
	State    State
	Changes  Changes
	Finished bool
}

// Tick applies one second of the rule cascade to state.
//
// Every rule decides on the value its unit held when the tick began: a unit
// reading zero wraps to its maximum and borrows from the unit above instead
// of being decremented. Out-of-range input is not rejected here.
func Tick(state State, policy model.TerminalPolicy) Transition {
	if policy == model.TerminalHalt && state.Zero() {
		return Transition{State: state, Finished: true}
	}

	next := state
	var changes Changes

	borrowMinute := false
	if state.Seconds > 0 {
		next.Seconds = state.Seconds - 1
		changes |= ChangeSecond
	} else {
		next.Seconds = maxSecond
		borrowMinute = true
	}

	borrowHour := false
	if borrowMinute {
		if state.Minutes > 0 {
			next.Minutes = state.Minutes - 1
			changes |= ChangeMinute
		} else {
			// A wrapped minute is not decremented on the same tick.
			next.Minutes = maxMinute
			borrowHour = true
		}
	}

	borrowDay := false
	if borrowHour {
		if state.Hours == 0 {
			next.Hours = maxHour
			borrowDay = true
		}
		if next.Hours > 0 {
			next.Hours--
			changes |= ChangeHour
		}
	}

	// Seeding replaces the day borrow on the first tick.
	seededNow := false
	if !next.Seeded {
		next.Seeded = true
		if next.InitialDays > 0 && next.Days == next.InitialDays {
			next.Days = next.InitialDays - 1
			seededNow = true
		}
	}
	if borrowDay && !seededNow && next.Days > 0 {
		next.Days--
		changes |= ChangeDay
	}

	return Transition{
		State:    next,
		Changes:  changes,
		Finished: policy == model.TerminalHalt && next.Zero(),
	}
}
