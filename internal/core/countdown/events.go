package countdown

import "time"

// EventType defines the type of engine event.
type EventType string

const (
	EventStarted      EventType = "started"
	EventSecondTicked EventType = "second_ticked"
	EventMinuteRolled EventType = "minute_rolled"
	EventHourRolled   EventType = "hour_rolled"
	EventDayRolled    EventType = "day_rolled"
	EventFinished     EventType = "finished"
	EventStopped      EventType = "stopped"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Snapshot  Snapshot
	SessionID string
	At        time.Time
}

// changeEvents lists the tagged events for changes in cascade order.
func changeEvents(changes Changes) []EventType {
	var types []EventType
	if changes.Has(ChangeSecond) {
		types = append(types, EventSecondTicked)
	}
	if changes.Has(ChangeMinute) {
		types = append(types, EventMinuteRolled)
	}
	if changes.Has(ChangeHour) {
		types = append(types, EventHourRolled)
	}
	if changes.Has(ChangeDay) {
		types = append(types, EventDayRolled)
	}
	return types
}
