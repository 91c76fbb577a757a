// Package eventlog writes countdown engine events to an slog.Logger.
package eventlog

import (
	"context"
	"log/slog"

	"countdown/internal/core/countdown"
)

var messages = map[countdown.EventType]string{
	countdown.EventStarted:      "countdown started",
	countdown.EventSecondTicked: "second changed",
	countdown.EventMinuteRolled: "minute changed",
	countdown.EventHourRolled:   "hour changed",
	countdown.EventDayRolled:    "day changed",
	countdown.EventFinished:     "countdown finished",
	countdown.EventStopped:      "countdown stopped",
}

// Level returns the level an event is logged at. Seconds are noisy and go to debug.
func Level(eventType countdown.EventType) slog.Level {
	if eventType == countdown.EventSecondTicked {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Log writes a single event.
func Log(logger *slog.Logger, event countdown.Event) {
	message, ok := messages[event.Type]
	if !ok {
		message = string(event.Type)
	}
	logger.LogAttrs(context.Background(), Level(event.Type), message,
		slog.String("session", event.SessionID),
		slog.String("type", string(event.Type)),
		slog.Int("days", event.Snapshot.Days),
		slog.Int("hours", event.Snapshot.Hours),
		slog.Int("minutes", event.Snapshot.Minutes),
		slog.Int("seconds", event.Snapshot.Seconds),
	)
}

// Drain logs events until the channel closes, then closes the returned channel.
func Drain(logger *slog.Logger, events <-chan countdown.Event) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			Log(logger, event)
		}
	}()
	return done
}
