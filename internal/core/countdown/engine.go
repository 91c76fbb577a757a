package countdown

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"countdown/internal/core/model"

	"github.com/rs/xid"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Clock        Clock
	Logger       *slog.Logger
}

// Engine drives a countdown session from a ticker.
type Engine struct {
	mu        sync.Mutex
	config    model.CountdownConfig
	options   Config
	notifier  Notifier
	logger    *slog.Logger
	sessionID string
	state     State
	events    []chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	stopped   bool
	finished  bool
}

// New creates an Engine for the provided initial values.
// A nil notifier disables callbacks.
func New(config model.CountdownConfig, notifier Notifier, options Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new countdown: %w", err)
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = RealClock{}
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	sessionID := xid.New().String()
	return &Engine{
		config:    config,
		options:   options,
		notifier:  notifier,
		logger:    options.Logger.With(slog.String("session", sessionID)),
		sessionID: sessionID,
		state:     NewState(config),
	}, nil
}

// SessionID returns the identifier attached to every event of this engine.
func (engine *Engine) SessionID() string {
	return engine.sessionID
}

// Snapshot returns the current counter values.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state.Snapshot()
}

// Finished reports whether the countdown halted at zero.
func (engine *Engine) Finished() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.finished
}

// Subscribe registers a new observer channel.
// The channel is closed when the engine stops.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.stopped {
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	return ch
}

// Start launches the ticking loop. The first tick lands one interval later.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.running || engine.stopped {
		engine.mu.Unlock()
		return
	}
	engine.running = true
	engine.stopCh = make(chan struct{})
	engine.doneCh = make(chan struct{})
	ticker := engine.options.Clock.NewTicker(engine.options.TickInterval)
	engine.emitLocked(engine.eventLocked(EventStarted, time.Now()))
	stopCh, doneCh := engine.stopCh, engine.doneCh
	engine.mu.Unlock()

	engine.logger.Info("countdown started",
		slog.String("remaining", engine.Snapshot().String()),
		slog.String("policy", engine.config.Policy.String()),
	)

	go engine.run(ticker, stopCh, doneCh)
}

// Stop cancels the pending tick, waits for the loop to exit and closes
// observers. It must not be called from a notification callback.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.stopped {
		engine.mu.Unlock()
		return
	}
	engine.stopped = true
	wasRunning := engine.running
	engine.running = false
	if wasRunning {
		close(engine.stopCh)
	}
	doneCh := engine.doneCh
	engine.mu.Unlock()

	if wasRunning {
		<-doneCh
	}

	engine.mu.Lock()
	engine.emitLocked(engine.eventLocked(EventStopped, time.Now()))
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	engine.logger.Info("countdown stopped")
}

func (engine *Engine) run(ticker Ticker, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			if done := engine.tick(tickTime); done {
				return
			}
		}
	}
}

// tick applies one transition and reports whether ticking should end.
func (engine *Engine) tick(tickTime time.Time) bool {
	engine.mu.Lock()
	if !engine.running || engine.finished {
		engine.mu.Unlock()
		return true
	}
	transition := Tick(engine.state, engine.config.Policy)
	engine.state = transition.State
	finishedNow := transition.Finished && !engine.finished
	engine.finished = transition.Finished
	notifier := engine.notifier
	engine.mu.Unlock()

	// Callbacks run unlocked so they can read Snapshot.
	notify(notifier, transition.Changes)

	engine.mu.Lock()
	for _, eventType := range changeEvents(transition.Changes) {
		engine.emitLocked(engine.eventLocked(eventType, tickTime))
	}
	if finishedNow {
		engine.emitLocked(engine.eventLocked(EventFinished, tickTime))
	}
	engine.mu.Unlock()

	engine.logger.Debug("countdown tick",
		slog.String("remaining", transition.State.Snapshot().String()),
		slog.String("changes", transition.Changes.String()),
	)
	if finishedNow {
		engine.logger.Info("countdown finished")
	}
	return transition.Finished
}

func (engine *Engine) eventLocked(eventType EventType, at time.Time) Event {
	return Event{
		Type:      eventType,
		Snapshot:  engine.state.Snapshot(),
		SessionID: engine.sessionID,
		At:        at,
	}
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
