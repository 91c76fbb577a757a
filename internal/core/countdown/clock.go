package countdown

import "time"

// Clock supplies tickers to the engine.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers tick times until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock is the wall-clock implementation backed by time.Ticker.
type RealClock struct{}

// NewTicker returns a time.Ticker wrapper.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (ticker realTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker realTicker) Stop() {
	ticker.ticker.Stop()
}
