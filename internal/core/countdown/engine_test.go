package countdown

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"countdown/internal/core/model"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type fakeTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (ticker *fakeTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *fakeTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopped = true
}

func (ticker *fakeTicker) Stopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

type fakeClock struct {
	ticker   *fakeTicker
	interval time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{ticker: &fakeTicker{ch: make(chan time.Time)}}
}

func (clock *fakeClock) NewTicker(d time.Duration) Ticker {
	clock.interval = d
	return clock.ticker
}

func (clock *fakeClock) fire() {
	clock.ticker.ch <- time.Now()
}

var _ = Describe("Engine", func() {
	var (
		mockCtrl *gomock.Controller
		notifier *MockNotifier
		clock    *fakeClock
		options  Config
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		notifier = NewMockNotifier(mockCtrl)
		clock = newFakeClock()
		options = Config{
			Clock:  clock,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	newEngine := func(config model.CountdownConfig) *Engine {
		engine, err := New(config, notifier, options)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(engine.Stop)
		return engine
	}

	It("should reject out-of-range initial values", func() {
		_, err := New(model.CountdownConfig{Minutes: 60}, notifier, options)
		Expect(err).To(MatchError(model.ErrInvalidCountdown))
	})

	It("should default to a one second tick", func() {
		engine := newEngine(model.CountdownConfig{Seconds: 5})
		engine.Start()
		Expect(clock.interval).To(Equal(time.Second))
		Expect(engine.SessionID()).NotTo(BeEmpty())
	})

	It("should expose the initial values before the first tick", func() {
		engine := newEngine(model.CountdownConfig{Days: 10, Hours: 5, Minutes: 30})
		engine.Start()

		first := engine.Snapshot()
		Expect(first).To(Equal(Snapshot{Days: 10, Hours: 5, Minutes: 30}))
		Expect(engine.Snapshot()).To(Equal(first))
	})

	It("should decrement seconds on a tick and notify once", func() {
		notifier.EXPECT().OnSecondChange().Times(1)

		engine := newEngine(model.CountdownConfig{Seconds: 1})
		events := engine.Subscribe(8)
		engine.Start()
		Eventually(events).Should(Receive(HaveField("Type", EventStarted)))

		clock.fire()

		var event Event
		Eventually(events).Should(Receive(&event))
		Expect(event.Type).To(Equal(EventSecondTicked))
		Expect(event.Snapshot).To(Equal(Snapshot{}))
		Expect(event.SessionID).To(Equal(engine.SessionID()))
		Expect(engine.Snapshot()).To(Equal(Snapshot{}))
	})

	It("should seed days on a day boundary without a day change", func() {
		notifier.EXPECT().OnHourChange().Times(1)

		engine := newEngine(model.CountdownConfig{Days: 2})
		events := engine.Subscribe(8)
		engine.Start()
		clock.fire()

		Eventually(events).Should(Receive(HaveField("Type", EventHourRolled)))
		Expect(engine.Snapshot()).To(Equal(Snapshot{Days: 1, Hours: 22, Minutes: 59, Seconds: 59}))
		Consistently(events).ShouldNot(Receive(HaveField("Type", EventDayRolled)))
	})

	It("should notify in cascade order", func() {
		gomock.InOrder(
			notifier.EXPECT().OnSecondChange(),
			notifier.EXPECT().OnHourChange(),
			notifier.EXPECT().OnDayChange(),
		)

		engine := newEngine(model.CountdownConfig{Days: 2, Seconds: 1})
		events := engine.Subscribe(8)
		engine.Start()

		clock.fire()
		Eventually(events).Should(Receive(HaveField("Type", EventSecondTicked)))
		Expect(engine.Snapshot()).To(Equal(Snapshot{Days: 1}))

		clock.fire()
		Eventually(events).Should(Receive(HaveField("Type", EventHourRolled)))
		Eventually(events).Should(Receive(HaveField("Type", EventDayRolled)))
		Expect(engine.Snapshot()).To(Equal(Snapshot{Days: 0, Hours: 22, Minutes: 59, Seconds: 59}))
	})

	It("should let callbacks read the snapshot", func() {
		seen := make(chan Snapshot, 1)
		var engine *Engine
		engine, err := New(model.CountdownConfig{Minutes: 1, Seconds: 30}, Callbacks{
			OnSecond: func() {
				seen <- engine.Snapshot()
			},
		}, options)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(engine.Stop)

		engine.Start()
		clock.fire()

		Eventually(seen).Should(Receive(Equal(Snapshot{Minutes: 1, Seconds: 29})))
	})

	It("should halt at zero when configured", func() {
		notifier.EXPECT().OnSecondChange().Times(1)

		engine := newEngine(model.CountdownConfig{Seconds: 1, Policy: model.TerminalHalt})
		events := engine.Subscribe(8)
		engine.Start()
		clock.fire()

		Eventually(events).Should(Receive(HaveField("Type", EventFinished)))
		Eventually(clock.ticker.Stopped).Should(BeTrue())
		Expect(engine.Finished()).To(BeTrue())
		Expect(engine.Snapshot()).To(Equal(Snapshot{}))
	})

	It("should not tick after stop", func() {
		engine := newEngine(model.CountdownConfig{Seconds: 10})
		events := engine.Subscribe(8)
		engine.Start()

		engine.Stop()
		Expect(clock.ticker.Stopped()).To(BeTrue())

		select {
		case clock.ticker.ch <- time.Now():
			Fail("tick delivered after stop")
		case <-time.After(20 * time.Millisecond):
		}
		Expect(engine.Snapshot()).To(Equal(Snapshot{Seconds: 10}))

		Expect(events).To(Receive(HaveField("Type", EventStarted)))
		Expect(events).To(Receive(HaveField("Type", EventStopped)))
		Expect(events).To(BeClosed())
	})

	It("should ignore start after stop", func() {
		engine := newEngine(model.CountdownConfig{Seconds: 10})
		engine.Stop()
		engine.Stop()
		engine.Start()

		Expect(clock.interval).To(BeZero())
		Expect(engine.Subscribe(1)).To(BeClosed())
	})
})
