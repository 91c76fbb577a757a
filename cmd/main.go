package main

import (
	"log"
	"log/slog"
	"os"
	"sync"

	"countdown/internal/core/countdown"
	"countdown/internal/eventlog"
	"countdown/internal/platform"
	"countdown/internal/storage"
	"countdown/internal/ui/display"
	"countdown/internal/ui/preferences"
	"countdown/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "Countdown"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("using default settings", slog.Any("err", err))
	}

	fyneApp := app.NewWithID("com.countdown.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	window := display.New(fyneApp, display.Config{Title: appName})
	controller := &session{logger: logger, window: window}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		var prefsWindow *preferences.Window
		controller.tray = tray.New(desktopApp, appName, tray.Callbacks{
			OnShow: window.Show,
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnRestart: func() {
				controller.restart(settings)
			},
			OnQuit: func() {
				controller.stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		window.Window().SetCloseIntercept(func() {
			window.Window().Hide()
		})

		prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
			settings = updated
			if err := storage.SaveSettings(appName, settings); err != nil {
				logger.Error("save settings", slog.Any("err", err))
			}
			controller.restart(settings)
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		window.Window().SetCloseIntercept(func() {
			controller.stop()
			fyneApp.Quit()
		})
	}

	controller.restart(settings)
	window.Show()
	fyneApp.Run()
	controller.stop()
}

// session owns the engine currently shown in the window.
type session struct {
	mu     sync.Mutex
	logger *slog.Logger
	window *display.Window
	tray   *tray.Manager
	engine *countdown.Engine
}

// restart replaces the running countdown with a fresh one built from settings.
func (s *session) restart(settings preferences.Settings) {
	s.stop()

	var engine *countdown.Engine
	refresh := func() {
		snapshot := engine.Snapshot()
		s.window.Render(snapshot)
		if s.tray != nil {
			fyne.Do(func() {
				s.tray.SetStatus(snapshot.String())
			})
		}
	}

	engine, err := countdown.New(settings.CountdownConfig(), countdown.Callbacks{
		OnDay:    refresh,
		OnHour:   refresh,
		OnMinute: refresh,
		OnSecond: refresh,
	}, countdown.Config{Logger: s.logger})
	if err != nil {
		s.logger.Error("start countdown", slog.Any("err", err))
		s.window.SetStatus(err.Error())
		return
	}

	eventlog.Drain(s.logger, engine.Subscribe(64))
	events := engine.Subscribe(16)
	go s.watch(events)

	s.mu.Lock()
	s.engine = engine
	s.window.SetStatus("")
	if s.tray != nil {
		fyne.Do(func() {
			s.tray.SetFinished(false)
		})
	}
	s.mu.Unlock()

	refresh()
	engine.Start()
}

func (s *session) watch(events <-chan countdown.Event) {
	for event := range events {
		s.handle(event)
	}
}

// handle applies a finished event, ignoring events from replaced engines.
func (s *session) handle(event countdown.Event) {
	if event.Type != countdown.EventFinished {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil || s.engine.SessionID() != event.SessionID {
		return
	}
	s.window.SetStatus("finished")
	if s.tray != nil {
		fyne.Do(func() {
			s.tray.SetFinished(true)
		})
	}
}

func (s *session) stop() {
	s.mu.Lock()
	engine := s.engine
	s.engine = nil
	s.mu.Unlock()

	if engine != nil {
		engine.Stop()
	}
}
