package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"countdown/internal/core/countdown"
	"countdown/internal/eventlog"
	"countdown/internal/ui/chime"
	"countdown/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

const appName = "Countdown"

type options struct {
	days       int
	hours      int
	minutes    int
	seconds    int
	halt       bool
	chime      bool
	configPath string
	envFile    string
	logFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "countdown-term",
		Short: "Count down days, hours, minutes and seconds in the terminal.",
		Long: `countdown-term counts down from the configured initial values once per second. ` +
			`Values come from the settings file, then COUNTDOWN_* environment variables ` +
			`(a .env file is loaded when present), then flags.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.days, "days", 0, "initial days")
	flags.IntVar(&opts.hours, "hours", 0, "initial hours (0-23)")
	flags.IntVar(&opts.minutes, "minutes", 0, "initial minutes (0-59)")
	flags.IntVar(&opts.seconds, "seconds", 0, "initial seconds (0-59)")
	flags.BoolVar(&opts.halt, "halt", true, "stop at zero instead of wrapping")
	flags.BoolVar(&opts.chime, "chime", false, "play a chime when the countdown finishes")
	flags.StringVar(&opts.configPath, "config", "", "settings file (defaults to the user config dir)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load if present")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	var engine *countdown.Engine
	var display *terminal.Screen
	refresh := func() {
		display.Render(engine.Snapshot())
	}
	engine, err = countdown.New(settings.CountdownConfig(), countdown.Callbacks{
		OnDay:    refresh,
		OnHour:   refresh,
		OnMinute: refresh,
		OnSecond: refresh,
	}, countdown.Config{Logger: logger})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	display, err = terminal.New(screen, appName)
	if err != nil {
		return err
	}
	atexit.Register(engine.Stop)
	atexit.Register(display.Close)

	var player chime.Player
	if settings.Chime {
		if err := player.Init(); err != nil {
			// Non-fatal, the countdown runs without sound.
			logger.Warn("chime disabled", slog.Any("err", err))
		}
	}

	logged := eventlog.Drain(logger, engine.Subscribe(64))
	events := engine.Subscribe(16)
	display.Render(engine.Snapshot())
	display.SetStatus("running")
	go display.Listen()
	engine.Start()

	for {
		select {
		case <-display.Quit():
			engine.Stop()
			<-logged
			return nil
		case event, ok := <-events:
			if !ok {
				<-logged
				return nil
			}
			if event.Type != countdown.EventFinished {
				continue
			}
			display.SetStatus("finished")
			if !player.Ready() {
				continue
			}
			if err := player.Play(); err != nil {
				logger.Warn("play chime", slog.Any("err", err))
			}
		}
	}
}

func newLogger(path, level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var writer io.Writer = io.Discard
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		atexit.Register(func() {
			_ = file.Close()
		})
		writer = file
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slogLevel})), nil
}
