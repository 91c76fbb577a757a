package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"countdown/internal/storage"
	"countdown/internal/ui/preferences"

	"github.com/joho/godotenv"
)

// changedFlags is satisfied by *pflag.FlagSet.
type changedFlags interface {
	Changed(name string) bool
}

var envOverrides = []struct {
	name  string
	apply func(*preferences.Settings, int)
}{
	{"COUNTDOWN_DAYS", func(settings *preferences.Settings, value int) { settings.Days = value }},
	{"COUNTDOWN_HOURS", func(settings *preferences.Settings, value int) { settings.Hours = value }},
	{"COUNTDOWN_MINUTES", func(settings *preferences.Settings, value int) { settings.Minutes = value }},
	{"COUNTDOWN_SECONDS", func(settings *preferences.Settings, value int) { settings.Seconds = value }},
}

// resolveSettings layers the settings file, environment and flags, in that order.
func resolveSettings(flags changedFlags, opts *options) (preferences.Settings, error) {
	settings, err := loadSettings(opts.configPath)
	if err != nil {
		return settings, err
	}

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return settings, fmt.Errorf("load env file: %w", err)
		}
	}
	if err := applyEnv(&settings); err != nil {
		return settings, err
	}

	if flags.Changed("days") {
		settings.Days = opts.days
	}
	if flags.Changed("hours") {
		settings.Hours = opts.hours
	}
	if flags.Changed("minutes") {
		settings.Minutes = opts.minutes
	}
	if flags.Changed("seconds") {
		settings.Seconds = opts.seconds
	}
	if flags.Changed("halt") {
		settings.HaltAtZero = opts.halt
	}
	if flags.Changed("chime") {
		settings.Chime = opts.chime
	}

	return settings, nil
}

func loadSettings(configPath string) (preferences.Settings, error) {
	if configPath != "" {
		return storage.LoadSettingsFile(configPath)
	}
	return storage.LoadSettings(appName)
}

func applyEnv(settings *preferences.Settings) error {
	for _, override := range envOverrides {
		raw, ok := os.LookupEnv(override.name)
		if !ok || raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", override.name, err)
		}
		override.apply(settings, value)
	}
	return nil
}
