package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"countdown/internal/core/model"
	"countdown/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Only initial values are stored; a running countdown is never persisted.
type yamlSettings struct {
	Days       *int  `yaml:"days"`
	Hours      *int  `yaml:"hours"`
	Minutes    *int  `yaml:"minutes"`
	Seconds    *int  `yaml:"seconds"`
	HaltAtZero *bool `yaml:"halt_at_zero"`
	Chime      bool  `yaml:"chime"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from configPath.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the default YAML location.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Days:       &settings.Days,
		Hours:      &settings.Hours,
		Minutes:    &settings.Minutes,
		Seconds:    &settings.Seconds,
		HaltAtZero: &settings.HaltAtZero,
		Chime:      settings.Chime,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Days != nil && *fileData.Days >= 0 {
		settings.Days = *fileData.Days
	}
	if inRange(fileData.Hours, model.HoursPerDay) {
		settings.Hours = *fileData.Hours
	}
	if inRange(fileData.Minutes, model.MinutesPerHour) {
		settings.Minutes = *fileData.Minutes
	}
	if inRange(fileData.Seconds, model.SecondsPerMinute) {
		settings.Seconds = *fileData.Seconds
	}
	if fileData.HaltAtZero != nil {
		settings.HaltAtZero = *fileData.HaltAtZero
	}
	settings.Chime = fileData.Chime
}

func inRange(value *int, limit int) bool {
	return value != nil && *value >= 0 && *value < limit
}
