package preferences

import (
	"countdown/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int

	HaltAtZero bool
	Chime      bool
}

// DefaultSettings returns the default countdown of 10 days, 5 hours and 30 minutes.
func DefaultSettings() Settings {
	return Settings{
		Days:       10,
		Hours:      5,
		Minutes:    30,
		Seconds:    0,
		HaltAtZero: true,
		Chime:      false,
	}
}

// CountdownConfig converts settings to CountdownConfig.
func (settings Settings) CountdownConfig() model.CountdownConfig {
	policy := model.TerminalWrap
	if settings.HaltAtZero {
		policy = model.TerminalHalt
	}
	return model.CountdownConfig{
		Days:    settings.Days,
		Hours:   settings.Hours,
		Minutes: settings.Minutes,
		Seconds: settings.Seconds,
		Policy:  policy,
	}
}
