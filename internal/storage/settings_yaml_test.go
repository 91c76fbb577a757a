package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"countdown/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	want := preferences.Settings{Days: 0, Hours: 0, Minutes: 0, Seconds: 2, HaltAtZero: false, Chime: true}

	require.NoError(t, SaveSettingsFile(path, want))

	got, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsIgnoresOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	data := []byte("days: 3\nhours: 24\nminutes: -1\nseconds: 59\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := LoadSettingsFile(path)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, 3, got.Days)
	assert.Equal(t, defaults.Hours, got.Hours)
	assert.Equal(t, defaults.Minutes, got.Minutes)
	assert.Equal(t, 59, got.Seconds)
	assert.Equal(t, defaults.HaltAtZero, got.HaltAtZero)
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("days: [1"), 0o644))

	got, err := LoadSettingsFile(path)
	require.ErrorContains(t, err, "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), got)
}

func TestSettingsPathUsesConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	path, err := SettingsPath("Countdown")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("Countdown", settingsFileName)), path)
}
