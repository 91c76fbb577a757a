package preferences

import (
	"strconv"
	"strings"

	"countdown/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	days         *widget.Entry
	hours        *widget.Entry
	minutes      *widget.Entry
	seconds      *widget.Entry
	halt         *widget.Check
	chime        *widget.Check
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Countdown Settings")

	days := widget.NewEntry()
	hours := widget.NewEntry()
	minutes := widget.NewEntry()
	seconds := widget.NewEntry()

	halt := widget.NewCheck("Stop at zero", nil)
	chime := widget.NewCheck("Chime when finished", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Days"), days),
		container.NewHBox(widget.NewLabel("Hours"), hours, widget.NewLabel("0-23")),
		container.NewHBox(widget.NewLabel("Minutes"), minutes, widget.NewLabel("0-59")),
		container.NewHBox(widget.NewLabel("Seconds"), seconds, widget.NewLabel("0-59")),
		halt,
		chime,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		days:         days,
		hours:        hours,
		minutes:      minutes,
		seconds:      seconds,
		halt:         halt,
		chime:        chime,
		saveButton:   saveButton,
		cancelButton: cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.days.SetText(strconv.Itoa(settings.Days))
	prefs.hours.SetText(strconv.Itoa(settings.Hours))
	prefs.minutes.SetText(strconv.Itoa(settings.Minutes))
	prefs.seconds.SetText(strconv.Itoa(settings.Seconds))
	prefs.halt.SetChecked(settings.HaltAtZero)
	prefs.chime.SetChecked(settings.Chime)
}

// handleSave keeps the previous value for any field that does not parse.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	if days, ok := parseBoundedInt(prefs.days.Text, -1); ok {
		settings.Days = days
	}
	if hours, ok := parseBoundedInt(prefs.hours.Text, model.HoursPerDay-1); ok {
		settings.Hours = hours
	}
	if minutes, ok := parseBoundedInt(prefs.minutes.Text, model.MinutesPerHour-1); ok {
		settings.Minutes = minutes
	}
	if seconds, ok := parseBoundedInt(prefs.seconds.Text, model.SecondsPerMinute-1); ok {
		settings.Seconds = seconds
	}
	settings.HaltAtZero = prefs.halt.Checked
	settings.Chime = prefs.chime.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// parseBoundedInt accepts 0..max, or any non-negative value when max < 0.
func parseBoundedInt(value string, max int) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0, false
	}
	if max >= 0 && parsed > max {
		return 0, false
	}
	return parsed, true
}
