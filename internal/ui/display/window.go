package display

import (
	"image/color"

	"countdown/internal/core/countdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines window visuals.
type Config struct {
	Title string
}

// Window renders the countdown snapshot.
type Window struct {
	window      fyne.Window
	config      Config
	titleLabel  *canvas.Text
	timerLabel  *canvas.Text
	statusLabel *canvas.Text
}

var (
	timerColor  = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	labelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	statusColor = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
)

// New creates the countdown window.
func New(app fyne.App, config Config) *Window {
	if config.Title == "" {
		config.Title = "Countdown"
	}
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText(config.Title, labelColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 18

	timerLabel := canvas.NewText("", timerColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 22

	statusLabel := canvas.NewText("", statusColor)
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 13

	background := canvas.NewRectangle(color.NRGBA{A: 230})
	content := container.NewCenter(container.NewVBox(titleLabel, timerLabel, statusLabel))
	window.SetContent(container.NewStack(background, content))
	window.Resize(fyne.NewSize(520, 180))

	return &Window{
		window:      window,
		config:      config,
		titleLabel:  titleLabel,
		timerLabel:  timerLabel,
		statusLabel: statusLabel,
	}
}

// Window exposes the underlying fyne window.
func (display *Window) Window() fyne.Window {
	return display.window
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
}

// Render shows snapshot. Safe to call from any goroutine.
func (display *Window) Render(snapshot countdown.Snapshot) {
	fyne.Do(func() {
		display.renderUnsafe(snapshot)
	})
}

// SetStatus updates the line under the timer. Safe to call from any goroutine.
func (display *Window) SetStatus(status string) {
	fyne.Do(func() {
		display.setStatusUnsafe(status)
	})
}

// Text returns the rendered timer text.
func (display *Window) Text() string {
	return display.timerLabel.Text
}

// Status returns the line under the timer.
func (display *Window) Status() string {
	return display.statusLabel.Text
}

func (display *Window) renderUnsafe(snapshot countdown.Snapshot) {
	display.timerLabel.Text = snapshot.String()
	display.timerLabel.Refresh()
}

func (display *Window) setStatusUnsafe(status string) {
	display.statusLabel.Text = status
	display.statusLabel.Refresh()
}
