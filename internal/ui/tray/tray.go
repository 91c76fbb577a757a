package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnRestart     func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         MenuSetter
	title       string
	statusItem  *fyne.MenuItem
	callbacks   Callbacks
	finished    bool
	statusLabel string
	menu        *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		title:       title,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.refreshStatus()

	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetFinished marks the countdown as done.
func (manager *Manager) SetFinished(finished bool) {
	manager.finished = finished
	manager.refreshStatus()
}

// Menu returns the menu last installed in the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.finished {
		status = fmt.Sprintf("%s (finished)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Remaining: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu(manager.title,
		manager.statusItem,
		fyne.NewMenuItem("Show", manager.callback(manager.callbacks.OnShow)),
		fyne.NewMenuItem("Preferences", manager.callback(manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Restart", manager.callback(manager.callbacks.OnRestart)),
		fyne.NewMenuItem("Quit", manager.callback(manager.callbacks.OnQuit)),
	)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func (manager *Manager) callback(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
