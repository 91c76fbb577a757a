package terminal

import (
	"fmt"
	"sync"

	"countdown/internal/core/countdown"

	"github.com/gdamore/tcell/v2"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	timerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Screen renders the countdown on a tcell screen.
type Screen struct {
	mu       sync.Mutex
	screen   tcell.Screen
	title    string
	snapshot countdown.Snapshot
	status   string
	quit     chan struct{}
	quitOnce sync.Once
}

// New initialises screen and returns a display bound to it.
func New(screen tcell.Screen, title string) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	return &Screen{
		screen: screen,
		title:  title,
		quit:   make(chan struct{}),
	}, nil
}

// Render draws snapshot. Safe to call from any goroutine.
func (display *Screen) Render(snapshot countdown.Snapshot) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.snapshot = snapshot
	display.drawLocked()
}

// SetStatus updates the status line.
func (display *Screen) SetStatus(status string) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.status = status
	display.drawLocked()
}

// Quit is closed once the user asks to leave.
func (display *Screen) Quit() <-chan struct{} {
	return display.quit
}

// Listen handles input until the screen is closed. Run it in its own goroutine.
func (display *Screen) Listen() {
	for {
		event := display.screen.PollEvent()
		if event == nil {
			return
		}
		switch ev := event.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				display.quitOnce.Do(func() { close(display.quit) })
			}
		case *tcell.EventResize:
			display.mu.Lock()
			display.screen.Sync()
			display.drawLocked()
			display.mu.Unlock()
		}
	}
}

// Close restores the terminal.
func (display *Screen) Close() {
	display.screen.Fini()
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (display *Screen) drawLocked() {
	display.screen.Clear()
	width, height := display.screen.Size()
	middle := height / 2

	drawCentered(display.screen, width, middle-2, display.title, titleStyle)
	drawCentered(display.screen, width, middle, display.snapshot.String(), timerStyle)
	drawCentered(display.screen, width, middle+2, display.status, statusStyle)
	drawCentered(display.screen, width, height-1, "q / esc to quit", hintStyle)
	display.screen.Show()
}

func drawCentered(screen tcell.Screen, width, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := (width - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
