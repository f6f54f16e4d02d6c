package ui

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game/types"
)

// TerminalCellWidth is the number of columns used per grid cell so that
// cells look roughly square in a terminal.
const TerminalCellWidth = 2

var terminalKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// TerminalBackend draws with tcell. Events are read by a pump goroutine and
// drained without blocking on every frame.
type TerminalBackend struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	ticker *time.Ticker

	pending types.Direction
	hasDir  bool
	closed  bool
}

// NewTerminalBackend initializes screen and starts the event pump.
func NewTerminalBackend(screen tcell.Screen, fps int) (*TerminalBackend, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &TerminalBackend{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
	go t.pump()
	return t, nil
}

func (t *TerminalBackend) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *TerminalBackend) drain() {
	for {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			return
		}
	}
}

func (t *TerminalBackend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			t.closed = true
			return
		}
		if d, ok := terminalKeys[ev.Key()]; ok {
			t.pending, t.hasDir = d, true
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *TerminalBackend) ShouldClose() bool {
	t.drain()
	return t.closed
}

func (t *TerminalBackend) PollDirection() (types.Direction, bool) {
	t.drain()
	d, ok := t.pending, t.hasDir
	t.hasDir = false
	return d, ok
}

func (t *TerminalBackend) BeginFrame() {}

func (t *TerminalBackend) Clear(c color.RGBA) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (t *TerminalBackend) FillRect(x, y, w, h int, c color.RGBA) {
	style := tcell.StyleDefault.Background(tcellColor(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *TerminalBackend) EndFrame() {
	t.screen.Show()
	<-t.ticker.C
}

func (t *TerminalBackend) Close() error {
	t.ticker.Stop()
	close(t.done)
	t.screen.Fini()
	return nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
