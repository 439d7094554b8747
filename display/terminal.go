package display

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ksutton/gadvance/console"
)

// termHoldFrames: terminals report key presses, never releases, so a
// pressed key is held this many Present calls before it decays.
const termHoldFrames = 8

// terminalOutput renders frames into a tcell screen using half blocks:
// each character cell carries two pixel rows, the upper in the foreground
// color and the lower in the background. 240x160 fits a 120x80 terminal.
type terminalOutput struct {
	screen tcell.Screen

	mu   sync.Mutex
	held map[console.Keys]int
	quit bool
}

func newTerminalOutput() *terminalOutput {
	return &terminalOutput{held: make(map[console.Keys]int)}
}

func (t *terminalOutput) Start() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	s.HideCursor()
	t.screen = s
	go t.pollEvents()
	return nil
}

func (t *terminalOutput) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.mu.Lock()
			if k, ok := termKey(ev); ok {
				t.held[k] = termHoldFrames
			} else if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
				t.quit = true
			}
			t.mu.Unlock()
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			return // screen finalized
		}
	}
}

func termKey(ev *tcell.EventKey) (console.Keys, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return console.KEY_UP, true
	case tcell.KeyDown:
		return console.KEY_DOWN, true
	case tcell.KeyLeft:
		return console.KEY_LEFT, true
	case tcell.KeyRight:
		return console.KEY_RIGHT, true
	case tcell.KeyEnter:
		return console.KEY_START, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return console.KEY_SELECT, true
	}
	switch ev.Rune() {
	case 'x', 'X':
		return console.KEY_A, true
	case 'z', 'Z':
		return console.KEY_B, true
	case 'a', 'A':
		return console.KEY_L, true
	case 's', 'S':
		return console.KEY_R, true
	}
	return 0, false
}

func (t *terminalOutput) Present(frame []byte) error {
	t.mu.Lock()
	for k, n := range t.held {
		if n <= 1 {
			delete(t.held, k)
		} else {
			t.held[k] = n - 1
		}
	}
	quit := t.quit
	t.mu.Unlock()
	if quit {
		return errStopped
	}

	for cy := 0; cy < console.SCREEN_H/2; cy++ {
		for cx := 0; cx < console.SCREEN_W; cx++ {
			top := framePixel(frame, cx, cy*2)
			bot := framePixel(frame, cx, cy*2+1)
			st := tcell.StyleDefault.Foreground(top).Background(bot)
			t.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	t.screen.Show()
	// Terminals have no vsync; a tiny sleep keeps redraws from saturating
	// slow remote sessions.
	time.Sleep(time.Millisecond)
	return nil
}

func framePixel(frame []byte, x, y int) tcell.Color {
	off := (y*console.SCREEN_W + x) * 4
	return tcell.NewRGBColor(int32(frame[off]), int32(frame[off+1]), int32(frame[off+2]))
}

func (t *terminalOutput) Keys() console.Keys {
	t.mu.Lock()
	defer t.mu.Unlock()
	var k console.Keys
	for key := range t.held {
		k |= key
	}
	return k
}

func (t *terminalOutput) Stop() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}
