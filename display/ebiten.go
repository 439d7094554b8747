package display

import (
	"errors"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ksutton/gadvance/console"
)

// Key bindings, console button -> host key.
var keyBinds = []struct {
	key console.Keys
	e   ebiten.Key
}{
	{console.KEY_A, ebiten.KeyX},
	{console.KEY_B, ebiten.KeyZ},
	{console.KEY_SELECT, ebiten.KeyBackspace},
	{console.KEY_START, ebiten.KeyEnter},
	{console.KEY_RIGHT, ebiten.KeyRight},
	{console.KEY_LEFT, ebiten.KeyLeft},
	{console.KEY_UP, ebiten.KeyUp},
	{console.KEY_DOWN, ebiten.KeyDown},
	{console.KEY_L, ebiten.KeyA},
	{console.KEY_R, ebiten.KeyS},
}

// windowOutput presents frames in an ebiten window. The window loop runs
// on its own goroutine; Present hands frames across under the mutex and
// Keys reads back what the loop last polled.
type windowOutput struct {
	scale int

	mu    sync.Mutex
	frame []byte
	keys  console.Keys
	quit  bool

	stopped chan struct{}
}

func newWindowOutput(scale int) *windowOutput {
	return &windowOutput{
		scale:   scale,
		frame:   make([]byte, console.SCREEN_W*console.SCREEN_H*4),
		stopped: make(chan struct{}),
	}
}

func (w *windowOutput) Start() error {
	ebiten.SetWindowSize(console.SCREEN_W*w.scale, console.SCREEN_H*w.scale)
	ebiten.SetWindowTitle("gadvance")
	go func() {
		defer close(w.stopped)
		if err := ebiten.RunGame(w); err != nil && !errors.Is(err, errStopped) {
			log.Printf("display: window closed: %v", err)
		}
	}()
	return nil
}

func (w *windowOutput) Present(frame []byte) error {
	select {
	case <-w.stopped:
		return errStopped
	default:
	}
	w.mu.Lock()
	copy(w.frame, frame)
	w.mu.Unlock()
	return nil
}

func (w *windowOutput) Keys() console.Keys {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keys
}

func (w *windowOutput) Stop() error {
	// RunGame returns when Update errors; errStopped marks the deliberate
	// shutdown so Start's goroutine does not log it.
	w.mu.Lock()
	w.quit = true
	w.mu.Unlock()
	<-w.stopped
	return nil
}

var errStopped = errors.New("display: stopped")

// The ebiten.Game methods below run on ebiten's own loop.

func (w *windowOutput) Update() error {
	var k console.Keys
	for _, b := range keyBinds {
		if ebiten.IsKeyPressed(b.e) {
			k |= b.key
		}
	}
	w.mu.Lock()
	w.keys = k
	quit := w.quit
	w.mu.Unlock()
	if quit {
		return errStopped
	}
	return nil
}

func (w *windowOutput) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	screen.WritePixels(w.frame)
	w.mu.Unlock()
}

func (w *windowOutput) Layout(_, _ int) (int, int) {
	return console.SCREEN_W, console.SCREEN_H
}
