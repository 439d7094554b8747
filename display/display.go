// Package display presents the console's composited frames to a human and
// feeds key state back. Backends share one small Output interface; the
// game loop never knows which one it is driving.
package display

import (
	"fmt"

	"github.com/ksutton/gadvance/console"
)

// Output is one presentation backend. Present is called once per frame
// from the game loop with the 240x160 RGBA frame; the slice is only valid
// for the duration of the call.
type Output interface {
	Start() error
	Present(frame []byte) error
	Keys() console.Keys
	Stop() error
}

// New builds the named backend: "window" (ebiten), "terminal" (tcell) or
// "none".
func New(backend string, scale int) (Output, error) {
	if scale < 1 {
		scale = 1
	}
	switch backend {
	case "window":
		return newWindowOutput(scale), nil
	case "terminal":
		return newTerminalOutput(), nil
	case "none":
		return &headlessOutput{}, nil
	}
	return nil, fmt.Errorf("display: unknown backend %q", backend)
}
