package display

import "github.com/ksutton/gadvance/console"

// headlessOutput swallows frames. Useful for benchmarks and for snapshot
// runs where only the PNG matters.
type headlessOutput struct {
	frames int
}

func (h *headlessOutput) Start() error { return nil }

func (h *headlessOutput) Present([]byte) error {
	h.frames++
	return nil
}

func (h *headlessOutput) Keys() console.Keys { return 0 }

func (h *headlessOutput) Stop() error { return nil }
