//go:build !tinygo && !cgo

package hal

// hostKeyboard without the ebiten backend never produces events. The plotter
// still gets a channel, so a headless run drains nothing and stops on its
// tick limit or context.
type hostKeyboard struct {
	events chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{events: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.events }

func (k *hostKeyboard) poll() {}
