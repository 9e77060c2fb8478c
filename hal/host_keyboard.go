//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeys maps physical keys to plotter key codes. Only edges are reported.
var hostKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeyDigit1, Key1},
	{ebiten.KeyDigit2, Key2},
	{ebiten.KeyDigit3, Key3},
	{ebiten.KeyDigit4, Key4},
	{ebiten.KeyDigit5, Key5},
	{ebiten.KeyNumpad1, Key1},
	{ebiten.KeyNumpad2, Key2},
	{ebiten.KeyNumpad3, Key3},
	{ebiten.KeyNumpad4, Key4},
	{ebiten.KeyNumpad5, Key5},
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}

func (k *hostKeyboard) poll() {
	for _, hk := range hostKeys {
		if inpututil.IsKeyJustPressed(hk.key) {
			k.emit(hk.code, true)
		}
		if inpututil.IsKeyJustReleased(hk.key) {
			k.emit(hk.code, false)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		k.emit(KeyClose, true)
	}
}
