package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// ErrQuit is returned by a frame step to end the run without an error.
var ErrQuit = errors.New("quit requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyQ
	Key1
	Key2
	Key3
	Key4
	Key5
	// KeyClose is emitted when the window manager asks the window to close.
	KeyClose
)

func (k KeyCode) String() string {
	switch k {
	case KeyQ:
		return "Q"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case Key4:
		return "4"
	case Key5:
		return "5"
	case KeyClose:
		return "close"
	}
	return "unknown"
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the plotter and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}

// Step renders one frame and handles the input that arrived since the last one.
type Step func() error

// Factory builds the per-frame step once the HAL exists.
type Factory func(HAL) (Step, error)
