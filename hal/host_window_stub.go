//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

func RunWindow(_ WindowConfig, _ Factory) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
