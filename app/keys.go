package app

import (
	"fmt"

	"plotter/hal"
	"plotter/plot"
)

type commandKind uint8

const (
	cmdNone commandKind = iota
	cmdQuit
	cmdPreset
	cmdIncrement
)

// command is what a key press asks the view controller to do.
type command struct {
	kind commandKind
	arg  int
}

// presetKeys selects Config.Presets by position.
var presetKeys = [...]hal.KeyCode{hal.Key1, hal.Key2, hal.Key3}

var bindings = map[hal.KeyCode]command{
	hal.KeyQ:     {kind: cmdQuit},
	hal.KeyClose: {kind: cmdQuit},
	hal.Key1:     {kind: cmdPreset, arg: 0},
	hal.Key2:     {kind: cmdPreset, arg: 1},
	hal.Key3:     {kind: cmdPreset, arg: 2},
	hal.Key4:     {kind: cmdIncrement, arg: -1},
	hal.Key5:     {kind: cmdIncrement, arg: 1},
}

// commandFor returns the command bound to a key-down event. Releases and
// unbound keys map to cmdNone.
func commandFor(ev hal.KeyEvent) command {
	if !ev.Press {
		return command{}
	}
	return bindings[ev.Code]
}

// apply returns the view after cmd. It never mutates v.
func (c command) apply(v plot.ViewRect, presets []float64) (plot.ViewRect, string, error) {
	switch c.kind {
	case cmdPreset:
		if c.arg < 0 || c.arg >= len(presets) {
			return v, "", fmt.Errorf("no preset %d", c.arg+1)
		}
		nv, err := plot.SetScale(presets[c.arg])
		if err != nil {
			return v, "", err
		}
		return nv, fmt.Sprintf("scale set to %.2f", presets[c.arg]), nil
	case cmdIncrement:
		nv := v.IncrementScale(c.arg)
		if err := nv.Validate(); err != nil {
			return v, "", err
		}
		return nv, fmt.Sprintf("scale incremented by %+d to %.4g", c.arg, nv.Scale()), nil
	}
	return v, "", nil
}
