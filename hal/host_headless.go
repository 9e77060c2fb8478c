//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64

	// Log receives log lines; stdout when nil.
	Log io.Writer
}

// RunHeadless runs the plotter without opening a window and returns the HAL
// it ran against so the caller can inspect the last presented frame. There is
// no keyboard input; the run ends after cfg.Ticks frames, when ctx is done, or
// when the step returns ErrQuit (reported as a nil error).
func RunHeadless(ctx context.Context, newApp Factory, cfg HeadlessConfig) (HAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return nil, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Log)
	step, err := newApp(h)
	if err != nil {
		return h, err
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return h, ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return h, nil
					}
					return h, err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return h, nil
			}
		}
	}
}
