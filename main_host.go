//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"

	"plotter/app"
	"plotter/glyph"
	"plotter/hal"

	"github.com/mattn/go-isatty"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		configPath string
		assets     string
		snapshot   string
	)
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.StringVar(&assets, "assets", "", "Directory holding 0.png..9.png and d.png (overrides config).")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 30, "Frame rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run until quit).")
	flag.StringVar(&snapshot, "snapshot", "", "Write the last headless frame as PNG to this path (- for stdout).")
	flag.Parse()

	if err := run(hcfg, configPath, assets, snapshot); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(hcfg hal.HeadlessConfig, configPath, assets, snapshot string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if assets != "" {
		cfg.Assets = assets
	}
	if snapshot != "" && !hcfg.Enabled {
		return errors.New("-snapshot requires -headless")
	}
	if snapshot == "-" && isatty.IsTerminal(os.Stdout.Fd()) {
		return errors.New("refusing to write PNG to a terminal; redirect stdout or pass a file to -snapshot")
	}

	// Glyphs are loaded before any window exists so a bad asset directory
	// fails at startup.
	var atlas *glyph.Atlas
	if cfg.Assets != "" {
		atlas, err = glyph.Load(cfg.Assets)
		if err != nil {
			return err
		}
	}

	newApp := func(h hal.HAL) (hal.Step, error) {
		return app.New(h, cfg, atlas)
	}

	if !hcfg.Enabled {
		return hal.RunWindow(hal.WindowConfig{
			Title:  "PLOTTER",
			Width:  cfg.Width,
			Height: cfg.Height,
			TPS:    cfg.FPS,
		}, newApp)
	}

	hcfg.Width, hcfg.Height = cfg.Width, cfg.Height
	if snapshot == "-" {
		// Keep stdout clean for the image.
		hcfg.Log = os.Stderr
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	h, err := hal.RunHeadless(ctx, newApp, hcfg)
	return finishHeadless(h, err, snapshot)
}

// finishHeadless writes the snapshot after a run that ended normally or was
// interrupted, then reports runErr.
func finishHeadless(h hal.HAL, runErr error, snapshot string) error {
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if snapshot != "" && h != nil {
		if err := writeSnapshot(h.Display().Framebuffer(), snapshot); err != nil {
			return err
		}
	}
	return runErr
}

func writeSnapshot(fb hal.Framebuffer, path string) error {
	img, err := hal.Snapshot(fb)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
