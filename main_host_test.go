//go:build !tinygo

package main

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"plotter/hal"
)

func TestFinishHeadlessWritesSnapshotOnInterrupt(t *testing.T) {
	h := hal.New(120, 100)
	fb := h.Display().Framebuffer()
	fb.ClearRGB(255, 0, 0)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	err := finishHeadless(h, context.Canceled, path)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("finishHeadless err = %v, want context.Canceled", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 100 {
		t.Fatalf("snapshot bounds = %v, want 120x100", b)
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Fatalf("snapshot pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestFinishHeadlessSkipsSnapshotOnFailure(t *testing.T) {
	h := hal.New(120, 100)
	path := filepath.Join(t.TempDir(), "frame.png")
	boom := errors.New("boom")
	if err := finishHeadless(h, boom, path); !errors.Is(err, boom) {
		t.Fatalf("finishHeadless err = %v, want boom", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("snapshot written after a failed run (stat err %v)", err)
	}
}
