package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRGB565RoundTripPrimaries(t *testing.T) {
	cases := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{0, 255, 255},
		{255, 0, 255},
		{255, 255, 255},
	}
	for _, tc := range cases {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(rgb565(%d,%d,%d)) = %d,%d,%d", tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestSnapshotReturnsPresentedFrame(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	fb.ClearRGB(255, 0, 0)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.ClearRGB(0, 255, 0)

	img, err := Snapshot(fb)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := img.Bounds().Dx(); got != 4 {
		t.Fatalf("width = %d, want 4", got)
	}
	c := img.RGBAAt(3, 2)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("pixel = %+v, want opaque red", c)
	}

	r, g, b, ok := PixelAt(fb, 0, 0)
	if !ok || r != 0 || g != 255 || b != 0 {
		t.Fatalf("PixelAt back buffer = %d,%d,%d,%v, want green", r, g, b, ok)
	}
	if _, _, _, ok := PixelAt(fb, 4, 0); ok {
		t.Fatal("PixelAt out of bounds ok = true")
	}
}

func TestRunHeadlessStopsOnQuit(t *testing.T) {
	var log bytes.Buffer
	calls := 0
	h, err := RunHeadless(context.Background(), func(h HAL) (Step, error) {
		return func() error {
			calls++
			if calls == 3 {
				h.Logger().WriteLineString("bye")
				return ErrQuit
			}
			return nil
		}, nil
	}, HeadlessConfig{Width: 8, Height: 8, Hz: 1000, Log: &log})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	if h.Display().Framebuffer().Width() != 8 {
		t.Fatalf("framebuffer width = %d, want 8", h.Display().Framebuffer().Width())
	}
	if !strings.Contains(log.String(), "bye") {
		t.Fatalf("log = %q, want it to contain bye", log.String())
	}
}

func TestRunHeadlessTickLimit(t *testing.T) {
	calls := 0
	_, err := RunHeadless(context.Background(), func(HAL) (Step, error) {
		return func() error { calls++; return nil }, nil
	}, HeadlessConfig{Hz: 1000, Ticks: 5, Log: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if calls != 5 {
		t.Fatalf("calls = %d, want 5", calls)
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := RunHeadless(context.Background(), func(HAL) (Step, error) {
		return nil, boom
	}, HeadlessConfig{Log: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("factory error = %v, want %v", err, boom)
	}

	_, err = RunHeadless(context.Background(), func(HAL) (Step, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("step error = %v, want %v", err, boom)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := RunHeadless(ctx, func(HAL) (Step, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 100, Log: &bytes.Buffer{}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}
