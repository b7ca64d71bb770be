//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	h := &hostHAL{fb: newHostFramebuffer(DisplayWidth, DisplayHeight), t: newHostTime()}
	steps := 0
	err := runHeadless(context.Background(), h, func() error {
		steps++
		return nil
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps != 5 {
		t.Fatalf("expected 5 steps, got %d", steps)
	}
	if len(h.t.Ticks()) == 0 {
		t.Fatal("expected the tick stream to advance")
	}
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	h := &hostHAL{fb: newHostFramebuffer(DisplayWidth, DisplayHeight), t: newHostTime()}
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func() error { return boom }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("expected step error, got %v", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	h := &hostHAL{fb: newHostFramebuffer(DisplayWidth, DisplayHeight), t: newHostTime()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runHeadless(ctx, h, nil, HeadlessConfig{Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFramebufferPresentPublishesFrame(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	snap := make([]byte, len(fb.buf))
	fb.snapshotRGB565(snap)
	if snap[0] != 0 {
		t.Fatal("snapshot should not see unpresented pixels")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("present: %v", err)
	}
	fb.snapshotRGB565(snap)
	if got := uint16(snap[0]) | uint16(snap[1])<<8; got != 0xFFFF {
		t.Fatalf("expected white pixel, got %#04x", got)
	}
}
