package platform

import (
	"testing"
	"time"
)

func TestClickTrackerDetectsDoubleClick(t *testing.T) {
	c := ClickTracker{Interval: 400 * time.Millisecond}
	t0 := time.Unix(1000, 0)
	if c.Press(t0, 10, 10) {
		t.Fatalf("first press must not be a double click")
	}
	if !c.Press(t0.Add(200*time.Millisecond), 12, 11) {
		t.Fatalf("expected double click")
	}
	if c.Press(t0.Add(300*time.Millisecond), 12, 11) {
		t.Fatalf("third press should start a new pair")
	}
}

func TestClickTrackerRejectsSlowOrDistantPresses(t *testing.T) {
	c := ClickTracker{Interval: 400 * time.Millisecond}
	t0 := time.Unix(1000, 0)
	c.Press(t0, 10, 10)
	if c.Press(t0.Add(time.Second), 10, 10) {
		t.Fatalf("slow second press must not be a double click")
	}
	if c.Press(t0.Add(time.Second+100*time.Millisecond), 40, 10) {
		t.Fatalf("distant second press must not be a double click")
	}
}

func TestWheelAccumulator(t *testing.T) {
	var w WheelAccumulator
	if got := w.Add(1); got != 1 {
		t.Fatalf("expected 1 notch, got %d", got)
	}
	if got := w.Add(0.4); got != 0 {
		t.Fatalf("expected 0 notches, got %d", got)
	}
	if got := w.Add(0.7); got != 1 {
		t.Fatalf("expected accumulated notch, got %d", got)
	}
	if got := w.Add(-0.5); got != 0 {
		t.Fatalf("expected reversal to drop remainder, got %d", got)
	}
	if got := w.Add(-2.5); got != -3 {
		t.Fatalf("expected -3 notches, got %d", got)
	}
}

func TestClampSize(t *testing.T) {
	w, h := ClampSize(WindowConfig{MinWidthPx: 64, MinHeightPx: 48}, 10, -5)
	if w != 64 || h != 48 {
		t.Fatalf("expected clamp to 64x48, got %dx%d", w, h)
	}
	w, h = ClampSize(WindowConfig{}, 0, 0)
	if w != 1 || h != 1 {
		t.Fatalf("expected clamp to 1x1, got %dx%d", w, h)
	}
}
