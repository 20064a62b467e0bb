package memory

import (
	"testing"

	"pixview/internal/platform"
)

func TestWindowGeometry(t *testing.T) {
	win, err := New().CreateWindow(platform.WindowConfig{X: 100, Y: 100, WidthPx: 720, HeightPx: 300})
	if err != nil {
		t.Fatal(err)
	}
	if cx, cy := platform.Center(win); cx != 460 || cy != 250 {
		t.Fatalf("expected center (460,250), got (%d,%d)", cx, cy)
	}
	win.Move(5, 6)
	win.Resize(10, 20)
	if x, y := win.Position(); x != 5 || y != 6 {
		t.Fatalf("unexpected position %d,%d", x, y)
	}
	if w, h := win.Size(); w != 10 || h != 20 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

func TestWindowResizeRespectsMinimum(t *testing.T) {
	win := NewWindow(platform.WindowConfig{WidthPx: 200, HeightPx: 100, MinWidthPx: 50, MinHeightPx: 40})
	win.Resize(-30, 10)
	if w, h := win.Size(); w != 50 || h != 40 {
		t.Fatalf("expected clamp to 50x40, got %dx%d", w, h)
	}
	if win.Resizes != 1 {
		t.Fatalf("expected 1 resize, got %d", win.Resizes)
	}
}

func TestWindowClose(t *testing.T) {
	win := NewWindow(platform.WindowConfig{WidthPx: 1, HeightPx: 1})
	if win.Closed() {
		t.Fatalf("new window must be open")
	}
	win.Close()
	if !win.Closed() {
		t.Fatalf("expected window to be closed")
	}
}
