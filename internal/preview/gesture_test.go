package preview

import (
	"testing"

	"pixview/internal/platform"
	"pixview/internal/platform/memory"
)

func newTestWindow() *memory.Window {
	return memory.NewWindow(platform.WindowConfig{X: 100, Y: 100, WidthPx: 720, HeightPx: 300})
}

func press(b platform.Button, x, y int) platform.Event {
	return platform.Event{Type: platform.EventMouseDown, Button: b, X: x, Y: y}
}

func move(x, y int) platform.Event {
	return platform.Event{Type: platform.EventMouseMove, X: x, Y: y}
}

func release(b platform.Button) platform.Event {
	return platform.Event{Type: platform.EventMouseUp, Button: b}
}

func assertGeometry(t *testing.T, win platform.Window, x, y, w, h int) {
	t.Helper()
	gx, gy := win.Position()
	gw, gh := win.Size()
	if gx != x || gy != y || gw != w || gh != h {
		t.Fatalf("geometry: got (%d,%d %dx%d) want (%d,%d %dx%d)", gx, gy, gw, gh, x, y, w, h)
	}
}

func TestClickWithoutDragLeavesGeometry(t *testing.T) {
	for _, b := range []platform.Button{platform.ButtonPrimary, platform.ButtonSecondary, platform.ButtonTertiary} {
		win := newTestWindow()
		var g Gesture
		g = StepGesture(g, press(b, 600, 150), win)
		g = StepGesture(g, release(b), win)
		assertGeometry(t, win, 100, 100, 720, 300)
		if g.Active() || g.Dragging {
			t.Fatalf("%s: release must clear gesture, got %+v", b, g)
		}
		if win.Moves != 0 || win.Resizes != 0 {
			t.Fatalf("%s: click must not touch geometry", b)
		}
	}
}

func TestSecondaryDragMovesWindow(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonSecondary, 50, 50), win)
	g = StepGesture(g, move(80, 70), win)
	if !g.Dragging {
		t.Fatalf("expected drag to be active after move")
	}
	assertGeometry(t, win, 130, 120, 720, 300)
}

func TestSecondaryDragIsPathIndependent(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonSecondary, 50, 50), win)
	for _, p := range [][2]int{{400, -30}, {10, 900}, {51, 49}, {80, 70}} {
		g = StepGesture(g, move(p[0], p[1]), win)
	}
	assertGeometry(t, win, 130, 120, 720, 300)

	// Replaying the last move changes nothing.
	g = StepGesture(g, move(80, 70), win)
	assertGeometry(t, win, 130, 120, 720, 300)
}

func TestTertiaryResizeByQuadrant(t *testing.T) {
	tests := []struct {
		name       string
		px, py     int
		dx, dy     int
		dir        Direction
		x, y, w, h int
	}{
		{"top-right", 600, 150, 20, -10, DirTopRight, 100, 90, 740, 310},
		{"bottom-right", 600, 350, 20, 10, DirBottomRight, 100, 100, 740, 310},
		{"top-left", 200, 150, -20, -10, DirTopLeft, 80, 90, 740, 310},
		{"bottom-left", 200, 350, -20, 10, DirBottomLeft, 80, 100, 740, 310},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			win := newTestWindow()
			var g Gesture
			g = StepGesture(g, press(platform.ButtonTertiary, tc.px, tc.py), win)
			if g.Direction != tc.dir {
				t.Fatalf("direction: got %s want %s", g.Direction, tc.dir)
			}
			g = StepGesture(g, move(tc.px+tc.dx, tc.py+tc.dy), win)
			assertGeometry(t, win, tc.x, tc.y, tc.w, tc.h)
		})
	}
}

func TestCenterLinesCountAsLeftAndBelow(t *testing.T) {
	if d := directionFor(460, 250, 460, 250); d != DirBottomLeft {
		t.Fatalf("center point: got %s want bottom-left", d)
	}
	if d := directionFor(461, 249, 460, 250); d != DirTopRight {
		t.Fatalf("just right and above: got %s want top-right", d)
	}
}

func TestResizeDirectionFrozenAtPress(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonTertiary, 600, 150), win)
	// Cross both center lines; the drag keeps resizing from the top-right.
	g = StepGesture(g, move(300, 400), win)
	if g.Direction != DirTopRight {
		t.Fatalf("direction changed mid-drag: %s", g.Direction)
	}
	assertGeometry(t, win, 100, 350, 420, 50)
}

func TestPrimaryDragHasNoGeometryEffect(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonPrimary, 10, 10), win)
	g = StepGesture(g, move(300, 200), win)
	if !g.Dragging {
		t.Fatalf("expected primary drag to be tracked")
	}
	assertGeometry(t, win, 100, 100, 720, 300)
}

func TestSecondPressDuringDragIsIgnored(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonSecondary, 50, 50), win)
	g = StepGesture(g, press(platform.ButtonTertiary, 600, 150), win)
	if g.Held != platform.ButtonSecondary {
		t.Fatalf("expected secondary to stay held, got %s", g.Held)
	}
	g = StepGesture(g, move(60, 60), win)
	assertGeometry(t, win, 110, 110, 720, 300)
}

func TestEscapeClosesDuringDrag(t *testing.T) {
	win := newTestWindow()
	var g Gesture
	g = StepGesture(g, press(platform.ButtonTertiary, 600, 150), win)
	g = StepGesture(g, move(620, 140), win)
	g = StepGesture(g, platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEscape}, win)
	if !win.Closed() {
		t.Fatalf("escape must close the window")
	}
	if g.Active() {
		t.Fatalf("escape must clear the gesture")
	}
}
