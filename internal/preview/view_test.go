package preview

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*math.Max(1, math.Abs(b))
}

func TestFitScalePreservesAspect(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(720, 300)
	v.SetImageSize(1000, 1000)
	if !almostEqual(v.Scale(), 0.3) {
		t.Fatalf("expected height-bound scale 0.3, got %v", v.Scale())
	}
	scale, tx, ty := v.Transform()
	if !almostEqual(tx, 210) || !almostEqual(ty, 0) {
		t.Fatalf("expected centered image at (210,0), got (%v,%v) scale %v", tx, ty, scale)
	}

	v.SetViewport(200, 900)
	if !almostEqual(v.Scale(), 0.2) {
		t.Fatalf("expected refit on resize to width-bound 0.2, got %v", v.Scale())
	}
}

func TestWheelZoomIsGeometric(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(400, 400)
	v.SetImageSize(200, 100)
	s := v.Scale()

	for i := 0; i < 5; i++ {
		v.Zoom(1)
	}
	if want := s * math.Pow(1.05, 5); !almostEqual(v.Scale(), want) {
		t.Fatalf("forward: got %v want %v", v.Scale(), want)
	}
	v.Zoom(-8)
	if want := s * math.Pow(1.05, 5) / math.Pow(1.05, 8); !almostEqual(v.Scale(), want) {
		t.Fatalf("backward: got %v want %v", v.Scale(), want)
	}
}

func TestWheelLeavesFitModeAndResizeKeepsScale(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(400, 400)
	v.SetImageSize(100, 100)
	v.Zoom(1)
	if v.Fit() {
		t.Fatalf("wheel must leave fit mode")
	}
	before := v.Scale()
	v.SetViewport(800, 800)
	if v.Scale() != before {
		t.Fatalf("free mode must not refit on resize: %v -> %v", before, v.Scale())
	}
}

func TestZeroWheelKeepsFitMode(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.Zoom(0)
	if !v.Fit() {
		t.Fatalf("zero notches must not leave fit mode")
	}
}

func TestToggleFitRecomputesScale(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(640, 480)
	v.SetImageSize(320, 320)
	v.ToggleFit()
	if v.Fit() {
		t.Fatalf("toggle must leave fit mode")
	}
	v.Zoom(3)
	v.BeginPan()
	v.PanBy(40, -25)
	v.ToggleFit()
	if !v.Fit() {
		t.Fatalf("toggle must re-enter fit mode")
	}
	if !almostEqual(v.Scale(), 1.5) {
		t.Fatalf("expected exact fit scale 1.5, got %v", v.Scale())
	}
	if px, py := v.Pan(); px != 0 || py != 0 {
		t.Fatalf("fit must reset pan, got (%v,%v)", px, py)
	}
	// The scaled image touches the viewport on the bound axis.
	_, _, ty := v.Transform()
	if !almostEqual(ty, 0) {
		t.Fatalf("expected image flush with top edge, got %v", ty)
	}
}

func TestPanOnlyInFreeMode(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(100, 100)
	v.SetImageSize(100, 100)
	v.BeginPan()
	v.PanBy(10, 10)
	if px, py := v.Pan(); px != 0 || py != 0 {
		t.Fatalf("fit mode must not pan")
	}
	v.ToggleFit()
	v.BeginPan()
	v.PanBy(10, 10)
	v.PanBy(15, -5)
	if px, py := v.Pan(); px != 15 || py != -5 {
		t.Fatalf("pan must be relative to the snapshot, got (%v,%v)", px, py)
	}
}

func TestEmptyImageKeepsUnitScale(t *testing.T) {
	v := NewView(DefaultZoomStep)
	v.SetViewport(720, 300)
	v.SetImageSize(0, 0)
	if v.Scale() != 1 {
		t.Fatalf("expected scale 1 for empty image, got %v", v.Scale())
	}
}

func TestInvalidStepFallsBackToDefault(t *testing.T) {
	if s := NewView(0.5).Step(); s != DefaultZoomStep {
		t.Fatalf("expected default step, got %v", s)
	}
}
