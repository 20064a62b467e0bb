// Package memory is a headless platform backend. Windows only record their
// geometry, which makes it the host used by tests.
package memory

import "pixview/internal/platform"

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "memory" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return NewWindow(cfg), nil
}

// Window is an in-memory platform.Window.
type Window struct {
	cfg    platform.WindowConfig
	x      int
	y      int
	w      int
	h      int
	closed bool

	Moves   int
	Resizes int
}

func NewWindow(cfg platform.WindowConfig) *Window {
	w, h := platform.ClampSize(cfg, cfg.WidthPx, cfg.HeightPx)
	return &Window{cfg: cfg, x: cfg.X, y: cfg.Y, w: w, h: h}
}

func (w *Window) Position() (int, int) { return w.x, w.y }
func (w *Window) Size() (int, int)     { return w.w, w.h }

func (w *Window) Move(x, y int) {
	w.x, w.y = x, y
	w.Moves++
}

func (w *Window) Resize(width, height int) {
	w.w, w.h = platform.ClampSize(w.cfg, width, height)
	w.Resizes++
}

func (w *Window) Close()       { w.closed = true }
func (w *Window) Closed() bool { return w.closed }
