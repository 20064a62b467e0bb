// Package ebitenwin hosts the preview window on ebiten: it applies window
// geometry and turns polled ebiten input into platform events.
package ebitenwin

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pixview/internal/platform"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "ebiten" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return NewWindow(cfg), nil
}

// Window drives the single ebiten window. Geometry is in device-independent
// pixels, the unit ebiten uses for window position and size.
type Window struct {
	cfg    platform.WindowConfig
	closed bool
}

func NewWindow(cfg platform.WindowConfig) *Window {
	w, h := platform.ClampSize(cfg, cfg.WidthPx, cfg.HeightPx)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(max(1, cfg.MinWidthPx), max(1, cfg.MinHeightPx), -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowDecorated(!cfg.Frameless)
	ebiten.SetWindowFloating(cfg.AlwaysOnTop)
	ebiten.SetWindowClosingHandled(true)
	if cfg.Positioned {
		ebiten.SetWindowPosition(cfg.X, cfg.Y)
	}
	return &Window{cfg: cfg}
}

func (w *Window) Position() (int, int) { return ebiten.WindowPosition() }
func (w *Window) Size() (int, int)     { return ebiten.WindowSize() }

func (w *Window) Move(x, y int) { ebiten.SetWindowPosition(x, y) }

// Resize clamps to the configured minimum; ebiten panics on non-positive
// window sizes.
func (w *Window) Resize(width, height int) {
	width, height = platform.ClampSize(w.cfg, width, height)
	ebiten.SetWindowSize(width, height)
}

func (w *Window) Close()       { w.closed = true }
func (w *Window) Closed() bool { return w.closed }
