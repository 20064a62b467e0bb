package app

import (
	"fmt"
	"image"
	"log"

	"pixview/internal/config"
	"pixview/internal/imageio"
	"pixview/internal/platform"
	"pixview/internal/platform/ebitenwin"
	"pixview/internal/preview"
	"pixview/internal/render"
	"pixview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// statusTicks is how long a status message stays on screen (1.5s at the
// default 60 TPS).
const statusTicks = 90

type App struct {
	cfg   *config.Config
	theme ui.Theme

	win     platform.Window
	poller  *ebitenwin.Poller
	machine *preview.Machine

	img      image.Image
	imgPath  string
	picture  *ebiten.Image
	watcher  *imageio.Watcher
	released *ebiten.Image

	frameBuffer *render.FrameBuffer
	canvas      *ebiten.Image

	status      string
	statusUntil uint64
	frameTick   uint64
	cursor      preview.CursorKind

	screenW int
	screenH int
	viewW   int
	viewH   int
}

// New builds the previewer on host. The poller always reads ebiten input;
// host only decides where window geometry goes.
func New(cfg *config.Config, host platform.Platform) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	theme, loaded, err := ui.LoadStylesheet(cfg.Stylesheet)
	if err != nil {
		log.Printf("stylesheet ignored: %v", err)
	} else if loaded {
		log.Printf("stylesheet loaded from %s", cfg.Stylesheet)
	}

	primary, err := ebitenwin.ParseMouseButton(cfg.Buttons.Primary)
	if err != nil {
		return nil, fmt.Errorf("buttons.primary: %w", err)
	}
	secondary, err := ebitenwin.ParseMouseButton(cfg.Buttons.Secondary)
	if err != nil {
		return nil, fmt.Errorf("buttons.secondary: %w", err)
	}
	tertiary, err := ebitenwin.ParseMouseButton(cfg.Buttons.Tertiary)
	if err != nil {
		return nil, fmt.Errorf("buttons.tertiary: %w", err)
	}

	win, err := host.CreateWindow(cfg.WindowConfig())
	if err != nil {
		return nil, fmt.Errorf("create %s window: %w", host.Name(), err)
	}

	return &App{
		cfg:     cfg,
		theme:   theme,
		win:     win,
		poller:  ebitenwin.NewPoller(ebitenwin.LiveInput{}, primary, secondary, tertiary, cfg.DoubleClickDuration()),
		machine: preview.NewMachine(preview.NewView(cfg.ZoomStep), cfg.FitKey),
	}, nil
}

// SetImage loads and displays the image at path. A missing or unreadable
// file leaves the window blank and the load error is returned. An empty
// path returns imageio.ErrNoPath.
func (a *App) SetImage(path string) error {
	img, format, err := imageio.Load(path)
	if err != nil {
		a.showImage(nil, path)
	} else {
		log.Printf("loaded %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())
		a.showImage(img, path)
	}
	if a.cfg.Watch && path != "" && path != a.watchedPath() {
		a.watch(path)
	}
	return err
}

func (a *App) reload(path string) {
	if err := a.SetImage(path); err != nil {
		log.Printf("reload image: %v", err)
		a.setStatus("Reload failed")
		return
	}
	a.setStatus("Reloaded")
}

func (a *App) showImage(img image.Image, path string) {
	if a.picture != nil {
		// Draw may still reference the old image this frame.
		a.released = a.picture
	}
	a.img = img
	a.imgPath = path
	a.picture = nil
	if img == nil {
		a.machine.View.SetImageSize(0, 0)
		return
	}
	a.picture = ebiten.NewImageFromImage(img)
	b := img.Bounds()
	a.machine.View.SetImageSize(b.Dx(), b.Dy())
}

func (a *App) watchedPath() string {
	if a.watcher == nil {
		return ""
	}
	return a.watcher.Path()
}

func (a *App) watch(path string) {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	w, err := imageio.Watch(path)
	if err != nil {
		log.Printf("live reload disabled: %v", err)
		return
	}
	a.watcher = w
}

func (a *App) Run() error {
	defer func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
	}()
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.frameTick++
	if a.released != nil {
		a.released.Deallocate()
		a.released = nil
	}

	if a.watcher != nil {
		select {
		case path := <-a.watcher.Changes():
			a.reload(path)
		default:
		}
	}

	if w, h := a.currentViewSize(); w != a.viewW || h != a.viewH {
		a.viewW, a.viewH = w, h
		a.machine.Handle(platform.Event{Type: platform.EventResize, Width: w, Height: h}, a.win)
	}

	for _, ev := range a.poller.Poll(a.win) {
		if err := a.dispatch(ev); err != nil {
			return err
		}
	}

	if c := a.machine.Cursor(); c != a.cursor {
		a.cursor = c
		ebiten.SetCursorShape(cursorShape(c))
	}
	return nil
}

// dispatch handles one polled event. It returns ebiten.Termination once the
// window is closed.
func (a *App) dispatch(ev platform.Event) error {
	if ev.Type == platform.EventKeyDown && ev.Ctrl && ev.Key == platform.KeyC {
		a.copyToClipboard(ev.Shift)
		return nil
	}
	out := a.machine.Handle(ev, a.win)
	if out.Closed {
		return ebiten.Termination
	}
	if out.Zoomed || out.ModeChanged {
		a.setStatus(zoomStatus(a.machine.View))
	}
	return nil
}

func (a *App) copyToClipboard(pathOnly bool) {
	if pathOnly {
		if err := imageio.CopyPath(a.imgPath); err != nil {
			log.Printf("copy path: %v", err)
			a.setStatus("Copy failed")
			return
		}
		a.setStatus("Path copied")
		return
	}
	if err := imageio.CopyImage(a.img); err != nil {
		log.Printf("copy image: %v", err)
		a.setStatus("Copy failed")
		return
	}
	a.setStatus("Image copied")
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusUntil = a.frameTick + statusTicks
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.screenW = max(1, outsideWidth)
	a.screenH = max(1, outsideHeight)
	return a.screenW, a.screenH
}

func (a *App) currentViewSize() (int, int) {
	w, h := a.screenW, a.screenH
	if w <= 0 || h <= 0 {
		w, h = a.win.Size()
	}
	l := ui.ComputeLayout(w, h, a.theme)
	return l.ViewW, l.ViewH
}

func cursorShape(c preview.CursorKind) ebiten.CursorShapeType {
	switch c {
	case preview.CursorMove:
		return ebiten.CursorShapeMove
	case preview.CursorResizeNWSE:
		return ebiten.CursorShapeNWSEResize
	case preview.CursorResizeNESW:
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeDefault
	}
}

func zoomStatus(v *preview.View) string {
	pct := v.Scale() * 100
	if v.Fit() {
		return fmt.Sprintf("Fit %.0f%%", pct)
	}
	return fmt.Sprintf("Zoom %.0f%%", pct)
}
