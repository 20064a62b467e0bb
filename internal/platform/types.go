package platform

type WindowConfig struct {
	Title       string
	X           int
	Y           int
	Positioned  bool
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Frameless   bool
	AlwaysOnTop bool
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventDoubleClick
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventDoubleClick:
		return "double-click"
	default:
		return "unknown"
	}
}

// Button identifies the mouse button a press, release or double-click
// refers to. The physical mapping is decided by the backend.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonTertiary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonTertiary:
		return "tertiary"
	default:
		return "none"
	}
}

const (
	KeyEscape = "Escape"
	KeyC      = "C"
)

// Event is one input occurrence. X and Y carry the cursor position in
// screen coordinates for mouse events; Width and Height carry the new
// client size for EventResize.
type Event struct {
	Type   EventType
	Button Button
	X      int
	Y      int
	DeltaY int
	Width  int
	Height int
	Key    string
	Ctrl   bool
	Shift  bool
}

// Window is the host geometry the gesture interpreter drives.
type Window interface {
	Position() (int, int)
	Size() (int, int)
	Move(x, y int)
	Resize(w, h int)
	Close()
	Closed() bool
}

// Center returns the center of a window's frame in screen coordinates.
func Center(w Window) (int, int) {
	x, y := w.Position()
	width, height := w.Size()
	return x + width/2, y + height/2
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

// ClampSize applies the minimum size from cfg to a requested size.
func ClampSize(cfg WindowConfig, w, h int) (int, int) {
	minW, minH := cfg.MinWidthPx, cfg.MinHeightPx
	if minW < 1 {
		minW = 1
	}
	if minH < 1 {
		minH = 1
	}
	if w < minW {
		w = minW
	}
	if h < minH {
		h = minH
	}
	return w, h
}
