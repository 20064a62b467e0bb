// Package preview interprets input events for the image preview window:
// mouse drags move or resize the host window, the wheel and the fit key
// drive the zoom state.
package preview

import (
	"strings"

	"pixview/internal/platform"
)

const DefaultFitKey = "F"

// Outcome reports what a handled event changed.
type Outcome struct {
	Closed      bool
	Zoomed      bool
	ModeChanged bool
	Geometry    bool
}

// CursorKind is the pointer shape the host should show.
type CursorKind int

const (
	CursorDefault CursorKind = iota
	CursorMove
	CursorResizeNWSE
	CursorResizeNESW
)

type Machine struct {
	Gesture Gesture
	View    *View
	FitKey  string

	closed bool
}

func NewMachine(view *View, fitKey string) *Machine {
	if view == nil {
		view = NewView(DefaultZoomStep)
	}
	if strings.TrimSpace(fitKey) == "" {
		fitKey = DefaultFitKey
	}
	return &Machine{View: view, FitKey: fitKey}
}

func (m *Machine) Closed() bool { return m.closed }

// Handle routes one event to the gesture interpreter and the view. After the
// window is closed every event is ignored.
func (m *Machine) Handle(ev platform.Event, win platform.Window) Outcome {
	if m.closed || win.Closed() {
		m.closed = true
		return Outcome{Closed: true}
	}

	var out Outcome
	switch ev.Type {
	case platform.EventClose:
		win.Close()

	case platform.EventKeyDown:
		if ev.Key != platform.KeyEscape && !ev.Ctrl && strings.EqualFold(ev.Key, m.FitKey) {
			m.View.ToggleFit()
			out.ModeChanged = true
		}
		m.Gesture = StepGesture(m.Gesture, ev, win)

	case platform.EventMouseWheel:
		if ev.DeltaY != 0 {
			wasFit := m.View.Fit()
			m.View.Zoom(ev.DeltaY)
			out.Zoomed = true
			out.ModeChanged = wasFit
		}

	case platform.EventDoubleClick:
		if ev.Button == platform.ButtonPrimary {
			win.Close()
		}

	case platform.EventResize:
		m.View.SetViewport(ev.Width, ev.Height)

	case platform.EventMouseDown:
		wasActive := m.Gesture.Active()
		m.Gesture = StepGesture(m.Gesture, ev, win)
		if !wasActive && m.Gesture.Held == platform.ButtonPrimary {
			m.View.BeginPan()
		}

	case platform.EventMouseMove:
		m.Gesture = StepGesture(m.Gesture, ev, win)
		switch m.Gesture.Held {
		case platform.ButtonPrimary:
			m.View.PanBy(m.Gesture.Delta(ev.X, ev.Y))
		case platform.ButtonSecondary, platform.ButtonTertiary:
			out.Geometry = true
		}

	case platform.EventMouseUp:
		m.Gesture = StepGesture(m.Gesture, ev, win)
	}

	if win.Closed() {
		m.closed = true
		m.Gesture = Gesture{}
		out.Closed = true
	}
	return out
}

// Cursor is the pointer shape matching the current gesture and view mode.
func (m *Machine) Cursor() CursorKind {
	switch m.Gesture.Held {
	case platform.ButtonSecondary:
		return CursorMove
	case platform.ButtonTertiary:
		switch m.Gesture.Direction {
		case DirTopLeft, DirBottomRight:
			return CursorResizeNWSE
		default:
			return CursorResizeNESW
		}
	}
	if !m.View.Fit() {
		return CursorMove
	}
	return CursorDefault
}
