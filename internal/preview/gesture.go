package preview

import "pixview/internal/platform"

// Direction is the corner a tertiary-button resize drags. It is chosen at
// press time from the cursor position relative to the window center.
type Direction int

const (
	DirNone Direction = iota
	DirTopRight
	DirBottomRight
	DirTopLeft
	DirBottomLeft
)

func (d Direction) String() string {
	switch d {
	case DirTopRight:
		return "top-right"
	case DirBottomRight:
		return "bottom-right"
	case DirTopLeft:
		return "top-left"
	case DirBottomLeft:
		return "bottom-left"
	default:
		return "none"
	}
}

func directionFor(px, py, cx, cy int) Direction {
	right := px > cx
	above := py < cy
	switch {
	case right && above:
		return DirTopRight
	case right:
		return DirBottomRight
	case above:
		return DirTopLeft
	default:
		return DirBottomLeft
	}
}

// Gesture is everything remembered between a press and its release.
type Gesture struct {
	Held     platform.Button
	Dragging bool

	PressX, PressY   int
	WinX, WinY       int
	WinW, WinH       int
	CenterX, CenterY int

	Direction Direction
}

func (g Gesture) Active() bool { return g.Held != platform.ButtonNone }

// Delta is the cursor offset from the press position.
func (g Gesture) Delta(x, y int) (int, int) {
	return x - g.PressX, y - g.PressY
}

// StepGesture consumes one event and returns the next gesture state. Moves
// apply window geometry immediately, computed from the press snapshot, so
// replaying the same move is idempotent.
func StepGesture(g Gesture, ev platform.Event, win platform.Window) Gesture {
	switch ev.Type {
	case platform.EventMouseDown:
		if g.Active() || ev.Button == platform.ButtonNone {
			return g
		}
		next := Gesture{Held: ev.Button, PressX: ev.X, PressY: ev.Y}
		next.WinX, next.WinY = win.Position()
		next.WinW, next.WinH = win.Size()
		next.CenterX, next.CenterY = platform.Center(win)
		if ev.Button == platform.ButtonTertiary {
			next.Direction = directionFor(ev.X, ev.Y, next.CenterX, next.CenterY)
		}
		return next

	case platform.EventMouseMove:
		if !g.Active() {
			return g
		}
		g.Dragging = true
		g.apply(ev.X, ev.Y, win)
		return g

	case platform.EventMouseUp:
		return Gesture{}

	case platform.EventKeyDown:
		if ev.Key == platform.KeyEscape {
			win.Close()
			return Gesture{}
		}
	}
	return g
}

func (g Gesture) apply(x, y int, win platform.Window) {
	dx, dy := g.Delta(x, y)
	switch g.Held {
	case platform.ButtonSecondary:
		win.Move(g.WinX+dx, g.WinY+dy)
	case platform.ButtonTertiary:
		switch g.Direction {
		case DirTopRight:
			win.Move(g.WinX, g.WinY+dy)
			win.Resize(g.WinW+dx, g.WinH-dy)
		case DirBottomRight:
			win.Resize(g.WinW+dx, g.WinH+dy)
		case DirTopLeft:
			win.Move(g.WinX+dx, g.WinY+dy)
			win.Resize(g.WinW-dx, g.WinH-dy)
		case DirBottomLeft:
			win.Move(g.WinX+dx, g.WinY)
			win.Resize(g.WinW-dx, g.WinH+dy)
		}
	}
}
