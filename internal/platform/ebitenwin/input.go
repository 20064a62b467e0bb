package ebitenwin

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixview/internal/platform"
)

// ParseMouseButton maps a config button name to an ebiten mouse button.
func ParseMouseButton(name string) (ebiten.MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return ebiten.MouseButtonLeft, nil
	case "middle":
		return ebiten.MouseButtonMiddle, nil
	case "right":
		return ebiten.MouseButtonRight, nil
	default:
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
}

// Input is the slice of ebiten's input API the poller reads each frame.
type Input interface {
	JustPressedKeys() []ebiten.Key
	KeyPressed(k ebiten.Key) bool
	CursorPosition() (int, int)
	ButtonJustPressed(b ebiten.MouseButton) bool
	ButtonJustReleased(b ebiten.MouseButton) bool
	Wheel() (float64, float64)
	Closing() bool
}

// LiveInput reads the running game's input state.
type LiveInput struct{}

func (LiveInput) JustPressedKeys() []ebiten.Key                { return inpututil.AppendJustPressedKeys(nil) }
func (LiveInput) KeyPressed(k ebiten.Key) bool                 { return ebiten.IsKeyPressed(k) }
func (LiveInput) CursorPosition() (int, int)                   { return ebiten.CursorPosition() }
func (LiveInput) ButtonJustPressed(b ebiten.MouseButton) bool  { return inpututil.IsMouseButtonJustPressed(b) }
func (LiveInput) ButtonJustReleased(b ebiten.MouseButton) bool { return inpututil.IsMouseButtonJustReleased(b) }
func (LiveInput) Wheel() (float64, float64)                    { return ebiten.Wheel() }
func (LiveInput) Closing() bool                                { return ebiten.IsWindowBeingClosed() }

type binding struct {
	role   platform.Button
	button ebiten.MouseButton
}

// Poller converts one frame of ebiten input into platform events. Mouse
// positions are reported in screen coordinates: the window position plus
// the window-relative cursor.
//
// The window position and the window-relative cursor are read in the same
// frame. Window managers that move windows asynchronously can report them a
// frame apart, so a window move may lag the pointer by one frame.
type Poller struct {
	input    Input
	bindings []binding
	clicks   platform.ClickTracker
	wheel    platform.WheelAccumulator
	now      func() time.Time

	lastX, lastY int
	hasLast      bool
}

func NewPoller(input Input, primary, secondary, tertiary ebiten.MouseButton, doubleClick time.Duration) *Poller {
	return &Poller{
		input: input,
		bindings: []binding{
			{platform.ButtonPrimary, primary},
			{platform.ButtonSecondary, secondary},
			{platform.ButtonTertiary, tertiary},
		},
		clicks: platform.ClickTracker{Interval: doubleClick},
		now:    time.Now,
	}
}

func (p *Poller) Poll(win platform.Window) []platform.Event {
	var events []platform.Event
	if p.input.Closing() {
		events = append(events, platform.Event{Type: platform.EventClose})
	}
	ctrl := p.input.KeyPressed(ebiten.KeyControl) || p.input.KeyPressed(ebiten.KeyMeta)
	shift := p.input.KeyPressed(ebiten.KeyShift)

	for _, k := range p.input.JustPressedKeys() {
		events = append(events, platform.Event{Type: platform.EventKeyDown, Key: k.String(), Ctrl: ctrl, Shift: shift})
	}

	wx, wy := win.Position()
	cx, cy := p.input.CursorPosition()
	sx, sy := wx+cx, wy+cy
	if !p.hasLast || sx != p.lastX || sy != p.lastY {
		events = append(events, platform.Event{Type: platform.EventMouseMove, X: sx, Y: sy})
		p.lastX, p.lastY, p.hasLast = sx, sy, true
	}

	for _, b := range p.bindings {
		if !p.input.ButtonJustPressed(b.button) {
			continue
		}
		events = append(events, platform.Event{Type: platform.EventMouseDown, Button: b.role, X: sx, Y: sy})
		if b.role == platform.ButtonPrimary && p.clicks.Press(p.now(), sx, sy) {
			events = append(events, platform.Event{Type: platform.EventDoubleClick, Button: b.role, X: sx, Y: sy})
		}
	}
	for _, b := range p.bindings {
		if p.input.ButtonJustReleased(b.button) {
			events = append(events, platform.Event{Type: platform.EventMouseUp, Button: b.role, X: sx, Y: sy})
		}
	}

	_, dy := p.input.Wheel()
	if n := p.wheel.Add(dy); n != 0 {
		events = append(events, platform.Event{Type: platform.EventMouseWheel, DeltaY: n, X: sx, Y: sy})
	}
	return events
}
