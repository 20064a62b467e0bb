package ui

import "pixview/internal/render"

// Layout is the part of the window the image is drawn into.
type Layout struct {
	ViewX int
	ViewY int
	ViewW int
	ViewH int
}

func ComputeLayout(w, h int, theme Theme) Layout {
	border := theme.BorderPx
	if border < 0 {
		border = 0
	}
	viewW := w - border*2
	viewH := h - border*2
	if viewW < 0 {
		viewW = 0
	}
	if viewH < 0 {
		viewH = 0
	}
	return Layout{ViewX: border, ViewY: border, ViewW: viewW, ViewH: viewH}
}

// DrawShell paints everything behind the image: the background or the
// transparency checkerboard, then the window border.
func DrawShell(fb *render.FrameBuffer, theme Theme) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme)

	fb.Clear(theme.Background)
	if theme.Checkerboard {
		fb.Checker(layout.ViewX, layout.ViewY, layout.ViewW, layout.ViewH, theme.CheckerPx, theme.CheckerLight, theme.CheckerDark)
	}
	if theme.BorderPx > 0 {
		fb.StrokeRect(0, 0, fb.W, fb.H, theme.BorderPx, theme.Border)
	}
	return layout
}
