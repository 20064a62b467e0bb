package app

import (
	"image"

	"pixview/internal/render"
	"pixview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var statusFace font.Face = basicfont.Face7x13

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frameBuffer == nil || a.frameBuffer.W != w || a.frameBuffer.H != h {
		a.frameBuffer = render.NewFrameBuffer(w, h)
		a.canvas = ebiten.NewImage(w, h)
	}

	layout := ui.DrawShell(a.frameBuffer, a.theme)
	a.canvas.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.canvas, nil)

	a.drawPicture(screen, layout)

	if a.status != "" && a.frameTick < a.statusUntil {
		a.drawStatus(screen, layout)
	}
}

func (a *App) drawPicture(screen *ebiten.Image, layout ui.Layout) {
	if a.picture == nil || layout.ViewW <= 0 || layout.ViewH <= 0 {
		return
	}
	view := screen.SubImage(image.Rect(layout.ViewX, layout.ViewY, layout.ViewX+layout.ViewW, layout.ViewY+layout.ViewH)).(*ebiten.Image)

	scale, tx, ty := a.machine.View.Transform()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx+float64(layout.ViewX), ty+float64(layout.ViewY))
	if scale < 1 {
		op.Filter = ebiten.FilterLinear
	}
	view.DrawImage(a.picture, op)
}

func (a *App) drawStatus(screen *ebiten.Image, layout ui.Layout) {
	b := text.BoundString(statusFace, a.status)
	padX, padY := 8, 5
	boxW := b.Dx() + padX*2
	boxH := statusFace.Metrics().Height.Ceil() + padY*2
	x := layout.ViewX + 8
	y := layout.ViewY + layout.ViewH - boxH - 8
	if y < layout.ViewY {
		y = layout.ViewY
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), a.theme.OverlayBack, false)
	text.Draw(screen, a.status, statusFace, x+padX, y+padY+statusFace.Metrics().Ascent.Ceil(), a.theme.OverlayText)
}
