package preview

// DefaultZoomStep is the scale factor applied per wheel notch.
const DefaultZoomStep = 1.05

// View holds the zoom state of the displayed image. In fit mode the scale
// follows the viewport; in free mode only Zoom and panning change it.
type View struct {
	fit   bool
	scale float64
	step  float64

	imgW, imgH   int
	viewW, viewH int

	// pan is the offset of the image center from the viewport center.
	panX, panY         float64
	panOrigX, panOrigY float64
}

func NewView(step float64) *View {
	if step <= 1 {
		step = DefaultZoomStep
	}
	return &View{fit: true, scale: 1, step: step}
}

func (v *View) Fit() bool               { return v.fit }
func (v *View) Scale() float64          { return v.scale }
func (v *View) Step() float64           { return v.step }
func (v *View) Pan() (float64, float64) { return v.panX, v.panY }

// SetImageSize installs a new image. Fit mode refits it; free mode keeps the
// current scale and pan.
func (v *View) SetImageSize(w, h int) {
	v.imgW, v.imgH = w, h
	if v.fit {
		v.refit()
	}
}

// SetViewport records the client area size and refits in fit mode.
func (v *View) SetViewport(w, h int) {
	v.viewW, v.viewH = w, h
	if v.fit {
		v.refit()
	}
}

// FitScale is the largest scale at which the whole image fits the viewport
// with its aspect ratio kept. It is 1 when either size is empty.
func (v *View) FitScale() float64 {
	if v.imgW <= 0 || v.imgH <= 0 || v.viewW <= 0 || v.viewH <= 0 {
		return 1
	}
	sx := float64(v.viewW) / float64(v.imgW)
	sy := float64(v.viewH) / float64(v.imgH)
	if sx < sy {
		return sx
	}
	return sy
}

func (v *View) refit() {
	v.scale = v.FitScale()
	v.panX, v.panY = 0, 0
}

// ToggleFit leaves fit mode, or re-enters it and refits immediately.
func (v *View) ToggleFit() {
	if v.fit {
		v.fit = false
		return
	}
	v.fit = true
	v.refit()
}

// Zoom applies notches wheel steps: each positive notch multiplies the
// scale by the step, each negative one divides by it. Any non-zero zoom
// leaves fit mode. Zooming keeps the viewport center fixed on the image.
// During a hand drag the pan snapshot moves with the zoom so the next PanBy
// continues from the zoomed position.
func (v *View) Zoom(notches int) {
	if notches == 0 {
		return
	}
	v.fit = false
	before := v.scale
	for ; notches > 0; notches-- {
		v.scale *= v.step
	}
	for ; notches < 0; notches++ {
		v.scale /= v.step
	}
	k := v.scale / before
	dx, dy := v.panX*(k-1), v.panY*(k-1)
	v.panX += dx
	v.panY += dy
	v.panOrigX += dx
	v.panOrigY += dy
}

// BeginPan snapshots the pan offset at the start of a hand drag.
func (v *View) BeginPan() {
	v.panOrigX, v.panOrigY = v.panX, v.panY
}

// PanBy moves the image by (dx, dy) relative to the BeginPan snapshot.
// Fit mode has nothing to pan.
func (v *View) PanBy(dx, dy int) {
	if v.fit {
		return
	}
	v.panX = v.panOrigX + float64(dx)
	v.panY = v.panOrigY + float64(dy)
}

// Transform returns the scale and the viewport position of the image's top
// left corner.
func (v *View) Transform() (scale, tx, ty float64) {
	scale = v.scale
	tx = float64(v.viewW)/2 + v.panX - float64(v.imgW)*scale/2
	ty = float64(v.viewH)/2 + v.panY - float64(v.imgH)*scale/2
	return scale, tx, ty
}
