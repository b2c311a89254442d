package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Matrix palette.
var (
	colorBackground = color.RGBA{A: 0xff}                   // opaque black
	colorAccent     = color.RGBA{G: 0xff, B: 0x41, A: 0xff} // matrix green
	colorAccentDim  = color.RGBA{G: 0xc8, B: 0x32, A: 0xff} // darker green for corner brackets
)

// paintStep is one conditional layer of the icon. Steps are applied in
// slice order, so later steps paint over earlier ones regardless of which
// thresholds happen to pass.
type paintStep struct {
	name    string
	minSize int // smallest size at which the step is painted
	draw    func(dc *gg.Context, size int)
}

// paintSteps is the fixed paint order. The dot comes after the diagonals
// on purpose: it must sit on top of their crossing point.
var paintSteps = []paintStep{
	{"background", 1, drawBackground},
	{"border", 1, drawBorder},
	{"diagonals", 48, drawDiagonals},
	{"dot", 32, drawDot},
	{"corners", 64, drawCorners},
}

// Render produces the icon as a size×size RGBA image. size must be
// positive. All measurements use truncating integer division; there is no
// randomness or external state, so equal sizes yield identical pixels.
func Render(size int) *image.RGBA {
	dc := gg.NewContext(size, size)
	for _, step := range paintSteps {
		if size >= step.minSize {
			step.draw(dc, size)
		}
	}
	return dc.Image().(*image.RGBA)
}

// borderWidth is both the border inset and its stroke thickness. The
// center dot reuses it as radius so the motif scales together.
func borderWidth(size int) int {
	if w := size / 16; w > 2 {
		return w
	}
	return 2
}

func drawBackground(dc *gg.Context, size int) {
	dc.SetColor(colorBackground)
	dc.Clear()
}

func drawBorder(dc *gg.Context, size int) {
	w := float64(borderWidth(size))
	dc.SetColor(colorAccent)
	dc.SetLineWidth(w)
	dc.DrawRectangle(w, w, float64(size)-2*w, float64(size)-2*w)
	dc.Stroke()
}

func drawDiagonals(dc *gg.Context, size int) {
	m := float64(size / 8)
	s := float64(size)
	dc.SetColor(colorAccent)
	dc.SetLineWidth(1)
	dc.DrawLine(m, m, s-m, s-m)
	dc.DrawLine(s-m, m, m, s-m)
	dc.Stroke()
}

func drawDot(dc *gg.Context, size int) {
	c := float64(size / 2)
	dc.SetColor(colorAccent)
	dc.DrawCircle(c, c, float64(borderWidth(size)))
	dc.Fill()
}

// drawCorners paints an "L" bracket in each corner: two arms of length
// size/4, inset size/16 from the edges.
func drawCorners(dc *gg.Context, size int) {
	m := float64(size / 16)
	arm := float64(size / 4)
	s := float64(size)
	dc.SetColor(colorAccentDim)
	dc.SetLineWidth(1)
	// top-left
	dc.DrawLine(m, m, arm, m)
	dc.DrawLine(m, m, m, arm)
	// top-right
	dc.DrawLine(s-m, m, s-arm, m)
	dc.DrawLine(s-m, m, s-m, arm)
	// bottom-left
	dc.DrawLine(m, s-m, arm, s-m)
	dc.DrawLine(m, s-m, m, s-arm)
	// bottom-right
	dc.DrawLine(s-m, s-m, s-arm, s-m)
	dc.DrawLine(s-m, s-m, s-m, s-arm)
	dc.Stroke()
}
