package icon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// sheetPad is the gap around and between cells on a contact sheet.
const sheetPad = 8

// Sheet renders each requested size into a square cell of side cell pixels
// and lays the cells out in a single row. Rungs smaller than the cell are
// upscaled with nearest-neighbor so the size thresholds stay visible as
// hard pixels instead of being blurred away.
func Sheet(sizes []int, cell int) *image.NRGBA {
	w := len(sizes)*cell + (len(sizes)+1)*sheetPad
	h := cell + 2*sheetPad
	sheet := imaging.New(w, h, color.NRGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff})

	for i, size := range sizes {
		tile := image.NewRGBA(image.Rect(0, 0, cell, cell))
		src := Render(size)
		xdraw.NearestNeighbor.Scale(tile, tile.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		sheet = imaging.Paste(sheet, tile, image.Pt(sheetPad+i*(cell+sheetPad), sheetPad))
	}
	return sheet
}
