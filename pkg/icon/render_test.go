package icon

import (
	"bytes"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	sizes := []int{1, 8, 16, 31, 32, 48, 64, 128, 256, 512}

	for _, size := range sizes {
		img := Render(size)
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d", size, b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{16, 48, 64, 256} {
		a := Render(size)
		b := Render(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Render(%d) produced different pixels across calls", size)
		}
	}
}

func TestBorderWidth(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{1, 2},
		{16, 2},
		{31, 2},
		{32, 2},
		{48, 3},
		{64, 4},
		{128, 8},
		{256, 16},
		{1024, 64},
	}

	for _, tt := range tests {
		if got := borderWidth(tt.size); got != tt.want {
			t.Errorf("borderWidth(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

// TestPaintOrder pins the layering contract: the dot must be painted after
// the diagonals so it covers their crossing point, and the thresholds must
// not move.
func TestPaintOrder(t *testing.T) {
	want := []struct {
		name    string
		minSize int
	}{
		{"background", 1},
		{"border", 1},
		{"diagonals", 48},
		{"dot", 32},
		{"corners", 64},
	}

	if len(paintSteps) != len(want) {
		t.Fatalf("got %d paint steps, want %d", len(paintSteps), len(want))
	}
	for i, w := range want {
		if paintSteps[i].name != w.name {
			t.Errorf("paintSteps[%d].name = %q, want %q", i, paintSteps[i].name, w.name)
		}
		if paintSteps[i].minSize != w.minSize {
			t.Errorf("paintSteps[%d].minSize = %d, want %d", i, paintSteps[i].minSize, w.minSize)
		}
	}
}

// TestSmallSizesBorderOnly checks that below the first ornament threshold
// every lit pixel hugs the edges: tiny icons are border-only by design.
func TestSmallSizesBorderOnly(t *testing.T) {
	for _, size := range []int{8, 16, 24, 31} {
		img := Render(size)
		limit := 2 * borderWidth(size)

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if img.RGBAAt(x, y).G == 0 {
					continue
				}
				edge := min(min(x, y), min(size-1-x, size-1-y))
				if edge > limit {
					t.Fatalf("Render(%d): lit pixel at (%d,%d), %d from edge, outside border band (%d)",
						size, x, y, edge, limit)
				}
			}
		}
	}
}

func TestDotThreshold(t *testing.T) {
	tests := []struct {
		size    int
		wantDot bool
	}{
		{16, false},
		{31, false},
		{32, true},
		{40, true},
		{64, true},
	}

	for _, tt := range tests {
		img := Render(tt.size)
		c := img.RGBAAt(tt.size/2, tt.size/2)
		gotDot := c.G > 128
		if gotDot != tt.wantDot {
			t.Errorf("Render(%d) center pixel G = %d, dot present = %v, want %v",
				tt.size, c.G, gotDot, tt.wantDot)
		}
	}
}

func TestDiagonalThreshold(t *testing.T) {
	tests := []struct {
		size     int
		wantDiag bool
	}{
		{32, false},
		{40, false},
		{47, false},
		{48, true},
		{64, true},
		{128, true},
	}

	for _, tt := range tests {
		img := Render(tt.size)
		// A point a quarter in sits on the main diagonal, well clear of
		// the border band and the center dot.
		p := tt.size / 4
		c := img.RGBAAt(p, p)
		gotDiag := c.G > 60
		if gotDiag != tt.wantDiag {
			t.Errorf("Render(%d) pixel (%d,%d) G = %d, diagonal present = %v, want %v",
				tt.size, p, p, c.G, gotDiag, tt.wantDiag)
		}
	}
}

// TestCornerBrackets checks the darker corner strokes. The bracket arms
// run inside the border band, so their presence shows up as the border
// green dimming where an arm overlays it.
func TestCornerBrackets(t *testing.T) {
	// At 48 the corners are below threshold: the top border band stays
	// pure accent green.
	img := Render(48)
	if g := img.RGBAAt(10, 2).G; g < 250 {
		t.Errorf("Render(48) border pixel G = %d, want undimmed (>= 250)", g)
	}

	// At 64 the horizontal arm runs along y=4 for x in [4,16] and dims
	// the border underneath it.
	img = Render(64)
	if g := img.RGBAAt(10, 4).G; g >= 250 || g < 150 {
		t.Errorf("Render(64) bracket pixel G = %d, want dimmed (150..249)", g)
	}
}

func TestSheetDimensions(t *testing.T) {
	sizes := []int{16, 32, 48}
	cell := 64

	sheet := Sheet(sizes, cell)
	wantW := len(sizes)*cell + (len(sizes)+1)*sheetPad
	wantH := cell + 2*sheetPad
	b := sheet.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("Sheet bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}
