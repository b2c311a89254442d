package icon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// WindowsSizes is the size ladder embedded in the .ico container.
var WindowsSizes = []int{16, 32, 48, 64, 128, 256}

// WindowsStrategy assembles all ladder sizes into one multi-resolution
// .ico container.
type WindowsStrategy struct {
	// encode assembles the rendered images into a single ICO stream. A nil
	// encode means the capability is absent and the strategy degrades to a
	// single 256px PNG.
	encode func(w io.Writer, imgs []image.Image) error
}

// NewWindowsStrategy returns the Windows strategy with the default ICO
// encoder.
func NewWindowsStrategy() *WindowsStrategy {
	return &WindowsStrategy{encode: encodeICO}
}

func encodeICO(w io.Writer, imgs []image.Image) error {
	return ico.EncodeAll(w, imgs)
}

// Name implements Strategy.
func (s *WindowsStrategy) Name() string { return "windows" }

// Package implements Strategy. The container is encoded fully in memory
// and written in a single call, so a failed encode leaves any prior .ico
// untouched.
func (s *WindowsStrategy) Package(ctx context.Context, outPath string) Result {
	if s.encode == nil {
		path := withExt(outPath, ".png")
		if err := writePNG(path, Render(fallbackSize)); err != nil {
			return Result{Outcome: Failure, Err: fmt.Errorf("write fallback png: %w", err)}
		}
		return Result{
			Outcome:   Degraded,
			Artifacts: []string{path},
			Note:      "no ICO encoder available, wrote a single PNG instead",
		}
	}

	imgs := make([]image.Image, 0, len(WindowsSizes))
	for _, size := range WindowsSizes {
		imgs = append(imgs, Render(size))
	}

	var buf bytes.Buffer
	if err := s.encode(&buf, imgs); err != nil {
		return Result{Outcome: Failure, Err: fmt.Errorf("encode ico: %w", err)}
	}

	path := withExt(outPath, ".ico")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return Result{Outcome: Failure, Err: fmt.Errorf("write ico: %w", err)}
	}
	return Result{
		Outcome:   Success,
		Artifacts: []string{path},
		Note:      fmt.Sprintf("ico container with %d sizes", len(WindowsSizes)),
	}
}
