package icon

import (
	"context"
	"fmt"
)

// fallbackSize is the single resolution written when no container format
// applies.
const fallbackSize = 256

// FallbackStrategy writes one 256px PNG for platforms without a native
// icon container format. The PNG is the preferred artifact here, so a
// clean write is a full Success, not a degradation.
type FallbackStrategy struct{}

// Name implements Strategy.
func (FallbackStrategy) Name() string { return "png" }

// Package implements Strategy.
func (FallbackStrategy) Package(ctx context.Context, outPath string) Result {
	path := withExt(outPath, ".png")
	if err := writePNG(path, Render(fallbackSize)); err != nil {
		return Result{Outcome: Failure, Err: fmt.Errorf("write png: %w", err)}
	}
	return Result{
		Outcome:   Success,
		Artifacts: []string{path},
		Note:      fmt.Sprintf("%dx%d png", fallbackSize, fallbackSize),
	}
}
