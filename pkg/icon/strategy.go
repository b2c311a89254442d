package icon

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Outcome classifies how a packaging attempt ended. There are no retries:
// a missing optional capability is a deterministic branch, not a transient
// fault, so every attempt lands in exactly one terminal outcome.
type Outcome int

const (
	// Success means the preferred artifact for the platform was produced.
	Success Outcome = iota
	// Degraded means packaging completed, but with a simpler artifact than
	// the preferred container format.
	Degraded
	// Failure means no new artifact is guaranteed to exist.
	Failure
)

// String returns a short lowercase label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Degraded:
		return "degraded"
	default:
		return "failure"
	}
}

// Result describes what one packaging attempt produced.
type Result struct {
	Outcome   Outcome
	Artifacts []string // paths written, preferred artifact first
	Note      string   // human-readable outcome detail
	Err       error    // underlying cause for Degraded or Failure, if any
}

// Strategy packages rendered icons for one target platform. Implementations
// never mutate rendered images and absorb their own errors: Package always
// returns a Result instead of propagating failures to the caller.
type Strategy interface {
	// Name is the platform label the strategy serves.
	Name() string
	// Package renders whatever sizes the target needs and writes the final
	// artifact(s) derived from outPath. The extension of outPath is
	// replaced to match what was actually produced.
	Package(ctx context.Context, outPath string) Result
}

// ForPlatform selects the packaging strategy for a GOOS value. The choice
// is made once per invocation and held fixed. Platforms without a native
// container format get the portable PNG fallback.
func ForPlatform(goos string) Strategy {
	switch goos {
	case "windows":
		return NewWindowsStrategy()
	case "darwin":
		return NewMacStrategy()
	default:
		return FallbackStrategy{}
	}
}

// withExt replaces the extension of path with ext (including the dot).
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// writePNG encodes img into memory first and writes the file in one call,
// so an encoding error never truncates a previously written artifact.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
