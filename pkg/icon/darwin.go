package icon

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// masterSize is the high-resolution PNG written unconditionally on the
// macOS path.
const masterSize = 1024

// iconsetSlots maps canonical .iconset filenames to pixel sizes. Two slot
// pairs intentionally share pixel content (16@2x with 32, 128@2x with 256):
// they fill different display-density slots of the same container.
var iconsetSlots = []struct {
	name string
	size int
}{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// MacStrategy always writes a high-resolution PNG, then opportunistically
// compiles a staged .iconset directory into an .icns container when the
// system iconutil tool is present.
type MacStrategy struct {
	lookPath func(file string) (string, error)
	compile  func(ctx context.Context, iconsetDir, outPath string) error
}

// NewMacStrategy returns the macOS strategy backed by the real iconutil
// binary.
func NewMacStrategy() *MacStrategy {
	return &MacStrategy{lookPath: exec.LookPath, compile: runIconutil}
}

// Name implements Strategy.
func (s *MacStrategy) Name() string { return "darwin" }

// Package implements Strategy. The PNG write happens first and is
// independent of everything after it: whatever the iconutil branch does,
// the PNG remains a usable artifact.
func (s *MacStrategy) Package(ctx context.Context, outPath string) Result {
	pngPath := withExt(outPath, ".png")
	if err := writePNG(pngPath, Render(masterSize)); err != nil {
		return Result{Outcome: Failure, Err: fmt.Errorf("write png: %w", err)}
	}

	if _, err := s.lookPath("iconutil"); err != nil {
		return Result{
			Outcome:   Degraded,
			Artifacts: []string{pngPath},
			Note:      "iconutil not found, the PNG is the final artifact",
		}
	}

	stagingDir := withExt(outPath, ".iconset")
	icnsPath := withExt(outPath, ".icns")
	if err := stageIconset(stagingDir); err != nil {
		return Result{
			Outcome:   Degraded,
			Artifacts: []string{pngPath},
			Note:      "staging the iconset failed, the PNG is the final artifact",
			Err:       err,
		}
	}
	if err := s.compile(ctx, stagingDir, icnsPath); err != nil {
		// The staging directory is deliberately left behind here; the PNG
		// written above remains usable.
		return Result{
			Outcome:   Degraded,
			Artifacts: []string{pngPath},
			Note:      "iconutil failed, the PNG is the final artifact",
			Err:       err,
		}
	}
	_ = os.RemoveAll(stagingDir) // best effort

	return Result{
		Outcome:   Success,
		Artifacts: []string{icnsPath, pngPath},
		Note:      "icns container compiled from iconset",
	}
}

// stageIconset writes every slot of the iconset into dir, creating it if
// needed.
func stageIconset(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, slot := range iconsetSlots {
		if err := writePNG(filepath.Join(dir, slot.name), Render(slot.size)); err != nil {
			return fmt.Errorf("stage %s: %w", slot.name, err)
		}
	}
	return nil
}

// runIconutil shells out to the system icon compiler. There is no timeout:
// this is an offline build step, and a hang in iconutil is surfaced by the
// operator interrupting the process (the context is wired for exactly that).
func runIconutil(ctx context.Context, iconsetDir, outPath string) error {
	cmd := exec.CommandContext(ctx, "iconutil", "-c", "icns", iconsetDir, "-o", outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("iconutil: %v: %s", err, stderr.String())
	}
	return nil
}
