package icon

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func TestWindowsPackage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "app_icon.ico")

	res := NewWindowsStrategy().Package(context.Background(), out)
	if res.Outcome != Success {
		t.Fatalf("Package outcome = %v (err: %v), want success", res.Outcome, res.Err)
	}
	if len(res.Artifacts) != 1 || res.Artifacts[0] != out {
		t.Fatalf("artifacts = %v, want [%s]", res.Artifacts, out)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	imgs, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode container: %v", err)
	}
	if len(imgs) != len(WindowsSizes) {
		t.Fatalf("container holds %d images, want %d", len(imgs), len(WindowsSizes))
	}
	for i, want := range WindowsSizes {
		b := imgs[i].Bounds()
		if b.Dx() != want || b.Dy() != want {
			t.Errorf("embedded image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), want, want)
		}
	}
}

func TestWindowsPackageNoEncoder(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "app_icon.ico")

	s := &WindowsStrategy{} // encoder capability absent
	res := s.Package(context.Background(), out)
	if res.Outcome != Degraded {
		t.Fatalf("Package outcome = %v, want degraded", res.Outcome)
	}

	pngPath := filepath.Join(dir, "app_icon.png")
	assertPNGSize(t, pngPath, 256)

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("degraded path wrote %s, want png only", out)
	}
}

// TestWindowsPackageEncodeFailure checks that a failing encoder neither
// produces an artifact nor clobbers a previously valid container.
func TestWindowsPackageEncodeFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "app_icon.ico")

	prior := []byte("existing container")
	if err := os.WriteFile(out, prior, 0644); err != nil {
		t.Fatal(err)
	}

	s := &WindowsStrategy{
		encode: func(w io.Writer, imgs []image.Image) error { return errors.New("boom") },
	}
	res := s.Package(context.Background(), out)
	if res.Outcome != Failure {
		t.Fatalf("Package outcome = %v, want failure", res.Outcome)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, prior) {
		t.Error("failed encode clobbered the prior container")
	}
}
