// Package icon renders the matrix-style application icon and packages it
// into platform icon formats.
//
// Rendering is a pure function of pixel size: the same size always produces
// a pixel-identical image. Which ornaments appear (center dot, diagonals,
// corner brackets) depends on fixed size thresholds, so tiny icons degrade
// to a plain bordered square.
//
// Packaging is handled by per-platform strategies sharing one contract:
//   - Windows: a multi-resolution .ico container, falling back to a single
//     PNG when no ICO encoder is available.
//   - macOS: a high-resolution PNG always, plus an .icns container compiled
//     with the system iconutil tool when present.
//   - Everything else: a single PNG.
package icon
