// Package texel provides a pure Go raster image-processing and
// texture-packing core.
//
// # Overview
//
// texel centers on [Buffer], a format-aware pixel buffer with contiguous
// byte storage. Buffers are mutated in place by geometric transforms
// (resize, rotate, flips), convolution filters (grayscale, Gaussian blur),
// and scanline rasterization primitives (thick lines, filled triangles).
// Named buffers can be packed into a shared [Atlas] whose regions external
// renderers look up by name.
//
// # Quick Start
//
//	import "github.com/gogpu/texel"
//
//	buf, _ := texel.New(256, 256, texel.FormatRGBA)
//	buf.Fill(texel.White)
//	buf.FillTriangle(texel.Pt(10, 10), texel.Pt(10, 200), texel.Pt(200, 10), texel.Red)
//	_ = buf.GaussianBlur(2.0)
//	_ = buf.SavePNG("out.png")
//
// # Coordinate System
//
// Standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees
//
// # Error Model
//
// Out-of-range pixel access is silent: writes are ignored and reads return
// opaque white. Recoverable failures (duplicate atlas names, atlas overflow,
// degenerate filter parameters) are reported as sentinel errors; the target
// is never left partially mutated on failure.
//
// # Concurrency
//
// All operations are synchronous and assume exclusive ownership of the
// Buffer or Atlas. Filters may fan work out to internal worker goroutines,
// joined before returning; callers never observe intermediate state.
// Concurrent callers must add their own synchronization.
package texel

// Version is the current version of the library.
const Version = "0.2.0"
