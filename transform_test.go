package texel

import (
	"testing"

	"golang.org/x/image/draw"
)

// TestResizeUpscale verifies nearest-neighbor sampling: doubling each
// dimension turns every source pixel into a 2x2 block.
func TestResizeUpscale(t *testing.T) {
	b, _ := New(2, 2, FormatRGBA)
	b.SetPixel(0, 0, Red)
	b.SetPixel(1, 0, Green)
	b.SetPixel(0, 1, Blue)
	b.SetPixel(1, 1, White)

	if err := b.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if b.Width() != 4 || b.Height() != 4 {
		t.Fatalf("Resize: got %dx%d, want 4x4", b.Width(), b.Height())
	}

	blocks := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red}, {1, 1, Red},
		{2, 0, Green}, {3, 1, Green},
		{0, 2, Blue}, {1, 3, Blue},
		{2, 2, White}, {3, 3, White},
	}
	for _, bl := range blocks {
		if got := b.GetPixel(bl.x, bl.y); got != bl.want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v", bl.x, bl.y, got, bl.want)
		}
	}
}

// TestResizeDownscale verifies the srcDim/dstDim scale factor: halving a
// 4x4 buffer samples source pixels 0 and 2 on each axis.
func TestResizeDownscale(t *testing.T) {
	b, _ := New(4, 4, FormatRGB)
	b.SetPixel(0, 0, Red)
	b.SetPixel(2, 2, Green)

	if err := b.Resize(2, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := b.GetPixel(0, 0); got != Red {
		t.Errorf("pixel (0,0) = %+v, want red", got)
	}
	if got := b.GetPixel(1, 1); got != Green {
		t.Errorf("pixel (1,1) = %+v, want green", got)
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	b, _ := New(3, 3, FormatRGBA)
	b.Fill(Cyan)
	data := b.Data()

	if err := b.Resize(3, 3); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	// Same-size resize keeps the existing storage.
	if &data[0] != &b.Data()[0] {
		t.Error("same-size Resize reallocated storage")
	}
}

func TestResizeInvalid(t *testing.T) {
	b, _ := New(3, 3, FormatRGBA)
	if err := b.Resize(-1, 3); err != ErrInvalidDimensions {
		t.Errorf("Resize(-1, 3): err = %v, want ErrInvalidDimensions", err)
	}
}

func TestResizeInterp(t *testing.T) {
	b, _ := New(8, 8, FormatBGR)
	b.Fill(Color{R: 0.25, G: 0.5, B: 0.75, A: 1})

	if err := b.ResizeInterp(4, 6, draw.CatmullRom); err != nil {
		t.Fatalf("ResizeInterp: %v", err)
	}
	if b.Width() != 4 || b.Height() != 6 || b.Format() != FormatBGR {
		t.Fatalf("ResizeInterp: got %dx%d %v", b.Width(), b.Height(), b.Format())
	}
	// A flat image stays flat under any interpolating scaler.
	want := b.GetPixel(0, 0)
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			if got := b.GetPixel(x, y); !colorsApproxEqual(got, want, 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// TestRotate90MarkedPixel pins the rotation convention: on a 4x4 buffer
// rotated by 90 degrees, the destination pixel (2,3) samples the source
// pixel (1,2). With y-down coordinates this is a clockwise rotation of the
// image content.
func TestRotate90MarkedPixel(t *testing.T) {
	b, _ := New(4, 4, FormatRGBA)
	b.SetPixel(1, 2, Red)

	b.Rotate(90)

	if got := b.GetPixel(2, 3); got != Red {
		t.Errorf("pixel (2,3) after 90 degree rotation = %+v, want red", got)
	}

	// The mark must land on exactly one destination pixel.
	count := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.GetPixel(x, y) == Red {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("red pixel count after rotation = %d, want 1", count)
	}
}

// TestRotateExposedCornersAreZero verifies that destination pixels whose
// source falls outside the buffer keep the zero-initialized value rather
// than the original background.
func TestRotateExposedCornersAreZero(t *testing.T) {
	b, _ := New(9, 9, FormatRGBA)
	b.Fill(White)

	b.Rotate(45)

	// Under a 45 degree rotation the source of the corner pixel lies well
	// outside the 9x9 buffer.
	if got := b.GetPixel(0, 0); got != Transparent {
		t.Errorf("corner pixel after rotation = %+v, want zero (transparent)", got)
	}
	// The center still samples inside the buffer.
	if got := b.GetPixel(4, 4); got != White {
		t.Errorf("center pixel after rotation = %+v, want white", got)
	}
}

func TestRotate0IsIdentityAwayFromEdges(t *testing.T) {
	b, _ := New(6, 6, FormatRGB)
	b.SetPixel(2, 3, Magenta)

	b.Rotate(0)

	if got := b.GetPixel(2, 3); got != Magenta {
		t.Errorf("pixel (2,3) after 0 degree rotation = %+v, want magenta", got)
	}
}
