package texel

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize resamples the buffer to the new dimensions with nearest-neighbor
// sampling and installs the result in place. Each destination pixel samples
// the source at floor(dst * srcDim/dstDim). The old storage is discarded
// only after the new storage is fully populated. A same-size resize is a
// no-op.
func (b *Buffer) Resize(newWidth, newHeight int) error {
	if newWidth < 0 || newHeight < 0 {
		return ErrInvalidDimensions
	}
	if newWidth == b.width && newHeight == b.height {
		return nil
	}

	dst, err := New(newWidth, newHeight, b.format)
	if err != nil {
		return err
	}

	if !dst.IsEmpty() && !b.IsEmpty() {
		scaleX := float64(b.width) / float64(newWidth)
		scaleY := float64(b.height) / float64(newHeight)
		for y := 0; y < newHeight; y++ {
			srcY := int(float64(y) * scaleY)
			for x := 0; x < newWidth; x++ {
				srcX := int(float64(x) * scaleX)
				dst.SetPixel(x, y, b.GetPixel(srcX, srcY))
			}
		}
	}

	*b = *dst
	return nil
}

// ResizeInterp resamples the buffer to the new dimensions with the given
// x/image/draw scaler (for example draw.ApproxBiLinear or draw.CatmullRom)
// and installs the result in place, preserving the buffer's format.
// A nil scaler falls back to draw.NearestNeighbor.
func (b *Buffer) ResizeInterp(newWidth, newHeight int, scaler draw.Scaler) error {
	if newWidth < 0 || newHeight < 0 {
		return ErrInvalidDimensions
	}
	if newWidth == b.width && newHeight == b.height {
		return nil
	}
	if scaler == nil {
		scaler = draw.NearestNeighbor
	}

	dst, err := New(newWidth, newHeight, b.format)
	if err != nil {
		return err
	}

	if !dst.IsEmpty() && !b.IsEmpty() {
		src := b.ToImage()
		scaled := image.NewNRGBA(image.Rect(0, 0, newWidth, newHeight))
		scaler.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
		for y := 0; y < newHeight; y++ {
			for x := 0; x < newWidth; x++ {
				dst.SetPixel(x, y, FromColor(scaled.NRGBAAt(x, y)))
			}
		}
	}

	*b = *dst
	return nil
}

// Rotate rotates the buffer contents by the given angle in degrees around
// the buffer center, in place. The destination keeps the same dimensions
// and format; each destination pixel samples the source at its
// forward-rotated center offset. With y-down screen coordinates the visual
// effect is a clockwise rotation of the content by angle degrees.
//
// Destination pixels whose source coordinate falls outside the buffer stay
// at the zero-initialized value, so corners exposed by the rotation are
// black/transparent rather than copies of the original background.
func (b *Buffer) Rotate(angleDegrees float64) {
	radians := angleDegrees * math.Pi / 180
	cos := math.Cos(radians)
	sin := math.Sin(radians)

	dst, _ := New(b.width, b.height, b.format)

	centerX := float64(b.width) / 2
	centerY := float64(b.height) / 2

	for y := 0; y < b.height; y++ {
		dy := float64(y) - centerY
		for x := 0; x < b.width; x++ {
			dx := float64(x) - centerX

			srcX := int(centerX + dx*cos - dy*sin)
			srcY := int(centerY + dx*sin + dy*cos)

			if srcX >= 0 && srcX < b.width && srcY >= 0 && srcY < b.height {
				dst.SetPixel(x, y, b.GetPixel(srcX, srcY))
			}
		}
	}

	*b = *dst
}
