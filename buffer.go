package texel

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("texel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("texel: invalid format")
)

// defaultColor is returned for out-of-range reads: fully opaque white.
var defaultColor = White

// Buffer is a rectangular pixel buffer with format-aware storage.
//
// Storage is a single contiguous byte slice of exactly
// width*height*BytesPerPixel(format) bytes, row-major, with the pixel at
// (x, y) starting at offset (y*width + x) * BytesPerPixel.
//
// A Buffer is exclusively owned by its creator. Operations that replace the
// storage (Create, Resize, Rotate) install fully-populated storage only, so
// a caller never observes a partial mix of old and new pixels.
type Buffer struct {
	width  int
	height int
	format Format
	data   []uint8
}

// New creates a zero-filled buffer with the given dimensions and format.
// Zero-sized buffers are legal; negative dimensions or an unknown format
// are rejected.
func New(width, height int, format Format) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buffer{
		width:  width,
		height: height,
		format: format,
		data:   make([]uint8, format.ImageBytes(width, height)),
	}, nil
}

// Create reallocates the buffer to the given dimensions and format,
// zero-filled. The old storage is discarded.
func (b *Buffer) Create(width, height int, format Format) error {
	nb, err := New(width, height, format)
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data. The layout is row-major in the buffer's
// channel order; external codecs and renderers consume this directly.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if the coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buffer) RowBytes(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.format.RowBytes(b.width)
	return b.data[y*stride : (y+1)*stride]
}

// SetPixel sets the color of a single pixel, converting into the buffer's
// channel order. Out-of-range coordinates are silently ignored.
// Grayscale buffers store the luminance of the color's RGB channels.
func (b *Buffer) SetPixel(x, y int, c Color) {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return
	}
	switch b.format {
	case FormatRGB:
		b.data[i+0] = byteOf(c.R)
		b.data[i+1] = byteOf(c.G)
		b.data[i+2] = byteOf(c.B)
	case FormatRGBA:
		b.data[i+0] = byteOf(c.R)
		b.data[i+1] = byteOf(c.G)
		b.data[i+2] = byteOf(c.B)
		b.data[i+3] = byteOf(c.A)
	case FormatBGR:
		b.data[i+0] = byteOf(c.B)
		b.data[i+1] = byteOf(c.G)
		b.data[i+2] = byteOf(c.R)
	case FormatBGRA:
		b.data[i+0] = byteOf(c.B)
		b.data[i+1] = byteOf(c.G)
		b.data[i+2] = byteOf(c.R)
		b.data[i+3] = byteOf(c.A)
	case FormatGray:
		b.data[i] = byteOf(c.Luminance())
	}
}

// GetPixel returns the color of a single pixel. Out-of-range coordinates
// return opaque white. Formats without alpha read back A=1. Grayscale
// buffers broadcast the stored channel to R=G=B; the luminance collapse has
// no inverse.
func (b *Buffer) GetPixel(x, y int) Color {
	i := b.PixelOffset(x, y)
	if i < 0 {
		return defaultColor
	}
	switch b.format {
	case FormatRGB:
		return Color{
			R: float64(b.data[i+0]) / 255,
			G: float64(b.data[i+1]) / 255,
			B: float64(b.data[i+2]) / 255,
			A: 1,
		}
	case FormatRGBA:
		return Color{
			R: float64(b.data[i+0]) / 255,
			G: float64(b.data[i+1]) / 255,
			B: float64(b.data[i+2]) / 255,
			A: float64(b.data[i+3]) / 255,
		}
	case FormatBGR:
		return Color{
			R: float64(b.data[i+2]) / 255,
			G: float64(b.data[i+1]) / 255,
			B: float64(b.data[i+0]) / 255,
			A: 1,
		}
	case FormatBGRA:
		return Color{
			R: float64(b.data[i+2]) / 255,
			G: float64(b.data[i+1]) / 255,
			B: float64(b.data[i+0]) / 255,
			A: float64(b.data[i+3]) / 255,
		}
	case FormatGray:
		v := float64(b.data[i]) / 255
		return Color{R: v, G: v, B: v, A: 1}
	default:
		return defaultColor
	}
}

// Clear sets all pixels to zero.
func (b *Buffer) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given color.
func (b *Buffer) Fill(c Color) {
	if b.IsEmpty() {
		return
	}
	// Pack one pixel, then replicate its bytes across the first row and the
	// first row across all rows.
	b.SetPixel(0, 0, c)
	bpp := b.format.BytesPerPixel()
	stride := b.format.RowBytes(b.width)
	for x := 1; x < b.width; x++ {
		copy(b.data[x*bpp:(x+1)*bpp], b.data[:bpp])
	}
	for y := 1; y < b.height; y++ {
		copy(b.data[y*stride:(y+1)*stride], b.data[:stride])
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{
		width:  b.width,
		height: b.height,
		format: b.format,
		data:   data,
	}
}

// FlipHorizontally mirrors every row in place. Extra memory is bounded to
// one scratch row.
func (b *Buffer) FlipHorizontally() {
	bpp := b.format.BytesPerPixel()
	stride := b.format.RowBytes(b.width)
	row := make([]uint8, stride)

	for y := 0; y < b.height; y++ {
		rowStart := b.data[y*stride : (y+1)*stride]
		copy(row, rowStart)
		for x := 0; x < b.width; x++ {
			flipped := b.width - 1 - x
			copy(rowStart[x*bpp:(x+1)*bpp], row[flipped*bpp:(flipped+1)*bpp])
		}
	}
}

// FlipVertically mirrors the rows of the buffer in place. Extra memory is
// bounded to one scratch row.
func (b *Buffer) FlipVertically() {
	stride := b.format.RowBytes(b.width)
	row := make([]uint8, stride)

	for y := 0; y < b.height/2; y++ {
		top := b.data[y*stride : (y+1)*stride]
		bottom := b.data[(b.height-1-y)*stride : (b.height-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// ToImage converts the buffer to an image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetNRGBA(x, y, b.GetPixel(x, y).Color().(color.NRGBA))
		}
	}
	return img
}

// FromImage creates an RGBA buffer from a standard image.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b, _ := New(bounds.Dx(), bounds.Dy(), FormatRGBA)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return b
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	if b.PixelOffset(x, y) < 0 {
		return color.NRGBA{}
	}
	return b.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
