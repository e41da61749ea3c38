package texel

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image file format is not
	// supported.
	ErrUnsupportedFormat = errors.New("texel: unsupported image format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("texel: empty image data")
)

// Load reads an image file into an RGBA buffer, auto-detecting the codec.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported for decode.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texel: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image from a byte slice, auto-detecting the codec.
func LoadBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r into an RGBA buffer, auto-detecting the
// codec from the registered formats.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texel: decode: %w", err)
	}
	return FromImage(img), nil
}

// EncodePNG writes the buffer to w as PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("texel: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	return b.saveWith(path, b.EncodePNG)
}

// SaveBMP saves the buffer to a BMP file.
func (b *Buffer) SaveBMP(path string) error {
	return b.saveWith(path, func(w io.Writer) error {
		if err := bmp.Encode(w, b.ToImage()); err != nil {
			return fmt.Errorf("texel: encode bmp: %w", err)
		}
		return nil
	})
}

// Save saves the buffer to a file, choosing the codec from the extension:
// .png, .bmp, .tif/.tiff or .jpg/.jpeg. Unknown extensions are rejected
// with ErrUnsupportedFormat.
func (b *Buffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return b.SavePNG(path)
	case ".bmp":
		return b.SaveBMP(path)
	case ".tif", ".tiff":
		return b.saveWith(path, func(w io.Writer) error {
			if err := tiff.Encode(w, b.ToImage(), nil); err != nil {
				return fmt.Errorf("texel: encode tiff: %w", err)
			}
			return nil
		})
	case ".jpg", ".jpeg":
		return b.saveWith(path, func(w io.Writer) error {
			if err := jpeg.Encode(w, b.ToImage(), nil); err != nil {
				return fmt.Errorf("texel: encode jpeg: %w", err)
			}
			return nil
		})
	default:
		return ErrUnsupportedFormat
	}
}

// saveWith creates path and streams the buffer through encode.
func (b *Buffer) saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("texel: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("texel: close file: %w", err)
	}
	return nil
}
