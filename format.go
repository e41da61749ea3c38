package texel

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatRGB is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB Format = iota

	// FormatRGBA is 32-bit RGBA (4 bytes per pixel).
	// This is the standard format for most operations.
	FormatRGBA

	// FormatBGR is 24-bit BGR (3 bytes per pixel, no alpha).
	FormatBGR

	// FormatBGRA is 32-bit BGRA (4 bytes per pixel).
	// Common on Windows and some GPU upload paths.
	FormatBGRA

	// FormatGray is 8-bit grayscale (1 byte per pixel).
	FormatGray

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatRGB: {
		BytesPerPixel: 3,
		Channels:      3,
		HasAlpha:      false,
		IsGrayscale:   false,
	},
	FormatRGBA: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		IsGrayscale:   false,
	},
	FormatBGR: {
		BytesPerPixel: 3,
		Channels:      3,
		HasAlpha:      false,
		IsGrayscale:   false,
	},
	FormatBGRA: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		IsGrayscale:   false,
	},
	FormatGray: {
		BytesPerPixel: 1,
		Channels:      1,
		HasAlpha:      false,
		IsGrayscale:   true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatBGR:
		return "BGR"
	case FormatBGRA:
		return "BGRA"
	case FormatGray:
		return "Gray"
	default:
		return "Unknown"
	}
}

// ParseFormat parses a format name as produced by String.
// Parsing is case-insensitive. Returns ErrInvalidFormat for unknown names.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "RGB", "rgb":
		return FormatRGB, nil
	case "RGBA", "rgba":
		return FormatRGBA, nil
	case "BGR", "bgr":
		return FormatBGR, nil
	case "BGRA", "bgra":
		return FormatBGRA, nil
	case "Gray", "gray", "grayscale":
		return FormatGray, nil
	default:
		return 0, ErrInvalidFormat
	}
}
