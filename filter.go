package texel

import (
	"errors"
	"math"
	"sync"

	"github.com/gogpu/texel/internal/parallel"
)

// ErrInvalidSigma is returned when a blur sigma is zero or negative.
var ErrInvalidSigma = errors.New("texel: blur sigma must be positive")

// Grayscale converts the buffer to grayscale in place using the standard
// 0.299 R + 0.587 G + 0.114 B luminance weighting. Alpha is untouched.
// Grayscale buffers are unchanged.
func (b *Buffer) Grayscale() {
	if b.format.IsGrayscale() {
		return
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.GetPixel(x, y)
			l := c.Luminance()
			b.SetPixel(x, y, Color{R: l, G: l, B: l, A: c.A})
		}
	}
}

// GaussianBlur applies a separable Gaussian blur with the given standard
// deviation, in place. The kernel has ceil(sigma*6) taps normalized to sum
// 1. The horizontal pass writes into a temporary float buffer and the
// vertical pass writes back into the buffer. At the borders the accumulated
// sum is divided by the sum of the in-bounds weights actually used, so a
// flat image stays exactly flat instead of darkening at the edges.
//
// Returns ErrInvalidSigma for sigma <= 0; the buffer is not modified.
func (b *Buffer) GaussianBlur(sigma float64) error {
	if sigma <= 0 {
		return ErrInvalidSigma
	}
	if b.IsEmpty() {
		return nil
	}

	kernel := cachedGaussianKernel(sigma)
	size := len(kernel)
	half := size / 2
	Logger().Debug("gaussian blur", "sigma", sigma, "kernel_size", size)

	width, height := b.width, b.height

	// Temporary RGBA float buffer for the intermediate horizontal pass.
	temp := make([]float64, width*height*4)

	parallel.ForRows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				var r, g, bl, a, weightSum float64
				for k := 0; k < size; k++ {
					srcX := x + k - half
					if srcX < 0 || srcX >= width {
						continue
					}
					c := b.GetPixel(srcX, y)
					w := kernel[k]
					r += c.R * w
					g += c.G * w
					bl += c.B * w
					a += c.A * w
					weightSum += w
				}
				i := (y*width + x) * 4
				temp[i+0] = r / weightSum
				temp[i+1] = g / weightSum
				temp[i+2] = bl / weightSum
				temp[i+3] = a / weightSum
			}
		}
	})

	parallel.ForRows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				var r, g, bl, a, weightSum float64
				for k := 0; k < size; k++ {
					srcY := y + k - half
					if srcY < 0 || srcY >= height {
						continue
					}
					i := (srcY*width + x) * 4
					w := kernel[k]
					r += temp[i+0] * w
					g += temp[i+1] * w
					bl += temp[i+2] * w
					a += temp[i+3] * w
					weightSum += w
				}
				b.SetPixel(x, y, Color{
					R: r / weightSum,
					G: g / weightSum,
					B: bl / weightSum,
					A: a / weightSum,
				})
			}
		}
	})

	return nil
}

// gaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel has ceil(sigma*6) taps centered at (size-1)/2 and is
// normalized so all values sum to 1.
func gaussianKernel(sigma float64) []float64 {
	size := int(math.Ceil(sigma * 6))
	if size < 1 {
		size = 1
	}

	kernel := make([]float64, size)
	center := float64(size-1) / 2
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0

	for i := range kernel {
		x := float64(i) - center
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// kernelCache caches computed Gaussian kernels keyed by sigma quantized to
// 0.01 precision.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float64
	maxLen  int
}

var defaultKernelCache = &kernelCache{
	kernels: make(map[int][]float64),
	maxLen:  64,
}

func (c *kernelCache) get(sigma float64) []float64 {
	key := int(sigma * 100)

	c.mu.RLock()
	kernel, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = gaussianKernel(sigma)

	c.mu.Lock()
	if len(c.kernels) >= c.maxLen {
		clear(c.kernels)
	}
	c.kernels[key] = kernel
	c.mu.Unlock()

	return kernel
}

// cachedGaussianKernel returns a cached Gaussian kernel for the sigma.
func cachedGaussianKernel(sigma float64) []float64 {
	return defaultKernelCache.get(sigma)
}
