package texel

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/gogpu/texel/internal/parallel"
)

// ErrInvalidOctaves is returned when a noise octave count is below 1.
var ErrInvalidOctaves = errors.New("texel: octaves must be at least 1")

// gradientCount is the size of the shared gradient table. Lattice corners
// index it modulo 256, so it must stay a power of two.
const gradientCount = 256

// NoiseGenerator produces procedural noise textures. Each generator owns
// its random source explicitly; use NewNoiseGeneratorSeed for reproducible
// output.
type NoiseGenerator struct {
	rng *rand.Rand
}

// NewNoiseGenerator creates a generator seeded from the process entropy
// source.
func NewNoiseGenerator() *NoiseGenerator {
	return &NoiseGenerator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewNoiseGeneratorSeed creates a generator with a fixed seed, producing
// identical output for identical parameters.
func NewNoiseGeneratorSeed(seed uint64) *NoiseGenerator {
	return &NoiseGenerator{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// fade is the quintic Perlin fade curve t^3 (t (6t - 15) + 10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// GeneratePerlinNoise renders octave-summed Perlin noise into a new
// grayscale buffer. Frequency doubles and amplitude halves per octave. The
// accumulated field is remapped linearly so the darkest pixel is 0 and the
// brightest 255; a completely flat field maps to 0 everywhere.
func (n *NoiseGenerator) GeneratePerlinNoise(width, height int, scale float64, octaves int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if octaves < 1 {
		return nil, ErrInvalidOctaves
	}

	result, err := New(width, height, FormatGray)
	if err != nil {
		return nil, err
	}
	if result.IsEmpty() {
		return result, nil
	}

	// Shared table of unit-length gradient vectors from random angles.
	gradients := make([]Point, gradientCount)
	for i := range gradients {
		angle := n.rng.Float64() * 2 * math.Pi
		gradients[i] = Pt(math.Cos(angle), math.Sin(angle))
	}

	accum := make([]float64, width*height)

	for octave := 0; octave < octaves; octave++ {
		frequency := math.Pow(2, float64(octave))
		amplitude := math.Pow(0.5, float64(octave))

		parallel.ForRows(height, func(rowStart, rowEnd int) {
			for y := rowStart; y < rowEnd; y++ {
				fy := float64(y) * scale * frequency / float64(height)
				for x := 0; x < width; x++ {
					fx := float64(x) * scale * frequency / float64(width)

					x0 := int(math.Floor(fx))
					y0 := int(math.Floor(fy))
					x1 := x0 + 1
					y1 := y0 + 1

					tx := fade(fx - float64(x0))
					ty := fade(fy - float64(y0))

					g00 := gradients[(x0+y0)&(gradientCount-1)]
					g10 := gradients[(x1+y0)&(gradientCount-1)]
					g01 := gradients[(x0+y1)&(gradientCount-1)]
					g11 := gradients[(x1+y1)&(gradientCount-1)]

					n00 := g00.X*(fx-float64(x0)) + g00.Y*(fy-float64(y0))
					n10 := g10.X*(fx-float64(x1)) + g10.Y*(fy-float64(y0))
					n01 := g01.X*(fx-float64(x0)) + g01.Y*(fy-float64(y1))
					n11 := g11.X*(fx-float64(x1)) + g11.Y*(fy-float64(y1))

					nx0 := lerp(tx, n00, n10)
					nx1 := lerp(tx, n01, n11)
					value := lerp(ty, nx0, nx1)

					accum[y*width+x] += value * amplitude
				}
			}
		})
	}

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range accum {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}

	// A flat field has nothing to normalize; leave the buffer zeroed.
	if maxVal == minVal {
		return result, nil
	}

	data := result.Data()
	valueRange := maxVal - minVal
	for i, v := range accum {
		// Dividing (not multiplying by a reciprocal) keeps max/range at
		// exactly 1.0, so the brightest pixel lands on 255.
		data[i] = uint8((v - minVal) / valueRange * 255)
	}
	return result, nil
}
