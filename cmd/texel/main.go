// Command texel is a batch front end for the texel library: it generates
// noise textures, applies filters and transforms to image files, and packs
// texture atlases from a TOML manifest.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"

	"github.com/gogpu/texel"
)

type cli struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Noise  noiseCmd  `cmd:"" help:"Generate a Perlin-noise texture."`
	Gray   grayCmd   `cmd:"" help:"Convert an image to grayscale."`
	Blur   blurCmd   `cmd:"" help:"Apply a Gaussian blur to an image."`
	Resize resizeCmd `cmd:"" help:"Resize an image."`
	Rotate rotateCmd `cmd:"" help:"Rotate an image around its center."`
	Flip   flipCmd   `cmd:"" help:"Mirror an image."`
	Pack   packCmd   `cmd:"" help:"Pack textures into an atlas from a TOML manifest."`
}

type noiseCmd struct {
	Out     string  `arg:"" help:"Output image file (.png, .bmp, .tif, .jpg)."`
	Width   int     `help:"Texture width." default:"256"`
	Height  int     `help:"Texture height." default:"256"`
	Scale   float64 `help:"Noise scale (lattice cells across the texture)." default:"8"`
	Octaves int     `help:"Number of octaves." default:"4"`
	Seed    uint64  `help:"Random seed; 0 seeds from entropy." default:"0"`
}

func (c *noiseCmd) Run() error {
	gen := texel.NewNoiseGenerator()
	if c.Seed != 0 {
		gen = texel.NewNoiseGeneratorSeed(c.Seed)
	}

	buf, err := gen.GeneratePerlinNoise(c.Width, c.Height, c.Scale, c.Octaves)
	if err != nil {
		return fmt.Errorf("generate noise: %w", err)
	}

	slog.Info("noise generated", "width", c.Width, "height", c.Height, "octaves", c.Octaves)
	return buf.Save(c.Out)
}

type grayCmd struct {
	In  string `arg:"" help:"Input image file."`
	Out string `arg:"" help:"Output image file."`
}

func (c *grayCmd) Run() error {
	buf, err := texel.Load(c.In)
	if err != nil {
		return err
	}
	buf.Grayscale()
	return buf.Save(c.Out)
}

type blurCmd struct {
	In    string  `arg:"" help:"Input image file."`
	Out   string  `arg:"" help:"Output image file."`
	Sigma float64 `help:"Gaussian standard deviation." default:"2"`
}

func (c *blurCmd) Validate(kctx *kong.Context) error {
	if c.Sigma <= 0 {
		return fmt.Errorf("invalid sigma %v: must be positive", c.Sigma)
	}
	return nil
}

func (c *blurCmd) Run() error {
	buf, err := texel.Load(c.In)
	if err != nil {
		return err
	}
	if err := buf.GaussianBlur(c.Sigma); err != nil {
		return err
	}
	return buf.Save(c.Out)
}

type resizeCmd struct {
	In     string `arg:"" help:"Input image file."`
	Out    string `arg:"" help:"Output image file."`
	Width  int    `help:"Target width." required:""`
	Height int    `help:"Target height." required:""`
	Filter string `help:"Resampling filter." enum:"nearest,bilinear,catmullrom" default:"nearest"`
}

func (c *resizeCmd) Run() error {
	buf, err := texel.Load(c.In)
	if err != nil {
		return err
	}

	switch c.Filter {
	case "nearest":
		err = buf.Resize(c.Width, c.Height)
	case "bilinear":
		err = buf.ResizeInterp(c.Width, c.Height, draw.ApproxBiLinear)
	case "catmullrom":
		err = buf.ResizeInterp(c.Width, c.Height, draw.CatmullRom)
	}
	if err != nil {
		return err
	}
	return buf.Save(c.Out)
}

type rotateCmd struct {
	In    string  `arg:"" help:"Input image file."`
	Out   string  `arg:"" help:"Output image file."`
	Angle float64 `help:"Rotation angle in degrees." required:""`
}

func (c *rotateCmd) Run() error {
	buf, err := texel.Load(c.In)
	if err != nil {
		return err
	}
	buf.Rotate(c.Angle)
	return buf.Save(c.Out)
}

type flipCmd struct {
	In       string `arg:"" help:"Input image file."`
	Out      string `arg:"" help:"Output image file."`
	Vertical bool   `help:"Mirror top-to-bottom instead of left-to-right."`
}

func (c *flipCmd) Run() error {
	buf, err := texel.Load(c.In)
	if err != nil {
		return err
	}
	if c.Vertical {
		buf.FlipVertically()
	} else {
		buf.FlipHorizontally()
	}
	return buf.Save(c.Out)
}

func main() {
	c := cli{}
	kctx := kong.Parse(&c,
		kong.Name("texel"),
		kong.Description("Raster image processing and texture packing."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	texel.SetLogger(logger)

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

// absPath resolves p relative to base unless p is already absolute.
func absPath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
