package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"

	"github.com/gogpu/texel"
)

// packManifest is the TOML description of an atlas build:
//
//	width = 512
//	height = 512
//	format = "RGBA"
//	out = "atlas.png"
//	regions = "atlas.json"
//	optimize = true
//
//	[[texture]]
//	name = "grass"
//	path = "textures/grass.png"
type packManifest struct {
	Width    int           `toml:"width"`
	Height   int           `toml:"height"`
	Format   string        `toml:"format"`
	Out      string        `toml:"out"`
	Regions  string        `toml:"regions"`
	Optimize bool          `toml:"optimize"`
	Texture  []packTexture `toml:"texture"`
}

type packTexture struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type packCmd struct {
	Manifest string `arg:"" help:"TOML manifest describing the atlas."`

	manifest packManifest
	baseDir  string
}

func (c *packCmd) Validate(kctx *kong.Context) error {
	path, err := filepath.Abs(c.Manifest)
	if err != nil {
		return fmt.Errorf("invalid manifest path %q: %w", c.Manifest, err)
	}
	c.Manifest = path
	c.baseDir = filepath.Dir(path)

	if _, err := toml.DecodeFile(path, &c.manifest); err != nil {
		return fmt.Errorf("invalid manifest %q: %w", path, err)
	}

	m := &c.manifest
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid atlas size %dx%d", m.Width, m.Height)
	}
	if m.Format == "" {
		m.Format = "RGBA"
	}
	if _, err := texel.ParseFormat(m.Format); err != nil {
		return fmt.Errorf("invalid atlas format %q", m.Format)
	}
	if m.Out == "" {
		return fmt.Errorf("manifest has no output image path")
	}
	if len(m.Texture) == 0 {
		return fmt.Errorf("manifest has no textures")
	}
	for i, t := range m.Texture {
		if t.Name == "" {
			return fmt.Errorf("texture %d has no name", i)
		}
		if t.Path == "" {
			return fmt.Errorf("texture %q has no path", t.Name)
		}
	}
	return nil
}

func (c *packCmd) Run() error {
	m := &c.manifest
	format, err := texel.ParseFormat(m.Format)
	if err != nil {
		return err
	}

	atlas, err := texel.NewAtlas(m.Width, m.Height, format)
	if err != nil {
		return err
	}

	for _, t := range m.Texture {
		img, err := texel.Load(absPath(c.baseDir, t.Path))
		if err != nil {
			return fmt.Errorf("load texture %q: %w", t.Name, err)
		}
		if err := atlas.AddTexture(t.Name, img); err != nil {
			return fmt.Errorf("pack texture %q: %w", t.Name, err)
		}
		slog.Debug("packed", "name", t.Name, "width", img.Width(), "height", img.Height())
	}

	if m.Optimize {
		if err := atlas.Optimize(); err != nil {
			return fmt.Errorf("optimize atlas: %w", err)
		}
	}

	if err := atlas.Canvas().Save(absPath(c.baseDir, m.Out)); err != nil {
		return err
	}

	if m.Regions != "" {
		f, err := os.Create(absPath(c.baseDir, m.Regions))
		if err != nil {
			return fmt.Errorf("create regions file: %w", err)
		}
		if err := atlas.EncodeRegions(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close regions file: %w", err)
		}
	}

	slog.Info("atlas packed", "textures", atlas.Len(), "out", m.Out)
	return nil
}
