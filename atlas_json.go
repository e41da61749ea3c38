package texel

import (
	"encoding/json"
	"fmt"
	"io"
)

// Region maps are exchanged in the TexturePacker JSON hash format so
// external renderers and sprite pipelines can consume the atlas without
// knowing about this package:
//
//	{"frames": {"name": {"frame": {"x":0,"y":0,"w":16,"h":16}, ...}},
//	 "meta": {"size": {"w":256,"h":256}, "format": "RGBA"}}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonMeta struct {
	Size   jsonSize `json:"size"`
	Format string   `json:"format"`
}

type jsonAtlas struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   jsonMeta             `json:"meta"`
}

// EncodeRegions writes the atlas's name -> region map to w in the
// TexturePacker hash format. Regions are never rotated or trimmed by this
// packer, so those fields are always false and the source size equals the
// frame size.
func (a *Atlas) EncodeRegions(w io.Writer) error {
	out := jsonAtlas{
		Frames: make(map[string]jsonFrame, len(a.regions)),
		Meta: jsonMeta{
			Size:   jsonSize{W: a.canvas.Width(), H: a.canvas.Height()},
			Format: a.canvas.Format().String(),
		},
	}
	for _, r := range a.regions {
		out.Frames[r.Name] = jsonFrame{
			Frame:            jsonRect{X: r.X, Y: r.Y, W: r.Width, H: r.Height},
			SpriteSourceSize: jsonRect{W: r.Width, H: r.Height},
			SourceSize:       jsonSize{W: r.Width, H: r.Height},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("texel: encode atlas regions: %w", err)
	}
	return nil
}

// DecodeRegions parses a TexturePacker hash-format document produced by
// EncodeRegions (or by TexturePacker itself) into a name -> Region map.
func DecodeRegions(r io.Reader) (map[string]Region, error) {
	var in jsonAtlas
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("texel: decode atlas regions: %w", err)
	}
	if in.Frames == nil {
		return nil, fmt.Errorf("texel: atlas JSON has no \"frames\" key")
	}

	regions := make(map[string]Region, len(in.Frames))
	for name, f := range in.Frames {
		regions[name] = Region{
			Name:   name,
			X:      f.Frame.X,
			Y:      f.Frame.Y,
			Width:  f.Frame.W,
			Height: f.Frame.H,
		}
	}
	return regions, nil
}
