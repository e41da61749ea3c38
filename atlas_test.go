package texel

import (
	"bytes"
	"errors"
	"testing"
)

func solidBuffer(t *testing.T, w, h int, c Color) *Buffer {
	t.Helper()
	b, err := New(w, h, FormatRGBA)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	b.Fill(c)
	return b
}

func regionsOverlap(a, b Region) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func checkAtlasInvariant(t *testing.T, a *Atlas) {
	t.Helper()
	regions := a.Regions()
	for i, r := range regions {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > a.Canvas().Width() || r.Y+r.Height > a.Canvas().Height() {
			t.Errorf("region %q out of canvas bounds: %+v", r.Name, r)
		}
		for _, s := range regions[i+1:] {
			if regionsOverlap(r, s) {
				t.Errorf("regions %q and %q overlap: %+v vs %+v", r.Name, s.Name, r, s)
			}
		}
	}
}

// TestAtlasAddTexture verifies shelf placement of two textures and that
// the pixels are copied 1:1 into the canvas.
func TestAtlasAddTexture(t *testing.T) {
	a, err := NewAtlas(64, 64, FormatRGBA)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}

	if err := a.AddTexture("red", solidBuffer(t, 20, 10, Red)); err != nil {
		t.Fatalf("AddTexture(red): %v", err)
	}
	if err := a.AddTexture("green", solidBuffer(t, 30, 10, Green)); err != nil {
		t.Fatalf("AddTexture(green): %v", err)
	}

	r, ok := a.Region("red")
	if !ok || r != (Region{Name: "red", X: 0, Y: 0, Width: 20, Height: 10}) {
		t.Errorf("region red = %+v, ok=%v", r, ok)
	}
	g, ok := a.Region("green")
	if !ok || g != (Region{Name: "green", X: 20, Y: 0, Width: 30, Height: 10}) {
		t.Errorf("region green = %+v, ok=%v", g, ok)
	}
	checkAtlasInvariant(t, a)

	// Canvas content at the region interiors.
	if got := a.Canvas().GetPixel(5, 5); got != Red {
		t.Errorf("canvas pixel in red region = %+v", got)
	}
	if got := a.Canvas().GetPixel(25, 5); got != Green {
		t.Errorf("canvas pixel in green region = %+v", got)
	}
	// Unpacked area stays zero.
	if got := a.Canvas().GetPixel(60, 60); got != Transparent {
		t.Errorf("unpacked canvas pixel = %+v, want transparent", got)
	}
}

// TestAtlasDuplicateName verifies re-adding a name fails without touching
// the atlas.
func TestAtlasDuplicateName(t *testing.T) {
	a, _ := NewAtlas(64, 64, FormatRGBA)
	if err := a.AddTexture("tex", solidBuffer(t, 10, 10, Red)); err != nil {
		t.Fatalf("AddTexture: %v", err)
	}
	before := a.Canvas().Clone()
	regionsBefore := a.Regions()

	err := a.AddTexture("tex", solidBuffer(t, 10, 10, Green))
	if !errors.Is(err, ErrDuplicateRegion) {
		t.Fatalf("duplicate AddTexture: err = %v, want ErrDuplicateRegion", err)
	}

	if a.Len() != 1 {
		t.Errorf("region count = %d, want 1", a.Len())
	}
	if got := a.Regions(); got[0] != regionsBefore[0] {
		t.Errorf("existing region mutated: %+v", got[0])
	}
	if !bytes.Equal(before.Data(), a.Canvas().Data()) {
		t.Error("failed insert modified the canvas")
	}
}

// TestAtlasRowWrap verifies the shelf heuristic starts a new row when the
// current one fills up, including after a previous insert already wrapped.
func TestAtlasRowWrap(t *testing.T) {
	a, _ := NewAtlas(100, 100, FormatRGBA)

	if err := a.AddTexture("a", solidBuffer(t, 60, 10, Red)); err != nil {
		t.Fatalf("AddTexture(a): %v", err)
	}
	// 60+50 > 100: wraps to the second row.
	if err := a.AddTexture("b", solidBuffer(t, 50, 10, Green)); err != nil {
		t.Fatalf("AddTexture(b): %v", err)
	}
	// Narrow texture after a wrap: the replay must follow b onto row two
	// rather than placing c out of bounds next to it on row one.
	if err := a.AddTexture("c", solidBuffer(t, 30, 10, Blue)); err != nil {
		t.Fatalf("AddTexture(c): %v", err)
	}

	b, _ := a.Region("b")
	if b.X != 0 || b.Y != 10 {
		t.Errorf("region b = %+v, want placement (0,10)", b)
	}
	c, _ := a.Region("c")
	if c.X != 50 || c.Y != 10 {
		t.Errorf("region c = %+v, want placement (50,10)", c)
	}
	checkAtlasInvariant(t, a)
}

// TestAtlasFull verifies vertical overflow fails without mutation.
func TestAtlasFull(t *testing.T) {
	a, _ := NewAtlas(32, 32, FormatRGBA)
	if err := a.AddTexture("base", solidBuffer(t, 32, 20, Red)); err != nil {
		t.Fatalf("AddTexture(base): %v", err)
	}
	before := a.Canvas().Clone()

	err := a.AddTexture("tall", solidBuffer(t, 10, 20, Green))
	if !errors.Is(err, ErrAtlasFull) {
		t.Fatalf("overflow AddTexture: err = %v, want ErrAtlasFull", err)
	}
	if a.Len() != 1 {
		t.Errorf("region count = %d, want 1", a.Len())
	}
	if !bytes.Equal(before.Data(), a.Canvas().Data()) {
		t.Error("failed insert modified the canvas")
	}

	// Wider than the whole atlas can never fit.
	if err := a.AddTexture("wide", solidBuffer(t, 40, 1, Green)); !errors.Is(err, ErrAtlasFull) {
		t.Errorf("too-wide AddTexture: err = %v, want ErrAtlasFull", err)
	}
}

// TestAtlasOptimize verifies repacking preserves names and sizes, keeps
// regions disjoint, and carries pixel content to the new positions.
func TestAtlasOptimize(t *testing.T) {
	a, _ := NewAtlas(64, 64, FormatRGBA)
	textures := []struct {
		name  string
		w, h  int
		color Color
	}{
		{"short", 20, 5, Red},
		{"tall", 10, 30, Green},
		{"mid", 25, 12, Blue},
		{"tiny", 4, 4, Yellow},
	}
	for _, tex := range textures {
		if err := a.AddTexture(tex.name, solidBuffer(t, tex.w, tex.h, tex.color)); err != nil {
			t.Fatalf("AddTexture(%s): %v", tex.name, err)
		}
	}

	if err := a.Optimize(); err != nil {
		t.Fatalf("Optimize: %v", err)
	}

	if a.Len() != len(textures) {
		t.Fatalf("region count after optimize = %d, want %d", a.Len(), len(textures))
	}
	for _, tex := range textures {
		r, ok := a.Region(tex.name)
		if !ok {
			t.Fatalf("region %q lost by optimize", tex.name)
		}
		if r.Width != tex.w || r.Height != tex.h {
			t.Errorf("region %q resized: %+v", tex.name, r)
		}
		// Content moved with the region.
		if got := a.Canvas().GetPixel(r.X+r.Width/2, r.Y+r.Height/2); got != tex.color {
			t.Errorf("region %q center pixel = %+v, want %+v", tex.name, got, tex.color)
		}
	}
	checkAtlasInvariant(t, a)

	// Descending-height shelves: the tallest region leads the first row.
	first := a.Regions()[0]
	if first.Name != "tall" || first.X != 0 || first.Y != 0 {
		t.Errorf("first repacked region = %+v, want tall at origin", first)
	}
}

// TestAtlasClear verifies the Populated -> Empty transition.
func TestAtlasClear(t *testing.T) {
	a, _ := NewAtlas(32, 32, FormatRGBA)
	if err := a.AddTexture("tex", solidBuffer(t, 8, 8, Red)); err != nil {
		t.Fatalf("AddTexture: %v", err)
	}

	a.Clear()

	if a.Len() != 0 {
		t.Errorf("region count after clear = %d, want 0", a.Len())
	}
	if _, ok := a.Region("tex"); ok {
		t.Error("region survived Clear")
	}
	for _, v := range a.Canvas().Data() {
		if v != 0 {
			t.Fatal("canvas not blanked by Clear")
		}
	}
	if a.Canvas().Width() != 32 || a.Canvas().Height() != 32 {
		t.Error("Clear changed canvas dimensions")
	}

	// The atlas is usable again after Clear.
	if err := a.AddTexture("tex", solidBuffer(t, 8, 8, Green)); err != nil {
		t.Errorf("AddTexture after Clear: %v", err)
	}
}

// TestAtlasFormatConversion verifies packing a texture whose format
// differs from the canvas converts per pixel.
func TestAtlasFormatConversion(t *testing.T) {
	a, _ := NewAtlas(16, 16, FormatRGBA)

	tex, _ := New(4, 4, FormatBGR)
	tex.Fill(Color{R: 0.2, G: 0.4, B: 0.6, A: 1})

	if err := a.AddTexture("bgr", tex); err != nil {
		t.Fatalf("AddTexture: %v", err)
	}
	got := a.Canvas().GetPixel(1, 1)
	if !colorsApproxEqual(got, Color{R: 0.2, G: 0.4, B: 0.6, A: 1}, 1.0/255) {
		t.Errorf("converted pixel = %+v", got)
	}
}

func TestAtlasRegionNotFound(t *testing.T) {
	a, _ := NewAtlas(16, 16, FormatRGBA)
	if r, ok := a.Region("missing"); ok || r != (Region{}) {
		t.Errorf("missing region = %+v, ok=%v", r, ok)
	}
}
