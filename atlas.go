package texel

import (
	"errors"
	"sort"
)

// Atlas errors.
var (
	// ErrDuplicateRegion is returned when a texture name is already packed.
	ErrDuplicateRegion = errors.New("texel: atlas region name already exists")

	// ErrAtlasFull is returned when a texture does not fit in the atlas.
	ErrAtlasFull = errors.New("texel: texture does not fit in atlas")
)

// Region describes a named sub-rectangle within an atlas canvas.
// Regions are read-only views owned by the Atlas that created them.
type Region struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Atlas packs named textures into one shared canvas buffer using a
// single-pass shelf heuristic: textures are placed left-to-right in rows,
// and a new row starts when the current one is full.
//
// Invariant: every recorded region lies fully inside the canvas and no two
// regions overlap. Operations that cannot uphold this fail without
// mutating the atlas.
type Atlas struct {
	canvas  *Buffer
	regions []Region // insertion order
	byName  map[string]int
}

// NewAtlas creates an empty atlas with a zero-filled canvas of the given
// dimensions and format.
func NewAtlas(width, height int, format Format) (*Atlas, error) {
	canvas, err := New(width, height, format)
	if err != nil {
		return nil, err
	}
	return &Atlas{
		canvas: canvas,
		byName: make(map[string]int),
	}, nil
}

// Canvas returns the shared canvas buffer. External renderers read this
// directly; callers must not resize or reformat it.
func (a *Atlas) Canvas() *Buffer {
	return a.canvas
}

// Len returns the number of packed regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Region returns the region stored under name, if any.
func (a *Atlas) Region(name string) (Region, bool) {
	i, ok := a.byName[name]
	if !ok {
		return Region{}, false
	}
	return a.regions[i], true
}

// Regions returns a snapshot of all regions in insertion order.
func (a *Atlas) Regions() []Region {
	out := make([]Region, len(a.regions))
	copy(out, a.regions)
	return out
}

// shelfCursor walks a region list in order and returns the cursor position
// after re-placing every region with the shelf rule: advance right by each
// region's width, wrapping to a new row (below the tallest region of the
// finished row) when a region would cross the right edge. Because every
// insertion used this same rule, the walk reconstructs the exact layout of
// the recorded regions.
func (a *Atlas) shelfCursor(regions []Region) (x, y, rowHeight int) {
	for _, r := range regions {
		if x+r.Width > a.canvas.Width() {
			x = 0
			y += rowHeight
			rowHeight = 0
		}
		rowHeight = max(rowHeight, r.Height)
		x += r.Width
	}
	return x, y, rowHeight
}

// AddTexture packs img into the atlas under the given name and records its
// region. The placement cursor is recomputed by replaying the existing
// region list, which is O(n) per insertion.
//
// Fails with ErrDuplicateRegion if the name is already present and
// ErrAtlasFull if the placement would leave the canvas; the atlas is
// unchanged on failure.
func (a *Atlas) AddTexture(name string, img *Buffer) error {
	if _, ok := a.byName[name]; ok {
		return ErrDuplicateRegion
	}

	w, h := img.Width(), img.Height()

	x, y, rowHeight := a.shelfCursor(a.regions)
	if x+w > a.canvas.Width() {
		x = 0
		y += rowHeight
	}
	if w > a.canvas.Width() || y+h > a.canvas.Height() {
		return ErrAtlasFull
	}

	a.blit(img, x, y)

	a.regions = append(a.regions, Region{
		Name:   name,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
	})
	a.byName[name] = len(a.regions) - 1
	return nil
}

// blit copies img 1:1 into the canvas at (dstX, dstY). Matching formats
// copy whole rows; otherwise pixels are converted one at a time.
func (a *Atlas) blit(img *Buffer, dstX, dstY int) {
	if img.IsEmpty() {
		return
	}
	if img.Format() == a.canvas.Format() {
		for y := 0; y < img.Height(); y++ {
			src := img.RowBytes(y)
			dstOff := a.canvas.PixelOffset(dstX, dstY+y)
			copy(a.canvas.data[dstOff:dstOff+len(src)], src)
		}
		return
	}
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			a.canvas.SetPixel(dstX+x, dstY+y, img.GetPixel(x, y))
		}
	}
}

// Optimize repacks the atlas from scratch: regions are sorted by
// descending height and re-laid left-to-right into shelves, which tightens
// the layout left by arbitrary insertion order. Region names and sizes are
// preserved; only positions change. The new canvas and region map replace
// the old ones atomically.
//
// Returns ErrAtlasFull without mutating the atlas in the degenerate case
// where the repacked layout would not fit.
func (a *Atlas) Optimize() error {
	sorted := a.Regions()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height > sorted[j].Height
	})

	// Dry-run placement first so failure leaves the atlas untouched.
	placed := make([]Region, len(sorted))
	x, y, rowHeight := 0, 0, 0
	for i, r := range sorted {
		if x+r.Width > a.canvas.Width() {
			x = 0
			y += rowHeight
			rowHeight = 0
		}
		if y+r.Height > a.canvas.Height() {
			Logger().Warn("atlas repack rejected", "region", r.Name, "regions", len(sorted))
			return ErrAtlasFull
		}
		placed[i] = Region{Name: r.Name, X: x, Y: y, Width: r.Width, Height: r.Height}
		rowHeight = max(rowHeight, r.Height)
		x += r.Width
	}

	newCanvas, err := New(a.canvas.Width(), a.canvas.Height(), a.canvas.Format())
	if err != nil {
		return err
	}
	for i, r := range sorted {
		p := placed[i]
		for dy := 0; dy < r.Height; dy++ {
			for dx := 0; dx < r.Width; dx++ {
				newCanvas.SetPixel(p.X+dx, p.Y+dy, a.canvas.GetPixel(r.X+dx, r.Y+dy))
			}
		}
	}

	byName := make(map[string]int, len(placed))
	for i, r := range placed {
		byName[r.Name] = i
	}

	a.canvas = newCanvas
	a.regions = placed
	a.byName = byName
	return nil
}

// Clear discards all regions and resets the canvas to a blank buffer of
// the same dimensions and format.
func (a *Atlas) Clear() {
	a.canvas.Clear()
	a.regions = a.regions[:0]
	clear(a.byName)
}
