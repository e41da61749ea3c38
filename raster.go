package texel

import "math"

// minSegmentLength is the segment length below which DrawLine degenerates
// to a no-op.
const minSegmentLength = 1e-4

// DrawLine draws a line of the given thickness from start to end by
// constructing the perpendicular-offset quad and filling it as two
// triangles. Segments shorter than 1e-4 are silently skipped.
func (b *Buffer) DrawLine(start, end Point, c Color, thickness float64) {
	d := end.Sub(start)
	if d.Length() < minSegmentLength {
		return
	}

	n := d.Perp().Normalize().Mul(thickness / 2)

	p0 := start.Add(n)
	p1 := end.Add(n)
	p2 := end.Sub(n)
	p3 := start.Sub(n)

	b.FillTriangle(p0, p1, p2, c)
	b.FillTriangle(p0, p2, p3, c)
}

// edge evaluates the signed area test for the directed edge a->b at p.
// Positive means p is on the left of the edge in y-down screen coordinates.
func edge(a, b, p Point) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// FillTriangle fills the triangle (p1, p2, p3), testing each pixel center
// inside the clamped bounding box against the three edge functions.
//
// The test fills a pixel iff all three edge values are >= 0, which holds
// only for vertices wound counter-clockwise in y-down screen coordinates.
// Supplying the opposite winding fills nothing; callers must keep a
// consistent winding.
func (b *Buffer) FillTriangle(p1, p2, p3 Point, c Color) {
	minX := int(math.Min(p1.X, math.Min(p2.X, p3.X)))
	minY := int(math.Min(p1.Y, math.Min(p2.Y, p3.Y)))
	maxX := int(math.Ceil(math.Max(p1.X, math.Max(p2.X, p3.X))))
	maxY := int(math.Ceil(math.Max(p1.Y, math.Max(p2.Y, p3.Y))))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, b.width)
	maxY = min(maxY, b.height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)

			w1 := edge(p2, p3, p)
			w2 := edge(p3, p1, p)
			w3 := edge(p1, p2, p)

			if w1 >= 0 && w2 >= 0 && w3 >= 0 {
				b.SetPixel(x, y, c)
			}
		}
	}
}
