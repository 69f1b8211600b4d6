package wrapped

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixelImage is a lazily created 1x1 white source for untextured meshes.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// defaultArcSegments is the number of segments used for a full circle.
const defaultArcSegments = 96

// Mesh accumulates untextured, per-vertex colored triangles. Vertex colors
// are straight (not premultiplied) alpha, matching ebiten's default color
// scale mode.
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Reset empties the mesh, keeping its buffers.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

func (m *Mesh) vertex(x, y float64, c Color) uint16 {
	idx := uint16(len(m.Vertices))
	m.Vertices = append(m.Vertices, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5, // center of the white pixel
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	})
	return idx
}

// AddPolygonFan appends a convex polygon using fan triangulation with
// points[0] as the hub. N points produce 3*(N-2) indices. Fewer than three
// points add nothing.
func (m *Mesh) AddPolygonFan(points []Vec2, c Color) {
	n := len(points)
	if n < 3 {
		return
	}
	base := uint16(len(m.Vertices))
	for _, p := range points {
		m.vertex(p.X, p.Y, c)
	}
	for i := 0; i < n-2; i++ {
		m.Indices = append(m.Indices, base, base+uint16(i+1), base+uint16(i+2))
	}
}

// AddStarPolygon appends a polygon that is star-shaped around center (every
// point visible from it, convex or not) as a closed fan from center.
func (m *Mesh) AddStarPolygon(center Vec2, points []Vec2, c Color) {
	n := len(points)
	if n < 3 {
		return
	}
	hub := m.vertex(center.X, center.Y, c)
	for _, p := range points {
		m.vertex(p.X, p.Y, c)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Indices = append(m.Indices, hub, hub+1+uint16(i), hub+1+uint16(j))
	}
}

// AddRingSegment appends an annular sector between inner and outer radius,
// from angle a0 to a1 in radians (clockwise on screen when a1 > a0).
// segments is the resolution of a full circle; the sector uses a
// proportional share of it, at least one.
func (m *Mesh) AddRingSegment(center Vec2, inner, outer, a0, a1 float64, segments int, c Color) {
	if a1 <= a0 || outer <= inner {
		return
	}
	if segments <= 0 {
		segments = defaultArcSegments
	}
	steps := int(math.Ceil((a1 - a0) / (2 * math.Pi) * float64(segments)))
	if steps < 1 {
		steps = 1
	}
	base := uint16(len(m.Vertices))
	for k := 0; k <= steps; k++ {
		a := a0 + (a1-a0)*float64(k)/float64(steps)
		sin, cos := math.Sincos(a)
		m.vertex(center.X+cos*outer, center.Y+sin*outer, c)
		m.vertex(center.X+cos*inner, center.Y+sin*inner, c)
	}
	for k := 0; k < steps; k++ {
		o0 := base + uint16(2*k)
		i0 := o0 + 1
		o1 := o0 + 2
		i1 := o0 + 3
		m.Indices = append(m.Indices, o0, o1, i0, i0, o1, i1)
	}
}

// RoundRectPoints returns the outline of r with corners rounded by radius,
// clockwise starting at the top-left arc. The radius is clamped to half the
// shorter side.
func RoundRectPoints(r Rect, radius float64, cornerSegments int) []Vec2 {
	radius = clamp(radius, 0, math.Min(r.Width, r.Height)/2)
	if cornerSegments < 1 {
		cornerSegments = 1
	}
	if radius == 0 {
		return []Vec2{
			{r.X, r.Y}, {r.X + r.Width, r.Y},
			{r.X + r.Width, r.Y + r.Height}, {r.X, r.Y + r.Height},
		}
	}
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radius, r.Y + radius, math.Pi},
		{r.X + r.Width - radius, r.Y + radius, 1.5 * math.Pi},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, 0.5 * math.Pi},
	}
	pts := make([]Vec2, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for k := 0; k <= cornerSegments; k++ {
			a := c.start + 0.5*math.Pi*float64(k)/float64(cornerSegments)
			sin, cos := math.Sincos(a)
			pts = append(pts, Vec2{c.cx + cos*radius, c.cy + sin*radius})
		}
	}
	return pts
}

// Draw renders the mesh onto dst.
func (m *Mesh) Draw(dst *ebiten.Image) {
	if m.Empty() {
		return
	}
	dst.DrawTriangles(m.Vertices, m.Indices, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
