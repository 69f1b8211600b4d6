package wrapped

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RadarMaxScore is the top of the radar's fixed display scale. Scores are
// plotted on [0, RadarMaxScore].
const RadarMaxScore = 10.0

// Trait is one named axis of a radar chart.
type Trait struct {
	Name  string  `toml:"name" yaml:"name" json:"name"`
	Score float64 `toml:"score" yaml:"score" json:"score"`
}

// RadarAxis is the laid-out geometry of one trait. Angle is in radians,
// clockwise on screen from the positive X axis; Ratio is the clamped score
// divided by RadarMaxScore.
type RadarAxis struct {
	Index int
	Name  string
	Score float64
	Angle float64
	Ratio float64
}

// RadarAxes places one axis per trait, evenly spaced, with the first at
// 12 o'clock and the rest clockwise. Scores outside [0, RadarMaxScore] are
// clamped.
func RadarAxes(traits []Trait) []RadarAxis {
	n := len(traits)
	axes := make([]RadarAxis, n)
	for i, t := range traits {
		score := clamp(t.Score, 0, RadarMaxScore)
		axes[i] = RadarAxis{
			Index: i,
			Name:  t.Name,
			Score: score,
			Angle: -math.Pi/2 + float64(i)*2*math.Pi/float64(n),
			Ratio: score / RadarMaxScore,
		}
	}
	return axes
}

// Point returns the point at distance radius*Ratio*growth from center along
// the axis.
func (a RadarAxis) Point(center Vec2, radius, growth float64) Vec2 {
	return polar(center, radius*a.Ratio*growth, a.Angle)
}

// Tip returns the end of the axis spoke at full radius.
func (a RadarAxis) Tip(center Vec2, radius float64) Vec2 {
	return polar(center, radius, a.Angle)
}

func polar(center Vec2, r, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{center.X + cos*r, center.Y + sin*r}
}

// RadarStyle controls radar colors and animation.
type RadarStyle struct {
	Fill      Color
	FillAlpha float64
	Stroke    Color
	Grid      Color
	Levels    int     // concentric grid polygons
	Grow      float32 // seconds for the polygon to grow from the center
}

// DefaultRadarStyle returns five grid levels, a 60% opaque fill and a 2s
// grow-in.
func DefaultRadarStyle() RadarStyle {
	return RadarStyle{
		Fill:      MustHexColor("#d946ef"),
		FillAlpha: 0.6,
		Stroke:    MustHexColor("#d946ef"),
		Grid:      Color{1, 1, 1, 0.1},
		Levels:    5,
		Grow:      2,
	}
}

// RadarChart draws traits as a filled polygon over a polygonal grid.
type RadarChart struct {
	Style RadarStyle

	traits []Trait
	axes   []RadarAxis
	grow   *Reveal
	points []Vec2
	mesh   Mesh
}

// NewRadarChart creates a chart over traits.
func NewRadarChart(traits []Trait, style RadarStyle) *RadarChart {
	return &RadarChart{
		Style:  style,
		traits: traits,
		axes:   RadarAxes(traits),
		grow:   NewReveal(0, style.Grow, nil),
	}
}

// Axes returns the laid-out axes.
func (c *RadarChart) Axes() []RadarAxis {
	return c.axes
}

// Restart replays the grow-in animation.
func (c *RadarChart) Restart() {
	c.grow.Restart()
}

// Update advances the animation by dt seconds.
func (c *RadarChart) Update(dt float32) {
	c.grow.Update(dt)
}

// Done reports whether the polygon has fully grown.
func (c *RadarChart) Done() bool {
	return c.grow.Done()
}

// Growth returns the current growth factor in [0, 1].
func (c *RadarChart) Growth() float64 {
	return clamp01(c.grow.Value())
}

// Points returns the data polygon at the current growth. The returned slice
// is reused by the next call.
func (c *RadarChart) Points(center Vec2, radius float64) []Vec2 {
	c.points = c.points[:0]
	g := c.Growth()
	for _, a := range c.axes {
		c.points = append(c.points, a.Point(center, radius, g))
	}
	return c.points
}

// GridPolygon returns the grid ring for level in [1, Style.Levels]; the
// outermost level has full radius.
func (c *RadarChart) GridPolygon(center Vec2, radius float64, level int) []Vec2 {
	levels := max(c.Style.Levels, 1)
	r := radius * float64(level) / float64(levels)
	pts := make([]Vec2, len(c.axes))
	for i, a := range c.axes {
		pts[i] = polar(center, r, a.Angle)
	}
	return pts
}

// Build rebuilds the filled data polygon. With fewer than three traits the
// mesh is empty.
func (c *RadarChart) Build(center Vec2, radius float64) *Mesh {
	c.mesh.Reset()
	c.mesh.AddStarPolygon(center, c.Points(center, radius), c.Style.Fill.WithAlpha(c.Style.FillAlpha))
	return &c.mesh
}

// Draw renders grid, spokes, fill and outline onto dst. Labels are left to
// the caller.
func (c *RadarChart) Draw(dst *ebiten.Image, center Vec2, radius float64) {
	grid := c.Style.Grid.RGBA()
	for level := 1; level <= c.Style.Levels; level++ {
		strokeClosed(dst, c.GridPolygon(center, radius, level), 1, grid)
	}
	for _, a := range c.axes {
		tip := a.Tip(center, radius)
		vector.StrokeLine(dst, float32(center.X), float32(center.Y), float32(tip.X), float32(tip.Y), 1, grid, true)
	}

	c.Build(center, radius).Draw(dst)

	stroke := c.Style.Stroke.RGBA()
	pts := c.Points(center, radius)
	strokeClosed(dst, pts, 2, stroke)
	for _, p := range pts {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 3, stroke, true)
	}
}

func strokeClosed(dst *ebiten.Image, pts []Vec2, width float32, clr color.RGBA) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%n]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}
