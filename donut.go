package wrapped

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DonutReferenceAngle is where the first slice starts: 12 o'clock.
const DonutReferenceAngle = -math.Pi / 2

// Slice is one labeled share of a donut chart.
type Slice struct {
	Label string  `toml:"label" yaml:"label" json:"label"`
	Value float64 `toml:"value" yaml:"value" json:"value"`
	Color Color   `toml:"color" yaml:"color" json:"color"`
}

// Arc is the laid-out geometry of one slice. Start and Fraction are shares of
// the full circle; StartAngle and EndAngle are radians measured clockwise on
// screen from the positive X axis.
type Arc struct {
	Index      int
	Label      string
	Color      Color
	Start      float64
	Fraction   float64
	StartAngle float64
	EndAngle   float64
}

// DonutArcs lays slices out contiguously around the circle in input order,
// starting at DonutReferenceAngle. Each arc's fraction is value/total, so the
// fractions tile the circle with no gap or overlap. Negative values count as
// zero, as do NaN and infinities. A zero total yields no arcs.
func DonutArcs(slices []Slice) []Arc {
	total := 0.0
	for _, s := range slices {
		total += donutValue(s.Value)
	}
	if total <= 0 {
		return nil
	}

	arcs := make([]Arc, len(slices))
	cum := 0.0
	for i, s := range slices {
		frac := donutValue(s.Value) / total
		arcs[i] = Arc{
			Index:      i,
			Label:      s.Label,
			Color:      s.Color,
			Start:      cum,
			Fraction:   frac,
			StartAngle: DonutReferenceAngle + cum*2*math.Pi,
			EndAngle:   DonutReferenceAngle + (cum+frac)*2*math.Pi,
		}
		cum += frac
	}
	// Pin the last arc to the reference so rounding never leaves a sliver.
	last := &arcs[len(arcs)-1]
	last.EndAngle = DonutReferenceAngle + 2*math.Pi
	return arcs
}

// donutValue is the share a slice value contributes: v when finite and
// positive, otherwise 0.
func donutValue(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

// Share returns value/total for slice i as a percentage, or 0 for a zero
// total.
func Share(slices []Slice, i int) float64 {
	total := 0.0
	for _, s := range slices {
		total += donutValue(s.Value)
	}
	if total <= 0 {
		return 0
	}
	return donutValue(slices[i].Value) / total * 100
}

// DonutStyle controls donut geometry relative to the chart's outer radius.
type DonutStyle struct {
	Thickness float64 // ring width as a fraction of the outer radius
	Track     Color   // ring drawn beneath the arcs
	Segments  int     // full-circle resolution
	Sweep     float32 // seconds for one arc to sweep in
	Stagger   float32 // extra delay per arc index
}

// DefaultDonutStyle matches a 100-unit viewbox with an outer radius of 50 and
// a stroke of 20: each arc sweeps in over 1.5s, 0.1s after the previous one.
func DefaultDonutStyle() DonutStyle {
	return DonutStyle{
		Thickness: 0.4,
		Track:     Color{1, 1, 1, 0.06},
		Segments:  defaultArcSegments,
		Sweep:     1.5,
		Stagger:   0.1,
	}
}

// DonutChart animates a set of slices into a ring.
type DonutChart struct {
	Style DonutStyle

	slices  []Slice
	arcs    []Arc
	reveals []*Reveal
	mesh    Mesh
}

// NewDonutChart creates a chart over slices. The slices are not copied and
// must not be mutated afterwards.
func NewDonutChart(slices []Slice, style DonutStyle) *DonutChart {
	c := &DonutChart{Style: style, slices: slices, arcs: DonutArcs(slices)}
	c.reveals = Stagger(len(c.arcs), 0, style.Stagger, style.Sweep, ease.OutCubic)
	return c
}

// Arcs returns the laid-out arcs, nil for a zero total.
func (c *DonutChart) Arcs() []Arc {
	return c.arcs
}

// Slices returns the chart input.
func (c *DonutChart) Slices() []Slice {
	return c.slices
}

// Restart replays the sweep-in animation.
func (c *DonutChart) Restart() {
	for _, r := range c.reveals {
		r.Restart()
	}
}

// Update advances the animation by dt seconds.
func (c *DonutChart) Update(dt float32) {
	for _, r := range c.reveals {
		r.Update(dt)
	}
}

// Done reports whether every arc has finished sweeping in.
func (c *DonutChart) Done() bool {
	for _, r := range c.reveals {
		if !r.Done() {
			return false
		}
	}
	return true
}

// Sweep returns the currently drawn share of the circle for arc i.
func (c *DonutChart) Sweep(i int) float64 {
	return c.arcs[i].Fraction * clamp01(c.reveals[i].Value())
}

// Build rebuilds and returns the chart mesh for the given center and outer
// radius at the current animation time.
func (c *DonutChart) Build(center Vec2, outer float64) *Mesh {
	c.mesh.Reset()
	inner := outer * (1 - c.Style.Thickness)
	c.mesh.AddRingSegment(center, inner, outer, DonutReferenceAngle, DonutReferenceAngle+2*math.Pi, c.Style.Segments, c.Style.Track)
	for i, a := range c.arcs {
		sweep := c.Sweep(i)
		if sweep <= 0 {
			continue
		}
		c.mesh.AddRingSegment(center, inner, outer, a.StartAngle, a.StartAngle+sweep*2*math.Pi, c.Style.Segments, a.Color)
	}
	return &c.mesh
}
