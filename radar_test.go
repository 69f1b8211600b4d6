package wrapped

import (
	"math"
	"testing"
)

func moodTraits() []Trait {
	return []Trait{
		{Name: "Resiliencia", Score: 9},
		{Name: "Ansiedad", Score: 7},
		{Name: "Creatividad", Score: 8},
		{Name: "Paciencia", Score: 4},
		{Name: "Esperanza", Score: 8},
		{Name: "Cansancio", Score: 9},
	}
}

func TestRadarAxesEvenlySpaced(t *testing.T) {
	axes := RadarAxes(moodTraits())
	if len(axes) != 6 {
		t.Fatalf("axes = %d, want 6", len(axes))
	}
	if axes[0].Angle != -math.Pi/2 {
		t.Errorf("first axis angle = %v, want -pi/2", axes[0].Angle)
	}
	step := 2 * math.Pi / 6
	for i := 1; i < len(axes); i++ {
		if d := axes[i].Angle - axes[i-1].Angle; math.Abs(d-step) > 1e-12 {
			t.Errorf("axis %d spacing = %v, want %v", i, d, step)
		}
	}
}

func TestRadarPointDistanceProportionalToScore(t *testing.T) {
	center := Vec2{200, 150}
	radius := 100.0
	for _, a := range RadarAxes(moodTraits()) {
		p := a.Point(center, radius, 1)
		got := math.Hypot(p.X-center.X, p.Y-center.Y)
		want := radius * a.Score / 10
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("axis %q distance = %v, want %v", a.Name, got, want)
		}
	}
}

func TestRadarFirstAxisPointsUp(t *testing.T) {
	axes := RadarAxes([]Trait{{Name: "a", Score: 10}, {Name: "b", Score: 10}, {Name: "c", Score: 10}})
	tip := axes[0].Tip(Vec2{}, 10)
	if math.Abs(tip.X) > 1e-9 || math.Abs(tip.Y+10) > 1e-9 {
		t.Errorf("first tip = %+v, want (0, -10)", tip)
	}
	// Clockwise on screen: the second axis lands right of center.
	if second := axes[1].Tip(Vec2{}, 10); second.X <= 0 {
		t.Errorf("second tip = %+v, want positive X", second)
	}
}

func TestRadarScoresClamped(t *testing.T) {
	tests := []struct {
		score float64
		ratio float64
	}{
		{-3, 0},
		{0, 0},
		{5, 0.5},
		{10, 1},
		{14, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		axes := RadarAxes([]Trait{{Score: tt.score}})
		if axes[0].Ratio != tt.ratio {
			t.Errorf("score %v: ratio = %v, want %v", tt.score, axes[0].Ratio, tt.ratio)
		}
	}
}

func TestRadarChartGrow(t *testing.T) {
	c := NewRadarChart(moodTraits(), DefaultRadarStyle())
	center := Vec2{0, 0}
	for _, p := range c.Points(center, 100) {
		if p != center {
			t.Fatalf("point %+v before growth, want center", p)
		}
	}
	for i := 0; i < 150; i++ {
		c.Update(1.0 / 60)
	}
	if !c.Done() {
		t.Fatal("expected Done after 2.5s")
	}
	if g := c.Growth(); math.Abs(g-1) > 1e-6 {
		t.Errorf("Growth = %v, want 1", g)
	}
	c.Restart()
	if c.Growth() != 0 {
		t.Errorf("Growth after Restart = %v, want 0", c.Growth())
	}
}

func TestRadarChartGridAndMesh(t *testing.T) {
	c := NewRadarChart(moodTraits(), DefaultRadarStyle())
	outer := c.GridPolygon(Vec2{}, 100, 5)
	inner := c.GridPolygon(Vec2{}, 100, 1)
	if len(outer) != 6 {
		t.Fatalf("grid points = %d, want 6", len(outer))
	}
	if r := math.Hypot(outer[2].X, outer[2].Y); math.Abs(r-100) > 1e-9 {
		t.Errorf("outer grid radius = %v, want 100", r)
	}
	if r := math.Hypot(inner[2].X, inner[2].Y); math.Abs(r-20) > 1e-9 {
		t.Errorf("inner grid radius = %v, want 20", r)
	}

	c.Update(3)
	m := c.Build(Vec2{}, 100)
	if len(m.Vertices) != 7 || len(m.Indices) != 18 {
		t.Errorf("mesh = %d verts / %d indices, want 7 / 18", len(m.Vertices), len(m.Indices))
	}
	if a := m.Vertices[0].ColorA; math.Abs(float64(a)-0.6) > 1e-6 {
		t.Errorf("fill alpha = %v, want 0.6", a)
	}
}

func TestRadarChartTooFewTraits(t *testing.T) {
	c := NewRadarChart([]Trait{{Score: 5}, {Score: 5}}, DefaultRadarStyle())
	c.Update(3)
	if m := c.Build(Vec2{}, 10); !m.Empty() {
		t.Error("two traits should not form a polygon")
	}
}
