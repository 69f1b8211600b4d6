package wrapped

import (
	"math"
	"testing"
)

func timeSlices() []Slice {
	return []Slice{
		{Label: "Trabajo", Value: 40},
		{Label: "Clases & Actividad", Value: 20},
		{Label: "Software / Data", Value: 15},
		{Label: "Terapia", Value: 10},
		{Label: "Viajes", Value: 10},
		{Label: "Ocio", Value: 5},
	}
}

func TestDonutArcsFractions(t *testing.T) {
	slices := timeSlices()
	arcs := DonutArcs(slices)
	if len(arcs) != len(slices) {
		t.Fatalf("arcs = %d, want %d", len(arcs), len(slices))
	}
	sum := 0.0
	for i, a := range arcs {
		want := slices[i].Value / 100
		if a.Fraction != want {
			t.Errorf("arc %d fraction = %v, want %v", i, a.Fraction, want)
		}
		sum += a.Fraction
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("fractions sum = %v, want 1", sum)
	}
}

func TestDonutArcsContiguous(t *testing.T) {
	arcs := DonutArcs(timeSlices())
	if arcs[0].Start != 0 {
		t.Errorf("first arc start = %v, want 0", arcs[0].Start)
	}
	if arcs[0].StartAngle != DonutReferenceAngle {
		t.Errorf("first arc angle = %v, want %v", arcs[0].StartAngle, DonutReferenceAngle)
	}
	for i := 1; i < len(arcs); i++ {
		prevEnd := arcs[i-1].Start + arcs[i-1].Fraction
		if math.Abs(arcs[i].Start-prevEnd) > 1e-12 {
			t.Errorf("arc %d starts at %v, previous ended at %v", i, arcs[i].Start, prevEnd)
		}
		if math.Abs(arcs[i].StartAngle-arcs[i-1].EndAngle) > 1e-9 {
			t.Errorf("arc %d angle gap: %v vs %v", i, arcs[i].StartAngle, arcs[i-1].EndAngle)
		}
	}
	last := arcs[len(arcs)-1]
	if last.EndAngle != DonutReferenceAngle+2*math.Pi {
		t.Errorf("last arc ends at %v, want full circle", last.EndAngle)
	}
}

func TestDonutArcsZeroTotal(t *testing.T) {
	if arcs := DonutArcs([]Slice{{Value: 0}, {Value: 0}}); arcs != nil {
		t.Errorf("zero total arcs = %v, want nil", arcs)
	}
	if arcs := DonutArcs(nil); arcs != nil {
		t.Errorf("empty input arcs = %v, want nil", arcs)
	}
}

func TestDonutArcsNegativeCountsAsZero(t *testing.T) {
	arcs := DonutArcs([]Slice{{Value: 3}, {Value: -5}, {Value: 1}})
	if arcs[1].Fraction != 0 {
		t.Errorf("negative slice fraction = %v, want 0", arcs[1].Fraction)
	}
	if arcs[0].Fraction != 0.75 || arcs[2].Fraction != 0.25 {
		t.Errorf("fractions = %v, %v, want 0.75, 0.25", arcs[0].Fraction, arcs[2].Fraction)
	}
}

func TestDonutArcsNonFiniteCountsAsZero(t *testing.T) {
	arcs := DonutArcs([]Slice{{Value: 3}, {Value: math.NaN()}, {Value: math.Inf(1)}, {Value: 1}})
	want := []float64{0.75, 0, 0, 0.25}
	for i, a := range arcs {
		if a.Fraction != want[i] {
			t.Errorf("arc %d fraction = %v, want %v", i, a.Fraction, want[i])
		}
	}
	if arcs := DonutArcs([]Slice{{Value: math.NaN()}}); arcs != nil {
		t.Errorf("NaN-only arcs = %v, want nil", arcs)
	}
	if got := Share([]Slice{{Value: 1}, {Value: math.NaN()}}, 1); got != 0 {
		t.Errorf("NaN Share = %v, want 0", got)
	}
}

func TestShare(t *testing.T) {
	slices := timeSlices()
	if got := Share(slices, 0); math.Abs(got-40) > 1e-9 {
		t.Errorf("Share = %v, want 40", got)
	}
	if got := Share([]Slice{{Value: 0}}, 0); got != 0 {
		t.Errorf("zero total Share = %v, want 0", got)
	}
}

func TestDonutChartSweepAnimation(t *testing.T) {
	c := NewDonutChart(timeSlices(), DefaultDonutStyle())
	for i := range c.Arcs() {
		if c.Sweep(i) != 0 {
			t.Fatalf("arc %d sweep before update = %v", i, c.Sweep(i))
		}
	}
	// After 0.05s only the first arc has started.
	c.Update(0.05)
	if c.Sweep(0) <= 0 {
		t.Error("first arc should be sweeping")
	}
	if c.Sweep(1) != 0 {
		t.Errorf("second arc sweep = %v, want 0 during its delay", c.Sweep(1))
	}
	for i := 0; i < 180; i++ {
		c.Update(1.0 / 60)
	}
	if !c.Done() {
		t.Fatal("expected Done after 3s")
	}
	for i, a := range c.Arcs() {
		if math.Abs(c.Sweep(i)-a.Fraction) > 1e-6 {
			t.Errorf("arc %d sweep = %v, want %v", i, c.Sweep(i), a.Fraction)
		}
	}
	c.Restart()
	if c.Done() || c.Sweep(0) != 0 {
		t.Error("Restart should rewind the sweep")
	}
}

func TestDonutChartBuild(t *testing.T) {
	style := DefaultDonutStyle()
	c := NewDonutChart(timeSlices(), style)
	m := c.Build(Vec2{100, 100}, 50)
	trackOnly := len(m.Indices)
	if trackOnly == 0 {
		t.Fatal("track ring missing")
	}
	for i := 0; i < 240; i++ {
		c.Update(1.0 / 60)
	}
	m = c.Build(Vec2{100, 100}, 50)
	if len(m.Indices) <= trackOnly {
		t.Errorf("indices = %d, want more than the track's %d", len(m.Indices), trackOnly)
	}
	for _, v := range m.Vertices {
		r := math.Hypot(float64(v.DstX)-100, float64(v.DstY)-100)
		if r < 30-1e-3 || r > 50+1e-3 {
			t.Fatalf("vertex radius %f outside ring [30, 50]", r)
		}
	}
}

func TestDonutChartZeroTotalBuildsTrackOnly(t *testing.T) {
	c := NewDonutChart([]Slice{{Value: 0}}, DefaultDonutStyle())
	c.Update(5)
	if !c.Done() {
		t.Error("empty chart should be done")
	}
	m := c.Build(Vec2{}, 10)
	if m.Empty() {
		t.Error("track should still render")
	}
}
