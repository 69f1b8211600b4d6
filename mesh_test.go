package wrapped

import (
	"math"
	"testing"
)

func TestAddPolygonFanCounts(t *testing.T) {
	var m Mesh
	m.AddPolygonFan([]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, ColorWhite)
	if len(m.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4", len(m.Vertices))
	}
	if len(m.Indices) != 6 {
		t.Errorf("indices = %d, want 6", len(m.Indices))
	}
	for _, v := range m.Vertices {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Fatalf("untextured vertex samples (%v, %v), want white pixel center", v.SrcX, v.SrcY)
		}
	}
}

func TestAddPolygonFanDegenerate(t *testing.T) {
	var m Mesh
	m.AddPolygonFan([]Vec2{{0, 0}, {1, 1}}, ColorWhite)
	if !m.Empty() || len(m.Vertices) != 0 {
		t.Errorf("two points produced %d vertices", len(m.Vertices))
	}
}

func TestAddPolygonFanOffsetsIndices(t *testing.T) {
	var m Mesh
	tri := []Vec2{{0, 0}, {1, 0}, {0, 1}}
	m.AddPolygonFan(tri, ColorWhite)
	m.AddPolygonFan(tri, ColorWhite)
	want := []uint16{0, 1, 2, 3, 4, 5}
	for i, w := range want {
		if m.Indices[i] != w {
			t.Errorf("index %d = %d, want %d", i, m.Indices[i], w)
		}
	}
}

func TestAddStarPolygonClosesLoop(t *testing.T) {
	var m Mesh
	pts := []Vec2{{0, -5}, {5, 0}, {0, 5}, {-5, 0}, {-1, -1}}
	m.AddStarPolygon(Vec2{}, pts, ColorWhite)
	if len(m.Vertices) != 6 {
		t.Errorf("vertices = %d, want 6", len(m.Vertices))
	}
	if len(m.Indices) != 15 {
		t.Fatalf("indices = %d, want 15", len(m.Indices))
	}
	last := m.Indices[12:]
	if last[0] != 0 || last[1] != 5 || last[2] != 1 {
		t.Errorf("closing triangle = %v, want [0 5 1]", last)
	}
}

func TestAddRingSegmentGeometry(t *testing.T) {
	var m Mesh
	m.AddRingSegment(Vec2{50, 50}, 30, 50, 0, math.Pi/2, 8, Color{1, 0, 0, 1})
	// A quarter of 8 segments is 2 steps: 3 vertex pairs, 2 quads.
	if len(m.Vertices) != 6 {
		t.Errorf("vertices = %d, want 6", len(m.Vertices))
	}
	if len(m.Indices) != 12 {
		t.Errorf("indices = %d, want 12", len(m.Indices))
	}
	for i, v := range m.Vertices {
		r := math.Hypot(float64(v.DstX)-50, float64(v.DstY)-50)
		want := 50.0
		if i%2 == 1 {
			want = 30
		}
		if math.Abs(r-want) > 1e-3 {
			t.Errorf("vertex %d radius = %f, want %f", i, r, want)
		}
		if v.ColorR != 1 || v.ColorG != 0 {
			t.Errorf("vertex %d color = (%v, %v)", i, v.ColorR, v.ColorG)
		}
	}
}

func TestAddRingSegmentEmptySweep(t *testing.T) {
	var m Mesh
	m.AddRingSegment(Vec2{}, 30, 50, 1, 1, 0, ColorWhite)
	m.AddRingSegment(Vec2{}, 50, 30, 0, 1, 0, ColorWhite)
	if !m.Empty() {
		t.Error("degenerate segments should add nothing")
	}
}

func TestMeshReset(t *testing.T) {
	var m Mesh
	m.AddPolygonFan([]Vec2{{0, 0}, {1, 0}, {0, 1}}, ColorWhite)
	m.Reset()
	if !m.Empty() || len(m.Vertices) != 0 {
		t.Error("Reset should clear the mesh")
	}
}

func TestRoundRectPoints(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 40}
	pts := RoundRectPoints(r, 8, 4)
	if len(pts) != 20 {
		t.Fatalf("points = %d, want 20", len(pts))
	}
	for _, p := range pts {
		if p.X < r.X-1e-9 || p.X > r.X+r.Width+1e-9 || p.Y < r.Y-1e-9 || p.Y > r.Y+r.Height+1e-9 {
			t.Errorf("point %+v outside %+v", p, r)
		}
	}
	if got := RoundRectPoints(r, 0, 4); len(got) != 4 {
		t.Errorf("square corners = %d points, want 4", len(got))
	}
	// Radius larger than half the height collapses to a pill.
	pill := RoundRectPoints(r, 500, 2)
	if math.Abs(pill[0].X-r.X) > 1e-9 || math.Abs(pill[0].Y-(r.Y+20)) > 1e-9 {
		t.Errorf("pill start = %+v, want left middle", pill[0])
	}
}
