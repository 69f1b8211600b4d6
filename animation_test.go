package wrapped

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(v-55) > 0.5 {
		t.Errorf("midpoint = %f, want ~55", v)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.01 {
		t.Errorf("v = %f, want 100", v)
	}
}

func TestTweenGroupDelay(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 1, 1.0, ease.Linear).WithDelay(0.5)

	g.Update(0.25)
	if v != 0 || g.Done {
		t.Fatalf("during delay v = %f done = %v", v, g.Done)
	}
	// 0.25 left of delay, 0.5 carried into the tween.
	g.Update(0.75)
	if math.Abs(v-0.5) > 0.01 {
		t.Errorf("after delay overshoot v = %f, want ~0.5", v)
	}
	g.Update(0.5)
	if !g.Done || math.Abs(v-1) > 0.01 {
		t.Errorf("v = %f done = %v, want 1 done", v, g.Done)
	}
}

func TestTweenGroupDoneStopsWriting(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 1, 0.5, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)
	v = 42
	g.Update(0.5)
	if v != 42 {
		t.Errorf("finished group wrote %f", v)
	}
}

func TestTweenPoseAllFields(t *testing.T) {
	p := Pose{OffsetY: 1, Alpha: 0, Scale: 0.9}
	g := TweenPose(&p, PoseCenter, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(p.OffsetY) > 0.01 || math.Abs(p.Alpha-1) > 0.01 || math.Abs(p.Scale-1) > 0.01 {
		t.Errorf("pose = %+v, want %+v", p, PoseCenter)
	}
}

func TestRevealRestart(t *testing.T) {
	r := NewReveal(0.1, 0.2, ease.Linear)
	r.Update(0.1)
	if r.Value() != 0 {
		t.Errorf("value during delay = %f, want 0", r.Value())
	}
	r.Update(0.1)
	r.Update(0.1)
	r.Update(0.1)
	if !r.Done() || math.Abs(r.Value()-1) > 0.01 {
		t.Fatalf("value = %f done = %v", r.Value(), r.Done())
	}
	r.Restart()
	if r.Value() != 0 || r.Done() {
		t.Errorf("after restart value = %f done = %v", r.Value(), r.Done())
	}
}

func TestRevealDefaultEase(t *testing.T) {
	r := NewReveal(0, 1, nil)
	if r.Ease == nil {
		t.Fatal("expected default ease")
	}
	r.Update(0.5)
	// OutCubic is ahead of linear at the midpoint.
	if r.Value() <= 0.5 {
		t.Errorf("OutCubic midpoint = %f, want > 0.5", r.Value())
	}
}

func TestStaggerDelays(t *testing.T) {
	rs := Stagger(4, 0.5, 0.1, 1, ease.Linear)
	if len(rs) != 4 {
		t.Fatalf("len = %d, want 4", len(rs))
	}
	for i, r := range rs {
		want := float32(0.5) + float32(i)*0.1
		if math.Abs(float64(r.Delay-want)) > 1e-6 {
			t.Errorf("reveal %d delay = %f, want %f", i, r.Delay, want)
		}
	}
}

func TestLoopWraps(t *testing.T) {
	l := Loop{Period: 2}
	l.Update(0.5)
	if math.Abs(l.Phase()-0.25) > 1e-6 {
		t.Errorf("phase = %f, want 0.25", l.Phase())
	}
	l.Update(2)
	if math.Abs(l.Phase()-0.25) > 1e-6 {
		t.Errorf("phase after full period = %f, want 0.25", l.Phase())
	}
	var zero Loop
	zero.Update(1)
	if zero.Phase() != 0 {
		t.Errorf("zero-period phase = %f", zero.Phase())
	}
}
