package wrapped

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func linearTransition() TransitionConfig {
	cfg := DefaultTransitionConfig()
	cfg.Ease = ease.Linear
	return cfg
}

func runFor(t *SlideTransition, seconds float32) {
	const step = float32(1) / 60
	for e := float32(0); e < seconds; e += step {
		t.Update(step)
	}
}

func TestDefaultTransitionConfig(t *testing.T) {
	cfg := DefaultTransitionConfig()
	if cfg.Duration != 0.8 {
		t.Errorf("Duration = %v, want 0.8", cfg.Duration)
	}
	if cfg.EnterScale != 0.9 || cfg.ExitScale != 1.1 {
		t.Errorf("scales = %v/%v, want 0.9/1.1", cfg.EnterScale, cfg.ExitScale)
	}
	if cfg.Ease == nil {
		t.Error("Ease should be set")
	}
}

func TestEnterExitPoses(t *testing.T) {
	cfg := DefaultTransitionConfig()
	tests := []struct {
		name string
		got  Pose
		want Pose
	}{
		{"enter forward from below", EnterPose(Forward, cfg), Pose{OffsetY: 1, Alpha: 0, Scale: 0.9}},
		{"enter backward from above", EnterPose(Backward, cfg), Pose{OffsetY: -1, Alpha: 0, Scale: 0.9}},
		{"exit forward upward", ExitPose(Forward, cfg), Pose{OffsetY: -1, Alpha: 0, Scale: 1.1}},
		{"exit backward downward", ExitPose(Backward, cfg), Pose{OffsetY: 1, Alpha: 0, Scale: 1.1}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: pose = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestTransitionEnterLifecycle(t *testing.T) {
	tr := NewSlideTransition(linearTransition())
	if tr.State() != TransitionHidden || tr.Rendered() {
		t.Fatalf("new transition state = %v", tr.State())
	}

	tr.SetActive(true, Forward)
	if tr.State() != TransitionEntering {
		t.Fatalf("state = %v, want entering", tr.State())
	}
	if p := tr.Pose(); p.OffsetY != 1 || p.Alpha != 0 {
		t.Errorf("start pose = %+v, want below and transparent", p)
	}

	tr.Update(0.4)
	mid := tr.Pose()
	if mid.OffsetY <= 0 || mid.OffsetY >= 1 {
		t.Errorf("mid OffsetY = %f, want in (0, 1)", mid.OffsetY)
	}

	tr.Update(0.4)
	tr.Update(0.01)
	if tr.State() != TransitionVisible {
		t.Fatalf("state = %v, want visible", tr.State())
	}
	if tr.Pose() != PoseCenter {
		t.Errorf("final pose = %+v, want center", tr.Pose())
	}
}

func TestTransitionExitLifecycle(t *testing.T) {
	tr := NewSlideTransition(linearTransition())
	tr.Show()
	tr.SetActive(false, Forward)
	if tr.State() != TransitionExiting {
		t.Fatalf("state = %v, want exiting", tr.State())
	}
	runFor(tr, 1)
	if tr.State() != TransitionHidden {
		t.Fatalf("state = %v, want hidden", tr.State())
	}
	p := tr.Pose()
	if math.Abs(p.OffsetY+1) > 0.01 || math.Abs(p.Scale-1.1) > 0.01 || p.Alpha > 0.01 {
		t.Errorf("exit pose = %+v, want above, scaled up, transparent", p)
	}
}

func TestTransitionBackwardEnterFromAbove(t *testing.T) {
	tr := NewSlideTransition(linearTransition())
	tr.SetActive(true, Backward)
	if tr.Pose().OffsetY != -1 {
		t.Errorf("OffsetY = %f, want -1", tr.Pose().OffsetY)
	}
}

func TestTransitionReenterWhileExiting(t *testing.T) {
	tr := NewSlideTransition(linearTransition())
	tr.Show()
	tr.SetActive(false, Forward)
	tr.Update(0.2)
	mid := tr.Pose()

	tr.SetActive(true, Backward)
	if tr.State() != TransitionEntering {
		t.Fatalf("state = %v, want entering", tr.State())
	}
	if tr.Pose() != mid {
		t.Errorf("re-enter jumped from %+v to %+v", mid, tr.Pose())
	}
	runFor(tr, 1)
	if tr.State() != TransitionVisible {
		t.Errorf("state = %v, want visible", tr.State())
	}
}

func TestTransitionRedundantCallsIgnored(t *testing.T) {
	tr := NewSlideTransition(linearTransition())
	tr.SetActive(false, Forward)
	if tr.State() != TransitionHidden {
		t.Errorf("deactivating hidden: state = %v", tr.State())
	}
	tr.SetActive(true, Forward)
	tr.Update(0.3)
	before := tr.Pose()
	tr.SetActive(true, Backward)
	if tr.Pose() != before || tr.State() != TransitionEntering {
		t.Errorf("re-activating restarted the enter animation")
	}
}

func TestTransitionStateString(t *testing.T) {
	want := map[TransitionState]string{
		TransitionHidden:   "hidden",
		TransitionEntering: "entering",
		TransitionVisible:  "visible",
		TransitionExiting:  "exiting",
	}
	for s, w := range want {
		if s.String() != w {
			t.Errorf("String() = %q, want %q", s.String(), w)
		}
	}
}
