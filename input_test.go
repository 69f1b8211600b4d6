package wrapped

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultKeyMap(t *testing.T) {
	in := NewInput()
	tests := []struct {
		key  ebiten.Key
		want Action
	}{
		{ebiten.KeyArrowDown, ActionAdvance},
		{ebiten.KeyArrowRight, ActionAdvance},
		{ebiten.KeySpace, ActionAdvance},
		{ebiten.KeyArrowUp, ActionRetreat},
		{ebiten.KeyArrowLeft, ActionRetreat},
		{ebiten.KeyEscape, ActionQuit},
		{ebiten.KeyA, ActionNone},
		{ebiten.KeyEnter, ActionNone},
	}
	for _, tt := range tests {
		if got := in.KeyAction(tt.key); got != tt.want {
			t.Errorf("KeyAction(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSwipeActionThreshold(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       Action
	}{
		{"up exactly at threshold", 200, 150, ActionNone},
		{"up one past threshold", 200, 149, ActionAdvance},
		{"down exactly at threshold", 150, 200, ActionNone},
		{"down one past threshold", 150, 201, ActionRetreat},
		{"tap", 300, 300, ActionNone},
		{"small jitter", 300, 320, ActionNone},
		{"long swipe up", 600, 100, ActionAdvance},
	}
	for _, tt := range tests {
		if got := SwipeAction(tt.start, tt.end, DefaultSwipeThreshold); got != tt.want {
			t.Errorf("%s: SwipeAction(%v, %v) = %v, want %v", tt.name, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDispatch(t *testing.T) {
	p := NewPresentation(3)
	if Dispatch(p, ActionNone) {
		t.Error("ActionNone should not change state")
	}
	if Dispatch(p, ActionQuit) {
		t.Error("ActionQuit should not change state")
	}
	if !Dispatch(p, ActionAdvance) || p.State().Current != 1 {
		t.Errorf("advance: state = %+v", p.State())
	}
	if !Dispatch(p, ActionRetreat) || p.State().Current != 0 {
		t.Errorf("retreat: state = %+v", p.State())
	}
	Dispatch(p, ActionAdvance)
	Dispatch(p, ActionAdvance)
	if !Dispatch(p, ActionReset) || p.State().Current != 0 {
		t.Errorf("reset: state = %+v", p.State())
	}
}

func TestButtonHitTesting(t *testing.T) {
	in := NewInput()
	next := &Button{Name: "next", Bounds: Rect{X: 100, Y: 100, Width: 40, Height: 40}, Action: ActionAdvance, Enabled: true, Visible: true}
	restart := &Button{Name: "restart", Bounds: Rect{X: 0, Y: 0, Width: 50, Height: 20}, Action: ActionReset, Enabled: true}
	in.AddButton(next)
	in.AddButton(restart)

	if got := in.Click(120, 120); got != ActionAdvance {
		t.Errorf("Click on next = %v, want advance", got)
	}
	if got := in.Click(10, 10); got != ActionNone {
		t.Errorf("Click on hidden restart = %v, want none", got)
	}
	restart.Visible = true
	if got := in.Click(10, 10); got != ActionReset {
		t.Errorf("Click on visible restart = %v, want reset", got)
	}
	next.Enabled = false
	if got := in.Click(120, 120); got != ActionNone {
		t.Errorf("Click on disabled next = %v, want none", got)
	}
	if got := in.Click(500, 500); got != ActionNone {
		t.Errorf("Click on empty space = %v, want none", got)
	}
}

func TestInjectedEventsConsumedOnePerPoll(t *testing.T) {
	in := NewInput()
	in.AddButton(&Button{Bounds: Rect{Width: 10, Height: 10}, Action: ActionReset, Enabled: true, Visible: true})
	in.InjectKey(ebiten.KeyArrowDown)
	in.InjectSwipe(100, 160)
	in.InjectClick(5, 5)
	if in.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", in.Pending())
	}

	want := []Action{ActionAdvance, ActionRetreat, ActionReset}
	for i, w := range want {
		got := in.Poll()
		if len(got) != 1 || got[0] != w {
			t.Errorf("poll %d = %v, want [%v]", i, got, w)
		}
	}
	if in.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", in.Pending())
	}
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("idle poll = %v, want none", got)
	}
}

func TestInjectedUnboundKeyEmitsNothing(t *testing.T) {
	in := NewInput()
	in.InjectKey(ebiten.KeyQ)
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("poll = %v, want none", got)
	}
}

func TestTouchSwipe(t *testing.T) {
	in := NewInput()
	in.beginTouch(1, 200, 400)
	in.endTouch(1, 200, 300)
	if len(in.actions) != 1 || in.actions[0] != ActionAdvance {
		t.Errorf("actions = %v, want [advance]", in.actions)
	}
}

func TestTouchTapOnButton(t *testing.T) {
	in := NewInput()
	in.AddButton(&Button{Bounds: Rect{X: 0, Y: 0, Width: 100, Height: 100}, Action: ActionRetreat, Enabled: true, Visible: true})

	in.beginTouch(7, 50, 50)
	in.endTouch(7, 52, 55)
	if len(in.actions) != 1 || in.actions[0] != ActionRetreat {
		t.Fatalf("actions = %v, want [retreat]", in.actions)
	}

	// Starting on the button and ending outside it is not a tap.
	in.actions = in.actions[:0]
	in.beginTouch(8, 50, 50)
	in.endTouch(8, 140, 60)
	if len(in.actions) != 0 {
		t.Errorf("actions = %v, want none", in.actions)
	}
}

func TestTouchSlotsReleased(t *testing.T) {
	in := NewInput()
	for i := 0; i < maxTouches; i++ {
		in.beginTouch(ebiten.TouchID(i), 0, 0)
	}
	for i := 0; i < maxTouches; i++ {
		in.endTouch(ebiten.TouchID(i), 0, 0)
	}
	for i, ts := range in.touches {
		if ts.used {
			t.Errorf("slot %d still used", i)
		}
	}
}

func TestActionString(t *testing.T) {
	names := map[Action]string{
		ActionNone:    "none",
		ActionAdvance: "advance",
		ActionRetreat: "retreat",
		ActionReset:   "reset",
		ActionQuit:    "quit",
	}
	for a, want := range names {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, a.String(), want)
		}
	}
}
