package wrapped

import "testing"

func activeCount(d *Deck) int {
	n := 0
	for i := 0; i < d.Len(); i++ {
		if d.Transition(i).Active() {
			n++
		}
	}
	return n
}

func TestNewDeckShowsFirstSlide(t *testing.T) {
	d := NewDeck(4, DefaultTransitionConfig())
	if d.Transition(0).State() != TransitionVisible {
		t.Errorf("slide 0 state = %v, want visible", d.Transition(0).State())
	}
	for i := 1; i < 4; i++ {
		if d.Transition(i).Rendered() {
			t.Errorf("slide %d should be hidden", i)
		}
	}
	if got := d.Rendered(); len(got) != 1 || got[0] != 0 {
		t.Errorf("Rendered = %v, want [0]", got)
	}
}

func TestDeckSingleActiveSlide(t *testing.T) {
	p := NewPresentation(5)
	d := NewDeck(5, linearTransition())
	d.Attach(p)

	steps := []Action{ActionAdvance, ActionAdvance, ActionRetreat, ActionAdvance, ActionAdvance, ActionReset}
	for _, a := range steps {
		Dispatch(p, a)
		if n := activeCount(d); n != 1 {
			t.Fatalf("after %v active slides = %d, want 1", a, n)
		}
		if !d.Transition(p.State().Current).Active() {
			t.Fatalf("current slide %d not active", p.State().Current)
		}
		d.Update(0.1)
	}
}

func TestDeckExitingDrawnBeforeActive(t *testing.T) {
	p := NewPresentation(3)
	d := NewDeck(3, linearTransition())
	d.Attach(p)
	p.Advance()

	got := d.Rendered()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("Rendered = %v, want [0 1]", got)
	}
	if d.Transition(0).State() != TransitionExiting {
		t.Errorf("slide 0 state = %v, want exiting", d.Transition(0).State())
	}

	for i := 0; i < 60; i++ {
		d.Update(1.0 / 60)
	}
	got = d.Rendered()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("after transition Rendered = %v, want [1]", got)
	}
}

func TestDeckUsesNavigationDirection(t *testing.T) {
	p := NewPresentation(3)
	d := NewDeck(3, linearTransition())
	d.Attach(p)
	p.Advance()
	for i := 0; i < 60; i++ {
		d.Update(1.0 / 60)
	}
	p.Retreat()
	if got := d.Transition(0).Pose().OffsetY; got != -1 {
		t.Errorf("entering slide OffsetY = %f, want -1 (from above)", got)
	}
	d.Update(0.4)
	if got := d.Transition(1).Pose().OffsetY; got <= 0 {
		t.Errorf("exiting slide OffsetY = %f, want moving down", got)
	}
}

func TestDeckSyncOutOfRangePanics(t *testing.T) {
	d := NewDeck(2, DefaultTransitionConfig())
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	d.Sync(State{Current: 5, Direction: Forward, Total: 2})
}
