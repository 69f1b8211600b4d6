package wrapped

// Deck holds one SlideTransition per slide and keeps at most one of them
// active. The first slide starts visible without an enter animation.
type Deck struct {
	slides  []*SlideTransition
	current int
	order   []int
}

// NewDeck creates a deck of n slides with the given transition settings.
// Panics if n < 1.
func NewDeck(n int, cfg TransitionConfig) *Deck {
	if n < 1 {
		panic("wrapped: deck needs at least one slide")
	}
	d := &Deck{slides: make([]*SlideTransition, n)}
	for i := range d.slides {
		d.slides[i] = NewSlideTransition(cfg)
	}
	d.slides[0].Show()
	return d
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.slides)
}

// Current returns the index of the active slide.
func (d *Deck) Current() int {
	return d.current
}

// Transition returns the transition of slide i.
func (d *Deck) Transition(i int) *SlideTransition {
	return d.slides[i]
}

// Sync activates the slide named by s and starts the exit of every other
// active slide, using s.Direction for both.
func (d *Deck) Sync(s State) {
	if s.Current < 0 || s.Current >= len(d.slides) {
		panic("wrapped: slide index out of range")
	}
	for i, t := range d.slides {
		if i != s.Current && t.Active() {
			t.SetActive(false, s.Direction)
		}
	}
	d.slides[s.Current].SetActive(true, s.Direction)
	d.current = s.Current
}

// Attach subscribes the deck to p's changes and syncs it to p's current
// state.
func (d *Deck) Attach(p *Presentation) CallbackHandle {
	d.Sync(p.State())
	return p.OnChange(func(_, next State) {
		d.Sync(next)
	})
}

// Update advances every running transition by dt seconds.
func (d *Deck) Update(dt float32) {
	for _, t := range d.slides {
		t.Update(dt)
	}
}

// Rendered returns the indices of slides to draw this frame in painter order:
// exiting slides first, the active slide last. The returned slice is reused
// by the next call.
func (d *Deck) Rendered() []int {
	d.order = d.order[:0]
	for i, t := range d.slides {
		if t.State() == TransitionExiting {
			d.order = append(d.order, i)
		}
	}
	for i, t := range d.slides {
		if t.Active() {
			d.order = append(d.order, i)
		}
	}
	return d.order
}
