package wrapped

// State is an immutable snapshot of the presentation's navigation state.
type State struct {
	Current   int
	Direction Direction
	Total     int
}

// Progress returns the fraction of the deck reached, (Current+1)/Total.
func (s State) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Current+1) / float64(s.Total)
}

// IsFirst reports whether the first slide is current.
func (s State) IsFirst() bool { return s.Current == 0 }

// IsLast reports whether the last slide is current.
func (s State) IsLast() bool { return s.Current == s.Total-1 }

type changeHandler struct {
	id uint32
	fn func(prev, next State)
}

// CallbackHandle allows removing a registered change callback.
type CallbackHandle struct {
	id uint32
	p  *Presentation
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.p == nil {
		return
	}
	h.p.handlers = removeChangeHandler(h.p.handlers, h.id)
}

// removeChangeHandler returns s without the handler id. It never writes to
// the backing array of s, which a notification may still be ranging over.
func removeChangeHandler(s []changeHandler, id uint32) []changeHandler {
	for i := range s {
		if s[i].id == id {
			out := make([]changeHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

// Presentation owns the current slide index and navigation direction.
// Navigation is saturating: moving past either end is a no-op, never an error.
//
// Presentation is not safe for concurrent use; it is driven from the game's
// update loop.
type Presentation struct {
	state    State
	handlers []changeHandler
	nextID   uint32
}

// NewPresentation creates a controller over total slides, starting at slide 0
// moving forward. Panics if total < 1.
func NewPresentation(total int) *Presentation {
	if total < 1 {
		panic("wrapped: presentation needs at least one slide")
	}
	return &Presentation{state: State{Current: 0, Direction: Forward, Total: total}}
}

// State returns the current snapshot.
func (p *Presentation) State() State {
	return p.state
}

// Progress returns the current progress ratio.
func (p *Presentation) Progress() float64 {
	return p.state.Progress()
}

// Advance moves to the next slide. Reports whether the index changed.
func (p *Presentation) Advance() bool {
	if p.state.Current >= p.state.Total-1 {
		return false
	}
	next := p.state
	next.Direction = Forward
	next.Current++
	p.commit(next)
	return true
}

// Retreat moves to the previous slide. Reports whether the index changed.
func (p *Presentation) Retreat() bool {
	if p.state.Current <= 0 {
		return false
	}
	next := p.state
	next.Direction = Backward
	next.Current--
	p.commit(next)
	return true
}

// Reset returns to the first slide. The direction is set to Backward so the
// first slide slides back in from above.
func (p *Presentation) Reset() bool {
	if p.state.Current == 0 {
		return false
	}
	next := p.state
	next.Direction = Backward
	next.Current = 0
	p.commit(next)
	return true
}

// OnChange registers fn to be called synchronously after every state change.
// fn may remove its own or any other handle while it runs.
func (p *Presentation) OnChange(fn func(prev, next State)) CallbackHandle {
	p.nextID++
	id := p.nextID
	p.handlers = append(p.handlers, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, p: p}
}

func (p *Presentation) commit(next State) {
	prev := p.state
	p.state = next
	// Handlers registered or removed by a handler take effect from the next
	// change; this one notifies the set registered when it started.
	for _, h := range p.handlers {
		h.fn(prev, next)
	}
}
