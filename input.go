package wrapped

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultSwipeThreshold is the vertical travel in pixels a touch must exceed
// before it counts as a swipe. Travel exactly at the threshold is ignored.
const DefaultSwipeThreshold = 50.0

// maxTouches bounds the number of simultaneously tracked touches.
const maxTouches = 10

// Action is a navigation intent produced by input.
type Action uint8

const (
	ActionNone    Action = iota // no navigation
	ActionAdvance               // go to the next slide
	ActionRetreat               // go to the previous slide
	ActionReset                 // return to the first slide
	ActionQuit                  // close the window
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Dispatch applies a navigation action to p. Reports whether the state
// changed. ActionNone and ActionQuit never change the presentation.
func Dispatch(p *Presentation, a Action) bool {
	switch a {
	case ActionAdvance:
		return p.Advance()
	case ActionRetreat:
		return p.Retreat()
	case ActionReset:
		return p.Reset()
	default:
		return false
	}
}

// KeyMap maps keyboard keys to actions.
type KeyMap map[ebiten.Key]Action

// DefaultKeyMap returns the standard bindings: down, right and space advance;
// up and left retreat; escape quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ebiten.KeyArrowDown:  ActionAdvance,
		ebiten.KeyArrowRight: ActionAdvance,
		ebiten.KeySpace:      ActionAdvance,
		ebiten.KeyArrowUp:    ActionRetreat,
		ebiten.KeyArrowLeft:  ActionRetreat,
		ebiten.KeyEscape:     ActionQuit,
	}
}

// SwipeAction classifies a vertical touch gesture sampled at its start and
// end. Moving the finger up by more than threshold advances; moving it down
// by more than threshold retreats. Anything else is a tap.
func SwipeAction(startY, endY, threshold float64) Action {
	switch {
	case startY-endY > threshold:
		return ActionAdvance
	case endY-startY > threshold:
		return ActionRetreat
	default:
		return ActionNone
	}
}

// Button is a clickable on-screen region bound to an action. Disabled or
// hidden buttons never fire.
type Button struct {
	Name    string
	Bounds  Rect
	Action  Action
	Enabled bool
	Visible bool

	hovered bool
}

// Hovered reports whether the mouse cursor was over the button during the
// last poll.
func (b *Button) Hovered() bool {
	return b.hovered
}

func (b *Button) hit(x, y float64) bool {
	return b.Visible && b.Enabled && b.Bounds.Contains(x, y)
}

// --- Synthetic input ---

type syntheticKind uint8

const (
	syntheticKey syntheticKind = iota
	syntheticSwipe
	syntheticClick
)

// syntheticEvent is a queued input event injected by scripts or tests. It is
// consumed on the next Poll, one per frame, exactly like real input.
type syntheticEvent struct {
	kind  syntheticKind
	key   ebiten.Key
	x, y  float64
	fromY float64
	toY   float64
}

// touchState remembers where a touch began.
type touchState struct {
	id     ebiten.TouchID
	startX float64
	startY float64
	used   bool
}

// Input translates keyboard, touch and mouse events into navigation actions.
type Input struct {
	Keys           KeyMap
	SwipeThreshold float64

	buttons     []*Button
	pressed     *Button // button under the mouse at press time
	touches     [maxTouches]touchState
	touchBuf    []ebiten.TouchID
	keyBuf      []ebiten.Key
	injectQueue []syntheticEvent
	actions     []Action
}

// NewInput creates an Input with the default key map and swipe threshold.
func NewInput() *Input {
	return &Input{
		Keys:           DefaultKeyMap(),
		SwipeThreshold: DefaultSwipeThreshold,
	}
}

// KeyAction returns the action bound to k, or ActionNone.
func (in *Input) KeyAction(k ebiten.Key) Action {
	return in.Keys[k]
}

// AddButton registers a clickable button. Buttons are hit-tested in
// registration order.
func (in *Input) AddButton(b *Button) {
	in.buttons = append(in.buttons, b)
}

// Buttons returns the registered buttons. The returned slice MUST NOT be
// mutated by the caller.
func (in *Input) Buttons() []*Button {
	return in.buttons
}

// ButtonAt returns the first visible, enabled button containing (x, y).
func (in *Input) ButtonAt(x, y float64) *Button {
	for _, b := range in.buttons {
		if b.hit(x, y) {
			return b
		}
	}
	return nil
}

// Click returns the action of the button at (x, y), or ActionNone.
func (in *Input) Click(x, y float64) Action {
	if b := in.ButtonAt(x, y); b != nil {
		return b.Action
	}
	return ActionNone
}

// InjectKey queues a synthetic key press.
func (in *Input) InjectKey(k ebiten.Key) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticKey, key: k})
}

// InjectSwipe queues a synthetic vertical touch gesture from fromY to toY.
func (in *Input) InjectSwipe(fromY, toY float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticSwipe, fromY: fromY, toY: toY})
}

// InjectClick queues a synthetic click at screen coordinates (x, y).
func (in *Input) InjectClick(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// Pending reports how many injected events are waiting to be consumed.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// Poll collects this frame's actions. At most one injected event is consumed
// per call; real device input is read in the same call. The returned slice is
// reused by the next Poll.
func (in *Input) Poll() []Action {
	in.actions = in.actions[:0]
	in.pollInjected()
	in.pollKeys()
	in.pollMouse()
	in.pollTouches()
	return in.actions
}

func (in *Input) emit(a Action) {
	if a != ActionNone {
		in.actions = append(in.actions, a)
	}
}

// pollInjected pops one synthetic event from the queue.
func (in *Input) pollInjected() {
	if len(in.injectQueue) == 0 {
		return
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		in.emit(in.KeyAction(evt.key))
	case syntheticSwipe:
		in.emit(SwipeAction(evt.fromY, evt.toY, in.SwipeThreshold))
	case syntheticClick:
		in.emit(in.Click(evt.x, evt.y))
	}
}

func (in *Input) pollKeys() {
	in.keyBuf = inpututil.AppendJustPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		in.emit(in.KeyAction(k))
	}
}

// pollMouse fires a button's action on press then release over the same
// button.
func (in *Input) pollMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	for _, b := range in.buttons {
		b.hovered = b.hit(x, y)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.pressed = in.ButtonAt(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if in.pressed != nil && in.ButtonAt(x, y) == in.pressed {
			in.emit(in.pressed.Action)
		}
		in.pressed = nil
	}
}

// pollTouches records touch start points and classifies each touch when it
// ends: a swipe past the threshold navigates, a tap on a button clicks it.
func (in *Input) pollTouches() {
	in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
	for _, id := range in.touchBuf {
		tx, ty := ebiten.TouchPosition(id)
		in.beginTouch(id, float64(tx), float64(ty))
	}

	in.touchBuf = inpututil.AppendJustReleasedTouchIDs(in.touchBuf[:0])
	for _, id := range in.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		in.endTouch(id, float64(tx), float64(ty))
	}
}

func (in *Input) beginTouch(id ebiten.TouchID, x, y float64) {
	for i := range in.touches {
		if !in.touches[i].used {
			in.touches[i] = touchState{id: id, startX: x, startY: y, used: true}
			return
		}
	}
}

func (in *Input) endTouch(id ebiten.TouchID, x, y float64) {
	for i := range in.touches {
		ts := &in.touches[i]
		if !ts.used || ts.id != id {
			continue
		}
		ts.used = false
		if a := SwipeAction(ts.startY, y, in.SwipeThreshold); a != ActionNone {
			in.emit(a)
			return
		}
		if b := in.ButtonAt(ts.startX, ts.startY); b != nil && in.ButtonAt(x, y) == b {
			in.emit(b.Action)
		}
		return
	}
}
