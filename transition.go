package wrapped

import "github.com/tanema/gween/ease"

// TransitionState is the lifecycle state of one slide's visibility.
type TransitionState uint8

const (
	TransitionHidden   TransitionState = iota // not rendered
	TransitionEntering                        // animating toward the center pose
	TransitionVisible                         // resting at the center pose
	TransitionExiting                         // animating off screen
)

// String implements fmt.Stringer.
func (s TransitionState) String() string {
	switch s {
	case TransitionEntering:
		return "entering"
	case TransitionVisible:
		return "visible"
	case TransitionExiting:
		return "exiting"
	default:
		return "hidden"
	}
}

// TransitionConfig configures the enter and exit animation of a slide.
type TransitionConfig struct {
	Duration   float32        // seconds, for both enter and exit
	Ease       ease.TweenFunc // timing curve
	EnterScale float64        // starting scale when entering
	ExitScale  float64        // final scale when exiting
}

// DefaultTransitionConfig slides over 0.8s with an expo-out curve, growing from
// 0.9 on enter and to 1.1 on exit.
func DefaultTransitionConfig() TransitionConfig {
	return TransitionConfig{
		Duration:   0.8,
		Ease:       ExpoOut,
		EnterScale: 0.9,
		ExitScale:  1.1,
	}
}

// EnterPose is where an entering slide starts: one viewport below when moving
// forward, one above when moving backward, transparent and scaled down.
func EnterPose(dir Direction, cfg TransitionConfig) Pose {
	off := 1.0
	if dir < 0 {
		off = -1
	}
	return Pose{OffsetY: off, Alpha: 0, Scale: cfg.EnterScale}
}

// ExitPose is where an exiting slide ends: one viewport above when moving
// forward, one below when moving backward, transparent and scaled up.
func ExitPose(dir Direction, cfg TransitionConfig) Pose {
	off := -1.0
	if dir < 0 {
		off = 1
	}
	return Pose{OffsetY: off, Alpha: 0, Scale: cfg.ExitScale}
}

// SlideTransition is the visibility state machine of a single slide:
// hidden → entering → visible → exiting → hidden. It knows nothing about the
// slide's content.
type SlideTransition struct {
	cfg   TransitionConfig
	state TransitionState
	pose  Pose
	group *TweenGroup
}

// NewSlideTransition creates a hidden transition.
func NewSlideTransition(cfg TransitionConfig) *SlideTransition {
	return &SlideTransition{cfg: cfg, pose: EnterPose(Forward, cfg)}
}

// State returns the current lifecycle state.
func (t *SlideTransition) State() TransitionState {
	return t.state
}

// Pose returns the current placement.
func (t *SlideTransition) Pose() Pose {
	return t.pose
}

// Rendered reports whether the slide must be drawn this frame.
func (t *SlideTransition) Rendered() bool {
	return t.state != TransitionHidden
}

// Active reports whether the slide is the one being shown (entering or
// visible), as opposed to leaving or gone.
func (t *SlideTransition) Active() bool {
	return t.state == TransitionEntering || t.state == TransitionVisible
}

// Show makes the slide visible at the center pose without animating.
func (t *SlideTransition) Show() {
	t.state = TransitionVisible
	t.pose = PoseCenter
	t.group = nil
}

// SetActive starts the enter animation when active becomes true and the exit
// animation when it becomes false. dir selects the variant. Switching while a
// previous animation is running continues from the current pose.
func (t *SlideTransition) SetActive(active bool, dir Direction) {
	if active {
		switch t.state {
		case TransitionHidden:
			t.pose = EnterPose(dir, t.cfg)
		case TransitionExiting:
		default:
			return
		}
		t.state = TransitionEntering
		t.group = TweenPose(&t.pose, PoseCenter, t.cfg.Duration, t.cfg.Ease)
		return
	}

	if !t.Active() {
		return
	}
	t.state = TransitionExiting
	t.group = TweenPose(&t.pose, ExitPose(dir, t.cfg), t.cfg.Duration, t.cfg.Ease)
}

// Update advances the running animation by dt seconds.
func (t *SlideTransition) Update(dt float32) {
	if t.group == nil {
		return
	}
	t.group.Update(dt)
	if !t.group.Done {
		return
	}
	t.group = nil
	switch t.state {
	case TransitionEntering:
		t.state = TransitionVisible
		t.pose = PoseCenter
	case TransitionExiting:
		t.state = TransitionHidden
	}
}
