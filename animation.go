package wrapped

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenValue or TweenPose and call Update(dt) each frame; the group writes the
// interpolated values through to the bound fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	delay  float32
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the bound
// fields. While a start delay is pending nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		// Carry the overshoot into the tweens.
		dt = -g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// WithDelay postpones the start of the group by seconds and returns g.
func (g *TweenGroup) WithDelay(seconds float32) *TweenGroup {
	g.delay = seconds
	return g
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenValue creates a TweenGroup that animates a single field to the target
// value over duration seconds.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(field, to, duration, fn)
	return g
}

// Pose is the animatable placement of a slide: a vertical offset expressed as
// a fraction of the viewport height, an opacity, and a uniform scale.
type Pose struct {
	OffsetY float64
	Alpha   float64
	Scale   float64
}

// PoseCenter is a fully visible, centered, unscaled pose.
var PoseCenter = Pose{OffsetY: 0, Alpha: 1, Scale: 1}

// TweenPose creates a TweenGroup that animates all fields of p to the target
// pose over duration seconds.
func TweenPose(p *Pose, to Pose, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&p.OffsetY, to.OffsetY, duration, fn)
	g.add(&p.Alpha, to.Alpha, duration, fn)
	g.add(&p.Scale, to.Scale, duration, fn)
	return g
}

// Reveal is a 0→1 progress value that starts after a delay. Slide views use
// one per element to stagger their entrance.
type Reveal struct {
	Delay    float32
	Duration float32
	Ease     ease.TweenFunc

	value float64
	group *TweenGroup
}

// NewReveal creates a reveal that runs for duration seconds after delay
// seconds. A nil ease function means ease.OutCubic.
func NewReveal(delay, duration float32, fn ease.TweenFunc) *Reveal {
	if fn == nil {
		fn = ease.OutCubic
	}
	r := &Reveal{Delay: delay, Duration: duration, Ease: fn}
	r.Restart()
	return r
}

// Restart rewinds the reveal to 0 and re-arms its delay.
func (r *Reveal) Restart() {
	r.value = 0
	r.group = TweenValue(&r.value, 1, r.Duration, r.Ease).WithDelay(r.Delay)
}

// Update advances the reveal by dt seconds.
func (r *Reveal) Update(dt float32) {
	r.group.Update(dt)
}

// Value returns the eased progress. Overshooting curves may leave [0, 1].
func (r *Reveal) Value() float64 {
	return r.value
}

// Done reports whether the reveal has finished.
func (r *Reveal) Done() bool {
	return r.group.Done
}

// Stagger builds n reveals whose delays start at base and grow by step.
func Stagger(n int, base, step, duration float32, fn ease.TweenFunc) []*Reveal {
	out := make([]*Reveal, n)
	for i := range out {
		out[i] = NewReveal(base+float32(i)*step, duration, fn)
	}
	return out
}

// Loop is a repeating 0→1 phase with the given period in seconds, used for
// idle motion such as the intro's bouncing hint.
type Loop struct {
	Period float64
	t      float64
}

// Update advances the loop by dt seconds.
func (l *Loop) Update(dt float32) {
	if l.Period <= 0 {
		return
	}
	l.t += float64(dt)
	for l.t >= l.Period {
		l.t -= l.Period
	}
}

// Phase returns the current position within the period in [0, 1).
func (l *Loop) Phase() float64 {
	if l.Period <= 0 {
		return 0
	}
	return l.t / l.Period
}
