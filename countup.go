package wrapped

import "math"

// DefaultCountUpDuration is how long a CountUp takes to reach its target.
const DefaultCountUpDuration = 2.0

// CountUpAt returns the integer a count-up toward target shows after elapsed
// seconds: floor(target * min(elapsed/duration, 1)).
func CountUpAt(target int, duration, elapsed float64) int {
	if duration <= 0 {
		return target
	}
	progress := math.Min(math.Max(elapsed, 0)/duration, 1)
	return int(math.Floor(float64(target) * progress))
}

// CountUp animates a displayed integer from 0 to a target. Call Update once
// per tick; it stops sampling once the target is reached.
type CountUp struct {
	target   int
	duration float64
	elapsed  float64
	value    int
	done     bool
}

// NewCountUp creates a count-up toward target over duration seconds.
func NewCountUp(target int, duration float64) *CountUp {
	c := &CountUp{target: target, duration: duration}
	c.Restart()
	return c
}

// Target returns the value being counted toward.
func (c *CountUp) Target() int {
	return c.target
}

// SetTarget changes the target. A different target restarts the count from 0.
func (c *CountUp) SetTarget(target int) {
	if target == c.target {
		return
	}
	c.target = target
	c.Restart()
}

// Restart rewinds the count to 0.
func (c *CountUp) Restart() {
	c.elapsed = 0
	c.value = CountUpAt(c.target, c.duration, 0)
	c.done = c.duration <= 0
}

// Update advances the animation by dt seconds.
func (c *CountUp) Update(dt float64) {
	if c.done {
		return
	}
	c.elapsed += dt
	c.value = CountUpAt(c.target, c.duration, c.elapsed)
	if c.elapsed >= c.duration {
		c.value = c.target
		c.done = true
	}
}

// Value returns the integer currently displayed.
func (c *CountUp) Value() int {
	return c.value
}

// Done reports whether the target has been reached.
func (c *CountUp) Done() bool {
	return c.done
}
