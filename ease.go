package wrapped

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns a gween easing function for the CSS-style timing curve
// through (0,0), (x1,y1), (x2,y2), (1,1). x1 and x2 are clamped to [0, 1]
// so the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	x1 = clamp01(x1)
	x2 = clamp01(x2)
	bez := bezierCurve{x1: x1, y1: y1, x2: x2, y2: y2}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := clamp01(float64(t / d))
		return b + c*float32(bez.at(p))
	}
}

// ExpoOut is the slide transition curve, cubic-bezier(0.16, 1, 0.3, 1).
var ExpoOut = CubicBezier(0.16, 1, 0.3, 1)

type bezierCurve struct {
	x1, y1, x2, y2 float64
}

// bezierCoord evaluates one axis of the curve at parameter s.
func bezierCoord(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}

// at returns y for the given x progress in [0, 1].
func (c bezierCurve) at(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezierCoord(c.solve(x), c.y1, c.y2)
}

// solve finds the curve parameter whose x coordinate equals x. Newton steps
// first, bisection when the slope is too flat to trust.
func (c bezierCurve) solve(x float64) float64 {
	const eps = 1e-7
	s := x
	for i := 0; i < 8; i++ {
		dx := bezierCoord(s, c.x1, c.x2) - x
		if math.Abs(dx) < eps {
			return s
		}
		slope := bezierSlope(s, c.x1, c.x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		s -= dx / slope
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 64 && hi-lo > eps; i++ {
		if bezierCoord(s, c.x1, c.x2) < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}
