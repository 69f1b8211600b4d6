package wrapped

import (
	"time"

	"go.uber.org/zap"
)

// debugLogInterval is how many frames are aggregated per debug log line.
const debugLogInterval = 120

// frameStats holds per-frame timing and draw metrics.
// Only populated when RunConfig.Debug is true.
type frameStats struct {
	updateTime   time.Duration
	drawTime     time.Duration
	slidesDrawn  int
	canvasesUsed int
}

// debugAccumulator sums frameStats over debugLogInterval frames.
type debugAccumulator struct {
	frames       int
	updateTime   time.Duration
	drawTime     time.Duration
	slidesDrawn  int
	canvasesPeak int
}

// add folds one frame in and reports whether a full interval has been
// collected.
func (a *debugAccumulator) add(s frameStats) bool {
	a.frames++
	a.updateTime += s.updateTime
	a.drawTime += s.drawTime
	a.slidesDrawn += s.slidesDrawn
	a.canvasesPeak = max(a.canvasesPeak, s.canvasesUsed)
	return a.frames >= debugLogInterval
}

func (a *debugAccumulator) reset() {
	*a = debugAccumulator{}
}

// debugLog writes averaged frame stats once per interval.
func (g *Game) debugLog(stats frameStats) {
	if !g.cfg.Debug {
		return
	}
	if !g.debugAcc.add(stats) {
		return
	}
	a := &g.debugAcc
	n := time.Duration(a.frames)
	g.log.Debug("frame stats",
		zap.Int("frames", a.frames),
		zap.Duration("update_avg", a.updateTime/n),
		zap.Duration("draw_avg", a.drawTime/n),
		zap.Float64("slides_per_frame", float64(a.slidesDrawn)/float64(a.frames)),
		zap.Int("canvases_peak", a.canvasesPeak),
		zap.Int("canvases_idle", g.canvases.pool.Idle()),
	)
	a.reset()
}
