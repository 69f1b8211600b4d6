package wrapped

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Button names usable from scripts.
const (
	ButtonPrev    = "prev"
	ButtonNext    = "next"
	ButtonRestart = "restart"
)

func knownButton(name string) bool {
	switch name {
	case ButtonPrev, ButtonNext, ButtonRestart:
		return true
	}
	return false
}

// progressDuration is how long the progress bar takes to reach a new ratio.
const progressDuration = 0.3

// RunConfig holds window and runtime settings.
type RunConfig struct {
	Title         string
	Width         int // logical canvas width
	Height        int // logical canvas height
	Fullscreen    bool
	ShowFPS       bool
	Debug         bool   // log frame stats at debug level
	ScreenshotDir string // default DefaultScreenshotDir
	Script        *Script
	Logger        *zap.Logger // nil means no logging
}

// DefaultRunConfig returns a 1280x800 window titled "Wrapped".
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Wrapped",
		Width:         1280,
		Height:        800,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

func (c *RunConfig) applyDefaults() {
	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = def.ScreenshotDir
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Game is the ebiten.Game that plays a dataset as a slideshow. Input drives
// the Presentation; its change subscribers move the Deck, restart the
// entering view's animations, retarget the progress bar and log.
type Game struct {
	cfg  RunConfig
	log  *zap.Logger
	data *Dataset

	pres     *Presentation
	deck     *Deck
	views    []View
	input    *Input
	painter  *Painter
	frame    Frame
	buttons  map[string]*Button
	canvases *slideCanvases

	progress      float64
	progressTween *TweenGroup

	runner          *ScriptRunner
	screenshotQueue []string
	fps             fpsOverlay
	debugAcc        debugAccumulator
	lastUpdate      time.Duration
	quit            bool
}

// NewGame builds a game for d. The dataset is validated first; every problem
// is returned at once.
func NewGame(d *Dataset, cfg RunConfig) (*Game, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	cfg.applyDefaults()

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	views := BuildViews(d)
	g := &Game{
		cfg:      cfg,
		log:      cfg.Logger,
		data:     d,
		pres:     NewPresentation(len(views)),
		deck:     NewDeck(len(views), DefaultTransitionConfig()),
		views:    views,
		input:    NewInput(),
		painter:  NewPainter(fonts),
		canvases: newSlideCanvases(len(views)),
	}
	g.frame = Frame{
		Painter: g.painter,
		Theme:   d.Theme,
		Width:   float64(cfg.Width),
		Height:  float64(cfg.Height),
	}
	if cfg.Script != nil {
		g.runner = NewScriptRunner(cfg.Script)
	}

	g.layoutButtons()
	g.deck.Attach(g.pres)
	g.pres.OnChange(g.onSlideChange)
	g.views[0].Enter()
	g.syncChrome(g.pres.State())
	return g, nil
}

// Presentation returns the navigation controller.
func (g *Game) Presentation() *Presentation {
	return g.pres
}

// Input returns the input mapper, e.g. to inject events.
func (g *Game) Input() *Input {
	return g.input
}

// Deck returns the slide transitions.
func (g *Game) Deck() *Deck {
	return g.deck
}

// ScriptDone reports whether the attached script has finished. It is true
// when no script is attached.
func (g *Game) ScriptDone() bool {
	return g.runner == nil || g.runner.Done()
}

// Progress returns the animated progress bar ratio.
func (g *Game) Progress() float64 {
	return g.progress
}

func (g *Game) button(name string) *Button {
	return g.buttons[name]
}

// layoutButtons places the floating prev/next controls at the bottom right
// and the restart button on the outro.
func (g *Game) layoutButtons() {
	w, h := g.frame.Width, g.frame.Height
	const size, margin, gap = 48.0, 32.0, 16.0
	g.buttons = map[string]*Button{
		ButtonPrev: {
			Name:    ButtonPrev,
			Bounds:  Rect{w - margin - size, h - margin - 2*size - gap, size, size},
			Action:  ActionRetreat,
			Visible: true,
		},
		ButtonNext: {
			Name:    ButtonNext,
			Bounds:  Rect{w - margin - size, h - margin - size, size, size},
			Action:  ActionAdvance,
			Visible: true,
		},
		ButtonRestart: {
			Name:    ButtonRestart,
			Bounds:  RestartBounds(w, h),
			Action:  ActionReset,
			Enabled: true,
		},
	}
	for _, name := range []string{ButtonPrev, ButtonNext, ButtonRestart} {
		g.input.AddButton(g.buttons[name])
	}
}

// syncChrome updates button availability for state s.
func (g *Game) syncChrome(s State) {
	g.buttons[ButtonPrev].Enabled = !s.IsFirst()
	g.buttons[ButtonNext].Enabled = !s.IsLast()
	g.buttons[ButtonRestart].Visible = s.IsLast()
	g.progressTween = TweenValue(&g.progress, s.Progress(), progressDuration, ease.OutQuad)
}

func (g *Game) onSlideChange(prev, next State) {
	g.views[next.Current].Enter()
	g.syncChrome(next)
	g.log.Debug("slide changed",
		zap.Int("from", prev.Current),
		zap.Int("to", next.Current),
		zap.Stringer("direction", next.Direction),
		zap.String("title", g.views[next.Current].Title()),
		zap.Float64("progress", next.Progress()),
	)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.update(float32(1 / float64(ebiten.TPS())))
}

func (g *Game) update(dt float32) error {
	start := time.Now()
	defer func() { g.lastUpdate = time.Since(start) }()

	if g.runner != nil {
		g.runner.step(g)
	}
	for _, a := range g.input.Poll() {
		if a == ActionQuit {
			g.quit = true
			continue
		}
		Dispatch(g.pres, a)
	}
	if g.quit {
		g.log.Info("quit requested", zap.Int("slide", g.pres.State().Current))
		return ebiten.Termination
	}

	g.deck.Update(dt)
	for i, v := range g.views {
		if g.deck.Transition(i).Rendered() {
			v.Update(dt)
		} else {
			g.canvases.Release(i)
		}
	}
	if g.progressTween != nil {
		g.progressTween.Update(dt)
		if g.progressTween.Done {
			g.progressTween = nil
		}
	}
	if g.cfg.ShowFPS {
		g.fps.Update(float64(dt))
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	w, h := g.cfg.Width, g.cfg.Height
	screen.Fill(g.data.Theme.Background.RGBA())

	order := g.deck.Rendered()
	for _, i := range order {
		canvas := g.canvases.Get(i, w, h)
		g.views[i].Draw(canvas, &g.frame)
		compositeSlide(screen, canvas, g.deck.Transition(i).Pose(), float64(w), float64(h))
	}

	g.drawChrome(screen)
	if g.cfg.ShowFPS {
		g.fps.Draw(screen)
	}
	g.flushScreenshots(screen)

	g.debugLog(frameStats{
		updateTime:   g.lastUpdate,
		drawTime:     time.Since(start),
		slidesDrawn:  len(order),
		canvasesUsed: g.canvases.InUse(),
	})
}

// drawChrome draws the progress bar and the buttons above the slides.
func (g *Game) drawChrome(screen *ebiten.Image) {
	p := g.painter
	theme := g.data.Theme
	w := g.frame.Width

	p.FillRect(screen, Rect{0, 0, w, 4}, MustHexColor("#1e293b"))
	p.FillRect(screen, Rect{0, 0, w * clamp01(g.progress), 4}, theme.Primary)

	for _, name := range []string{ButtonPrev, ButtonNext} {
		b := g.buttons[name]
		alpha := 1.0
		if !b.Enabled {
			alpha = 0.2
		}
		fill := 0.1
		if b.Hovered() {
			fill = 0.2
		}
		c := b.Bounds.Center()
		p.FillCircle(screen, c, b.Bounds.Width/2, ColorWhite.WithAlpha(fill*alpha))
		dir := Forward
		if b.Action == ActionRetreat {
			dir = Backward
		}
		p.Chevron(screen, c, 8, dir, ColorWhite.WithAlpha(alpha))
	}

	if b := g.buttons[ButtonRestart]; b.Visible {
		// Ride along with the outro's own transition.
		alpha := clamp01(g.deck.Transition(len(g.views) - 1).Pose().Alpha)
		r := b.Bounds
		if b.Hovered() {
			r = scaleRect(r, 1.05)
		}
		p.FillRoundRect(screen, r, r.Height/2, theme.Primary.WithAlpha(alpha))
		c := r.Center()
		p.Text(screen, g.data.Copy.Restart, FontBold, 20, c.X-10, c.Y-12, TextAlignCenter, ColorWhite.WithAlpha(alpha))
		tw, _ := p.MeasureText(g.data.Copy.Restart, FontBold, 20)
		p.Chevron(screen, Vec2{c.X + tw/2 + 6, c.Y}, 6, Backward, ColorWhite.WithAlpha(alpha))
	}
}

// Layout implements ebiten.Game. The logical canvas has a fixed size and
// ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and plays d until the window closes, Escape is pressed
// or a script quits.
func Run(d *Dataset, cfg RunConfig) error {
	g, err := NewGame(d, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.cfg.Fullscreen)

	g.log.Info("starting",
		zap.String("title", g.cfg.Title),
		zap.Int("width", g.cfg.Width),
		zap.Int("height", g.cfg.Height),
		zap.Int("slides", len(g.views)),
		zap.Bool("scripted", g.runner != nil),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
