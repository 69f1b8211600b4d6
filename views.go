package wrapped

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// SlideCount is the number of slides in the show.
const SlideCount = 16

// Frame is what a view needs to draw: the painter, the palette and the
// logical canvas size.
type Frame struct {
	Painter *Painter
	Theme   Theme
	Width   float64
	Height  float64
}

// Heading draws a centered bold title with its top at y.
func (f *Frame) Heading(dst *ebiten.Image, s string, y float64) {
	f.Painter.Text(dst, s, FontBold, 34, f.Width/2, y, TextAlignCenter, f.Theme.Text)
}

// Content returns a centered column of the given maximum width.
func (f *Frame) Content(maxWidth float64) (x, width float64) {
	width = math.Min(maxWidth, f.Width-96)
	return (f.Width - width) / 2, width
}

// View renders one slide from its slice of the dataset.
type View interface {
	// Title names the slide in outlines and logs.
	Title() string
	// Enter restarts the slide's entrance animations.
	Enter()
	// Update advances animations by dt seconds.
	Update(dt float32)
	// Draw renders the slide onto dst, which covers the whole frame.
	Draw(dst *ebiten.Image, f *Frame)
}

// BuildViews returns the slides for d in presentation order.
func BuildViews(d *Dataset) []View {
	return []View{
		newIntroView(d),
		newTimeView(d),
		newLaborView(d),
		newFunnelView(d),
		newClassesView(d),
		newTravelView(d),
		newPhotosView(d),
		newMusicView(d),
		newTherapyView(d),
		newCodeView(d),
		newTokensView(d),
		newConversationsView(d),
		newGachaView(d),
		newGrowthView(d),
		newRadarView(d),
		newOutroView(d),
	}
}

// OutlineEntry describes one slide for the outline listing.
type OutlineEntry struct {
	Index    int
	Title    string
	Progress float64
}

// Outline lists the slides of d with the progress shown on each.
func Outline(d *Dataset) []OutlineEntry {
	views := BuildViews(d)
	out := make([]OutlineEntry, len(views))
	for i, v := range views {
		s := State{Current: i, Direction: Forward, Total: len(views)}
		out[i] = OutlineEntry{Index: i, Title: v.Title(), Progress: s.Progress()}
	}
	return out
}

// staticView is embedded by views without entrance animations.
type staticView struct{}

func (staticView) Enter() {}

func (staticView) Update(float32) {}

// revealSet is a group of staggered reveals restarted together.
type revealSet []*Reveal

func (rs revealSet) Enter() {
	for _, r := range rs {
		r.Restart()
	}
}

func (rs revealSet) Update(dt float32) {
	for _, r := range rs {
		r.Update(dt)
	}
}

// --- Intro ---

type introView struct {
	copy  Copy
	fade  *Reveal
	hint  Loop
	title []titleRun
}

type titleRun struct {
	text      string
	highlight bool
}

func newIntroView(d *Dataset) *introView {
	return &introView{
		copy: d.Copy,
		fade: NewReveal(0, 1, ease.OutCubic),
		hint: Loop{Period: 2},
		title: []titleRun{
			{d.Copy.Name + " ", false},
			{"Wrapped", true},
			{" " + strconv.Itoa(d.Copy.Year), false},
		},
	}
}

func (v *introView) Title() string {
	return fmt.Sprintf("%s Wrapped %d", v.copy.Name, v.copy.Year)
}

func (v *introView) Enter() { v.fade.Restart() }

func (v *introView) Update(dt float32) {
	v.fade.Update(dt)
	v.hint.Update(dt)
}

func (v *introView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	r := clamp01(v.fade.Value())
	size := math.Round(72 * (0.8 + 0.2*r))

	total := 0.0
	for _, run := range v.title {
		w, _ := p.MeasureText(run.text, FontBold, size)
		total += w
	}
	x := (f.Width - total) / 2
	y := f.Height*0.38 - size/2
	for _, run := range v.title {
		c := f.Theme.Text
		if run.highlight {
			c = f.Theme.Primary
		}
		p.Text(dst, run.text, FontBold, size, x, y, TextAlignLeft, c.WithAlpha(r))
		w, _ := p.MeasureText(run.text, FontBold, size)
		x += w
	}

	cx, width := f.Content(560)
	p.Paragraph(dst, v.copy.Tagline, FontItalic, 24, cx+width/2, y+size*1.6, width, TextAlignCenter, f.Theme.Text.WithAlpha(0.6*r))

	bob := 10 * math.Sin(v.hint.Phase()*math.Pi)
	hy := f.Height - 96 + bob
	p.Text(dst, strings.ToUpper(v.copy.Hint), FontRegular, 14, f.Width/2, hy, TextAlignCenter, f.Theme.Text.WithAlpha(0.5))
	p.Chevron(dst, Vec2{f.Width / 2, hy + 34}, 10, Forward, f.Theme.Text.WithAlpha(0.5))
}

// --- Time distribution ---

type timeView struct {
	heading string
	slices  []Slice
	donut   *DonutChart
	legend  revealSet
}

func newTimeView(d *Dataset) *timeView {
	return &timeView{
		heading: d.Copy.Time,
		slices:  d.TimeDistribution,
		donut:   NewDonutChart(d.TimeDistribution, DefaultDonutStyle()),
		legend:  Stagger(len(d.TimeDistribution), 0.5, 0.1, 0.4, ease.OutCubic),
	}
}

func (v *timeView) Title() string { return v.heading }

func (v *timeView) Enter() {
	v.donut.Restart()
	v.legend.Enter()
}

func (v *timeView) Update(dt float32) {
	v.donut.Update(dt)
	v.legend.Update(dt)
}

func (v *timeView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.08)

	radius := math.Min(f.Width, f.Height) * 0.2
	center := Vec2{f.Width / 2, f.Height*0.17 + 40 + radius}
	v.donut.Build(center, radius).Draw(dst)

	const cols = 3
	x0, width := f.Content(720)
	gap := 16.0
	cw := (width - gap*(cols-1)) / cols
	ch := 64.0
	top := center.Y + radius + 48
	for i, s := range v.slices {
		r := clamp01(v.legend[i].Value())
		if r <= 0 {
			continue
		}
		col, row := i%cols, i/cols
		card := Rect{x0 + float64(col)*(cw+gap), top + float64(row)*(ch+gap) + 10*(1-r), cw, ch}
		p.Card(dst, card, 12, r)
		p.FillCircle(dst, Vec2{card.X + 20, card.Y + ch/2}, 6, s.Color.WithAlpha(r))
		p.Text(dst, s.Label, FontBold, 12, card.X+36, card.Y+12, TextAlignLeft, f.Theme.Text.WithAlpha(0.5*r))
		p.Text(dst, fmt.Sprintf("%.0f%%", Share(v.slices, i)), FontBold, 20, card.X+36, card.Y+30, TextAlignLeft, f.Theme.Text.WithAlpha(r))
	}
}

// --- Labor ---

type laborView struct {
	heading string
	unit    string
	stats   []Stat
	max     int
	counts  []*CountUp
	bars    revealSet
}

func newLaborView(d *Dataset) *laborView {
	v := &laborView{heading: d.Copy.Labor, unit: d.Copy.LaborUnit, stats: d.LaborStats}
	for _, s := range d.LaborStats {
		v.max = max(v.max, s.Value)
		v.counts = append(v.counts, NewCountUp(s.Value, DefaultCountUpDuration))
	}
	v.bars = Stagger(len(d.LaborStats), 0, 0.2, 1.5, ease.OutCubic)
	return v
}

func (v *laborView) Title() string { return v.heading }

func (v *laborView) Enter() {
	for _, c := range v.counts {
		c.Restart()
	}
	v.bars.Enter()
}

func (v *laborView) Update(dt float32) {
	for _, c := range v.counts {
		c.Update(float64(dt))
	}
	v.bars.Update(dt)
}

func (v *laborView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.14)

	x, width := f.Content(560)
	y := f.Height*0.14 + 96
	for i, s := range v.stats {
		p.Text(dst, s.Label, FontBold, 18, x, y, TextAlignLeft, f.Theme.Text)
		value := strconv.Itoa(v.counts[i].Value()) + " " + v.unit
		p.Text(dst, value, FontBold, 22, x+width, y-4, TextAlignRight, f.Theme.Text)
		frac := 0.0
		if v.max > 0 {
			frac = float64(s.Value) / float64(v.max) * clamp01(v.bars[i].Value())
		}
		p.Bar(dst, Rect{x, y + 30, width, 16}, frac, ColorWhite.WithAlpha(0.1), s.Color)
		y += 80
	}
}

// --- Job funnel ---

type funnelView struct {
	heading string
	stages  []FunnelStage
	rows    revealSet
}

func newFunnelView(d *Dataset) *funnelView {
	return &funnelView{
		heading: d.Copy.Funnel,
		stages:  d.JobFunnel,
		rows:    Stagger(len(d.JobFunnel), 0, 0.3, 0.5, ease.OutCubic),
	}
}

func (v *funnelView) Title() string { return v.heading }
func (v *funnelView) Enter() { v.rows.Enter() }
func (v *funnelView) Update(dt float32) {
	v.rows.Update(dt)
}

func (v *funnelView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.16)

	_, maxW := f.Content(520)
	y := f.Height*0.16 + 100
	for i, s := range v.stages {
		r := clamp01(v.rows[i].Value())
		w := maxW * math.Max(1-0.1*float64(i), 0.3)
		row := Rect{(f.Width-w)/2 - 50*(1-r), y, w, 84}
		p.Card(dst, row, 18, r)
		p.Text(dst, s.Stage, FontBold, 22, row.X+24, row.Y+28, TextAlignLeft, f.Theme.Text.WithAlpha(r))
		p.Text(dst, strconv.Itoa(s.Count), FontBold, 34, row.X+row.Width-24, row.Y+20, TextAlignRight, s.Color.WithAlpha(r))
		y += 100
	}
}

// --- Classes ---

type classesView struct {
	heading string
	classes []Discipline
	cards   revealSet
}

func newClassesView(d *Dataset) *classesView {
	return &classesView{
		heading: d.Copy.Classes,
		classes: d.Classes,
		cards:   Stagger(len(d.Classes), 0, 0.1, 0.4, ease.OutCubic),
	}
}

func (v *classesView) Title() string { return v.heading }
func (v *classesView) Enter() { v.cards.Enter() }
func (v *classesView) Update(dt float32) {
	v.cards.Update(dt)
}

func (v *classesView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.1)

	const cols = 2
	x0, width := f.Content(800)
	gap := 24.0
	cw := (width - gap) / cols
	ch := 170.0
	top := f.Height*0.1 + 80
	for i, c := range v.classes {
		r := clamp01(v.cards[i].Value())
		col, row := i%cols, i/cols
		card := Rect{x0 + float64(col)*(cw+gap), top + float64(row)*(ch+gap), cw, ch}
		card = scaleRect(card, 0.9+0.1*r)
		p.Card(dst, card, 24, r)
		p.FillRoundRect(dst, Rect{card.X + 24, card.Y + 24, 8, 32}, 4, c.Color.WithAlpha(r))
		p.Text(dst, c.Category, FontBold, 24, card.X+44, card.Y+26, TextAlignLeft, f.Theme.Text.WithAlpha(r))
		p.Text(dst, strconv.Itoa(c.Count), FontBold, 48, card.X+24, card.Y+64, TextAlignLeft, f.Theme.Text.WithAlpha(r))
		p.Text(dst, fmt.Sprintf("%s: %d", c.SubLabel, c.SubValue), FontRegular, 16, card.X+24, card.Y+130, TextAlignLeft, f.Theme.Primary.WithAlpha(r))
	}
}

// scaleRect scales r about its center.
func scaleRect(r Rect, s float64) Rect {
	c := r.Center()
	w, h := r.Width*s, r.Height*s
	return Rect{c.X - w/2, c.Y - h/2, w, h}
}

// --- Travel summary ---

type travelView struct {
	staticView
	heading string
	items   []travelItem
}

type travelItem struct {
	value int
	label string
	color Color
}

func newTravelView(d *Dataset) *travelView {
	t := d.TravelSummary
	return &travelView{
		heading: d.Copy.Travel,
		items: []travelItem{
			{t.Flights, d.Copy.FlightsLabel, d.Theme.Secondary},
			{t.Cities, d.Copy.CitiesLabel, d.Theme.Primary},
			{t.Trips, d.Copy.TripsLabel, d.Theme.Accent},
		},
	}
}

func (v *travelView) Title() string { return v.heading }

func (v *travelView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.2)

	spacing := math.Min(240, f.Width/3)
	x := f.Width/2 - spacing*float64(len(v.items)-1)/2
	y := f.Height * 0.42
	for _, it := range v.items {
		p.StrokeCircle(dst, Vec2{x, y}, 22, 3, it.color)
		p.FillCircle(dst, Vec2{x, y}, 8, it.color)
		p.Text(dst, strconv.Itoa(it.value), FontBold, 64, x, y+40, TextAlignCenter, f.Theme.Text)
		p.Text(dst, strings.ToUpper(it.label), FontRegular, 12, x, y+124, TextAlignCenter, f.Theme.Text.WithAlpha(0.5))
		x += spacing
	}
}

// --- Photos ---

type photosView struct {
	heading string
	places  []Destination
	max     int
	bars    revealSet
}

func newPhotosView(d *Dataset) *photosView {
	v := &photosView{heading: d.Copy.Photos, places: d.Travel}
	for _, t := range d.Travel {
		v.max = max(v.max, t.Photos)
	}
	v.bars = Stagger(len(d.Travel), 0, 0, 0.8, ease.OutCubic)
	return v
}

func (v *photosView) Title() string { return v.heading }
func (v *photosView) Enter() { v.bars.Enter() }
func (v *photosView) Update(dt float32) {
	v.bars.Update(dt)
}

func (v *photosView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.16)

	x, width := f.Content(640)
	labelW, countW := 150.0, 110.0
	track := Rect{x + labelW + 24, 0, width - labelW - countW - 48, 48}
	y := f.Height*0.16 + 110
	for i, t := range v.places {
		track.Y = y
		p.Text(dst, t.Destination, FontBold, 24, x+labelW, y+10, TextAlignRight, f.Theme.Text)
		p.FillRoundRect(dst, track, 24, ColorWhite.WithAlpha(0.05))
		frac := 0.0
		if v.max > 0 {
			frac = float64(t.Photos) / float64(v.max) * clamp01(v.bars[i].Value())
		}
		inner := Rect{track.X + 16, track.Y + 20, (track.Width - 32) * frac, 8}
		p.FillRoundRect(dst, inner, 4, t.Color)
		p.Text(dst, strconv.Itoa(t.Photos), FontBold, 22, track.X+track.Width+24, y+12, TextAlignLeft, f.Theme.Text)
		y += 72
	}
}

// --- Stat cards (music, code) ---

type statCardsView struct {
	staticView
	heading string
	stats   []Stat
	round   bool
	accents []Color
}

func newMusicView(d *Dataset) *statCardsView {
	return &statCardsView{
		heading: d.Copy.Music,
		stats:   d.Music,
		round:   true,
		accents: []Color{d.Theme.Accent, d.Theme.Secondary, d.Theme.Purple},
	}
}

func newCodeView(d *Dataset) *statCardsView {
	return &statCardsView{
		heading: d.Copy.Code,
		stats:   d.CodeStats,
		accents: []Color{d.Theme.Primary, d.Theme.Secondary, d.Theme.Accent},
	}
}

func (v *statCardsView) Title() string { return v.heading }

func (v *statCardsView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.14)

	n := len(v.stats)
	if n == 0 {
		return
	}
	_, width := f.Content(840)
	gap := 28.0
	size := (width - gap*float64(n-1)) / float64(n)
	size = math.Min(size, 240)
	x := f.Width/2 - (size*float64(n)+gap*float64(n-1))/2
	y := f.Height*0.14 + 100
	for i, s := range v.stats {
		card := Rect{x, y, size, size}
		radius := 28.0
		if v.round {
			radius = size / 2
		}
		p.Card(dst, card, radius, 1)
		accent := v.accents[i%len(v.accents)]
		c := card.Center()
		p.StrokeCircle(dst, Vec2{c.X, card.Y + size*0.24}, 12, 2.5, accent)
		p.Text(dst, strconv.Itoa(s.Value), FontBold, 44, c.X, card.Y+size*0.36, TextAlignCenter, f.Theme.Text)
		label := s.Label
		if !v.round {
			label = strings.ToUpper(label)
		}
		p.Paragraph(dst, label, FontRegular, 14, c.X, card.Y+size*0.64, size*0.7, TextAlignCenter, f.Theme.Text.WithAlpha(0.6))
		x += size + gap
	}
}

// --- Therapy ---

type therapyView struct {
	staticView
	heading string
	stats   []Stat
}

func newTherapyView(d *Dataset) *therapyView {
	return &therapyView{heading: d.Copy.Therapy, stats: d.TherapyPlus}
}

func (v *therapyView) Title() string { return v.heading }

func (v *therapyView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.14)

	x, width := f.Content(680)
	y := f.Height*0.14 + 96
	for _, s := range v.stats {
		row := Rect{x, y, width, 88}
		p.Card(dst, row, 18, 1)
		p.Text(dst, s.Label, FontRegular, 20, row.X+24, row.Y+32, TextAlignLeft, f.Theme.Text.WithAlpha(0.8))
		p.Text(dst, strconv.Itoa(s.Value), FontBold, 38, row.X+row.Width-24, row.Y+22, TextAlignRight, s.Color)
		y += 112
	}
}

// --- Tokens ---

type tokensView struct {
	staticView
	heading string
	tokens  string
	blurb   string
	star    Mesh
	points  []Vec2
}

func newTokensView(d *Dataset) *tokensView {
	return &tokensView{heading: d.Copy.Tokens, tokens: d.CursorTokens, blurb: d.Copy.TokensBlurb}
}

func (v *tokensView) Title() string { return v.heading }

func (v *tokensView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	center := Vec2{f.Width / 2, f.Height * 0.22}
	v.points = sparklePoints(v.points[:0], center, 32)
	v.star.Reset()
	v.star.AddStarPolygon(center, v.points, f.Theme.Yellow)
	v.star.Draw(dst)

	y := f.Height*0.22 + 64
	p.Text(dst, v.heading, FontRegular, 24, f.Width/2, y, TextAlignCenter, f.Theme.Text.WithAlpha(0.6))
	p.Text(dst, v.tokens, FontBold, 88, f.Width/2, y+48, TextAlignCenter, f.Theme.Primary)
	x, width := f.Content(460)
	p.Paragraph(dst, v.blurb, FontRegular, 20, x+width/2, y+170, width, TextAlignCenter, f.Theme.Text.WithAlpha(0.7))
}

// sparklePoints appends a four-pointed star outline around center.
func sparklePoints(dst []Vec2, center Vec2, r float64) []Vec2 {
	for i := 0; i < 8; i++ {
		radius := r
		if i%2 == 1 {
			radius = r * 0.3
		}
		dst = append(dst, polar(center, radius, -math.Pi/2+float64(i)*math.Pi/4))
	}
	return dst
}

// --- Conversations ---

type conversationsView struct {
	heading string
	topics  []Topic
	labels  []*TextBlock
	pops    revealSet
}

func newConversationsView(d *Dataset) *conversationsView {
	v := &conversationsView{
		heading: d.Copy.Conversations,
		topics:  d.Conversations,
		labels:  make([]*TextBlock, len(d.Conversations)),
		pops:    Stagger(len(d.Conversations), 0, 0.1, 0.6, ease.OutBack),
	}
	for i, t := range d.Conversations {
		tb := NewTextBlock(t.Text, nil, d.Theme.Text)
		tb.Align = TextAlignCenter
		v.labels[i] = tb
	}
	return v
}

// label returns the bubble text for topic i typeset with font inside a
// bubble of diameter d. The block keeps its layout while font and d stay the
// same.
func (v *conversationsView) label(i int, font Font, d float64) *TextBlock {
	tb := v.labels[i]
	tb.Font = font
	tb.WrapWidth = d * 0.7
	return tb
}

func (v *conversationsView) Title() string { return v.heading }
func (v *conversationsView) Enter() { v.pops.Enter() }
func (v *conversationsView) Update(dt float32) {
	v.pops.Update(dt)
}

func (v *conversationsView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.12)

	_, width := f.Content(880)
	unit := math.Min(22, width/40)
	gap := 16.0
	total := -gap
	for _, t := range v.topics {
		total += t.Size.Diameter(unit) + gap
	}
	x := (f.Width - total) / 2
	mid := f.Height * 0.52
	for i, t := range v.topics {
		d := t.Size.Diameter(unit)
		c := Vec2{x + d/2, mid}
		x += d + gap
		// OutBack overshoots past 1 on purpose.
		s := math.Max(v.pops[i].Value(), 0)
		if s == 0 {
			continue
		}
		r := d / 2 * s
		p.FillCircle(dst, c, r, f.Theme.Primary.WithAlpha(0.1))
		p.StrokeCircle(dst, c, r, 1, ColorWhite.WithAlpha(0.2))
		tb := v.label(i, p.Face(FontBold, t.Size.FontSize()), d)
		_, h := tb.Measure()
		tb.Draw(dst, c.X, c.Y-h/2, clamp01(s))
	}
}

// --- Gacha ---

type gachaView struct {
	staticView
	heading string
	caption string
	games   []Collection
}

func newGachaView(d *Dataset) *gachaView {
	return &gachaView{heading: d.Copy.Gacha, caption: d.Copy.GachaCaption, games: d.Gacha}
}

func (v *gachaView) Title() string { return v.heading }

func (v *gachaView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.14)

	n := len(v.games)
	if n == 0 {
		return
	}
	_, width := f.Content(840)
	gap := 32.0
	cw := math.Min((width-gap*float64(n-1))/float64(n), 240)
	x := f.Width/2 - (cw*float64(n)+gap*float64(n-1))/2
	y := f.Height*0.14 + 110
	for _, g := range v.games {
		card := Rect{x, y, cw, 220}
		c := card.Center()
		for k := 3; k >= 1; k-- {
			p.FillCircle(dst, c, cw*0.3*float64(k)/2, g.Color.WithAlpha(0.07))
		}
		p.FillRoundRect(dst, card, 28, f.Theme.Background.WithAlpha(0.6))
		p.Card(dst, card, 28, 1)
		p.Text(dst, g.Game, FontBold, 20, c.X, card.Y+32, TextAlignCenter, f.Theme.Text.WithAlpha(0.7))
		p.Text(dst, strconv.Itoa(g.Chars), FontBold, 64, c.X, card.Y+76, TextAlignCenter, f.Theme.Text)
		p.Text(dst, strings.ToUpper(v.caption), FontRegular, 12, c.X, card.Y+172, TextAlignCenter, f.Theme.Text.WithAlpha(0.4))
		x += cw + gap
	}
}

// --- Transformations ---

type growthView struct {
	staticView
	heading string
	pairs   []Transformation
}

func newGrowthView(d *Dataset) *growthView {
	return &growthView{heading: d.Copy.Growth, pairs: d.Transformations}
}

func (v *growthView) Title() string { return v.heading }

func (v *growthView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.16)

	x, width := f.Content(680)
	boxW := (width - 80) / 2
	y := f.Height*0.16 + 100
	for _, t := range v.pairs {
		before := Rect{x, y, boxW, 80}
		p.FillRoundRect(dst, before, 18, f.Theme.Danger.WithAlpha(0.1))
		p.StrokeRoundRect(dst, before, 18, 1, f.Theme.Danger.WithAlpha(0.2))
		faded := f.Theme.Text.WithAlpha(0.4)
		bc := before.Center()
		p.Text(dst, t.Before, FontItalic, 20, bc.X, bc.Y-12, TextAlignCenter, faded)
		tw, _ := p.MeasureText(t.Before, FontItalic, 20)
		p.Line(dst, Vec2{bc.X - tw/2, bc.Y}, Vec2{bc.X + tw/2, bc.Y}, 1.5, faded)

		drawBolt(p, dst, Vec2{x + boxW + 40, bc.Y}, 14, f.Theme.Yellow)

		after := Rect{x + boxW + 80, y, boxW, 80}
		p.FillRoundRect(dst, after, 18, f.Theme.Primary.WithAlpha(0.1))
		p.StrokeRoundRect(dst, after, 18, 1, f.Theme.Primary.WithAlpha(0.2))
		ac := after.Center()
		p.Text(dst, t.After, FontBold, 24, ac.X, ac.Y-14, TextAlignCenter, f.Theme.Text)
		y += 112
	}
}

// drawBolt draws a zig-zag lightning stroke of half-height h around c.
func drawBolt(p *Painter, dst *ebiten.Image, c Vec2, h float64, col Color) {
	pts := []Vec2{
		{c.X + h*0.3, c.Y - h},
		{c.X - h*0.4, c.Y + h*0.1},
		{c.X + h*0.4, c.Y - h*0.1},
		{c.X - h*0.3, c.Y + h},
	}
	for i := 1; i < len(pts); i++ {
		p.Line(dst, pts[i-1], pts[i], 3, col)
	}
}

// --- Radar ---

type radarView struct {
	heading  string
	subtitle string
	chart    *RadarChart
}

func newRadarView(d *Dataset) *radarView {
	style := DefaultRadarStyle()
	style.Fill = d.Theme.Accent
	style.Stroke = d.Theme.Accent
	return &radarView{
		heading:  d.Copy.Radar,
		subtitle: d.Copy.RadarSubtitle,
		chart:    NewRadarChart(d.EmotionalRadar, style),
	}
}

func (v *radarView) Title() string { return v.heading }
func (v *radarView) Enter() { v.chart.Restart() }
func (v *radarView) Update(dt float32) { v.chart.Update(dt) }

func (v *radarView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	f.Heading(dst, v.heading, f.Height*0.08)
	p.Text(dst, v.subtitle, FontItalic, 18, f.Width/2, f.Height*0.08+50, TextAlignCenter, f.Theme.Text.WithAlpha(0.6))

	radius := math.Min(f.Width, f.Height) * 0.27
	center := Vec2{f.Width / 2, f.Height*0.58 + 10}
	v.chart.Draw(dst, center, radius)

	for _, a := range v.chart.Axes() {
		pos := a.Tip(center, radius+22)
		cos := math.Cos(a.Angle)
		align := TextAlignCenter
		switch {
		case cos > 0.3:
			align = TextAlignLeft
		case cos < -0.3:
			align = TextAlignRight
		}
		p.Text(dst, a.Name, FontBold, 14, pos.X, pos.Y-9, align, f.Theme.Text.WithAlpha(0.8))
	}
}

// --- Outro ---

type outroView struct {
	staticView
	copy Copy
}

func newOutroView(d *Dataset) *outroView {
	return &outroView{copy: d.Copy}
}

func (v *outroView) Title() string { return v.copy.Farewell }

// RestartBounds is where the restart button sits for a canvas of w by h.
func RestartBounds(w, h float64) Rect {
	bw, bh := 260.0, 60.0
	return Rect{(w - bw) / 2, h*0.68 + 8, bw, bh}
}

func (v *outroView) Draw(dst *ebiten.Image, f *Frame) {
	p := f.Painter
	drawHeart(p, dst, Vec2{f.Width / 2, f.Height * 0.2}, 30, f.Theme.Danger)
	p.Text(dst, v.copy.Farewell, FontBold, 64, f.Width/2, f.Height*0.3, TextAlignCenter, f.Theme.Text)
	x, width := f.Content(520)
	p.Paragraph(dst, v.copy.FarewellQuote, FontItalic, 24, x+width/2, f.Height*0.46, width, TextAlignCenter, f.Theme.Text.WithAlpha(0.6))
}

// drawHeart draws a heart of the given half-width centered on c.
func drawHeart(p *Painter, dst *ebiten.Image, c Vec2, r float64, col Color) {
	lobe := r / 2
	p.FillCircle(dst, Vec2{c.X - lobe, c.Y - lobe*0.4}, lobe, col)
	p.FillCircle(dst, Vec2{c.X + lobe, c.Y - lobe*0.4}, lobe, col)
	p.mesh.Reset()
	p.mesh.AddPolygonFan([]Vec2{
		{c.X - r + 0.5, c.Y - lobe*0.2},
		{c.X + r - 0.5, c.Y - lobe*0.2},
		{c.X, c.Y + r},
	}, col)
	p.mesh.Draw(dst)
}
