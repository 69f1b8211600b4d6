package wrapped

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// roundCornerSegments is the arc resolution of one rounded corner.
const roundCornerSegments = 8

// Painter draws the shapes and text slides are made of. It keeps a scratch
// mesh so filled shapes don't allocate per frame.
type Painter struct {
	Fonts *Fonts

	mesh Mesh
}

// NewPainter creates a painter that typesets with fonts.
func NewPainter(fonts *Fonts) *Painter {
	return &Painter{Fonts: fonts}
}

// FillRect fills r with c.
func (p *Painter) FillRect(dst *ebiten.Image, r Rect, c Color) {
	if c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.RGBA(), true)
}

// FillRoundRect fills r with corners rounded by radius.
func (p *Painter) FillRoundRect(dst *ebiten.Image, r Rect, radius float64, c Color) {
	if c.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	p.mesh.Reset()
	p.mesh.AddPolygonFan(RoundRectPoints(r, radius, roundCornerSegments), c)
	p.mesh.Draw(dst)
}

// StrokeRoundRect outlines r with corners rounded by radius.
func (p *Painter) StrokeRoundRect(dst *ebiten.Image, r Rect, radius, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	strokeClosed(dst, RoundRectPoints(r, radius, roundCornerSegments), float32(width), c.RGBA())
}

// FillCircle fills a circle.
func (p *Painter) FillCircle(dst *ebiten.Image, center Vec2, radius float64, c Color) {
	if c.A <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(center.X), float32(center.Y), float32(radius), c.RGBA(), true)
}

// StrokeCircle outlines a circle.
func (p *Painter) StrokeCircle(dst *ebiten.Image, center Vec2, radius, width float64, c Color) {
	if c.A <= 0 || radius <= 0 {
		return
	}
	vector.StrokeCircle(dst, float32(center.X), float32(center.Y), float32(radius), float32(width), c.RGBA(), true)
}

// Line draws a straight segment.
func (p *Painter) Line(dst *ebiten.Image, a, b Vec2, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c.RGBA(), true)
}

// Chevron draws a V pointing down (dir > 0) or up (dir < 0) centered on center.
func (p *Painter) Chevron(dst *ebiten.Image, center Vec2, size float64, dir Direction, c Color) {
	h := size / 2 * float64(dir)
	left := Vec2{center.X - size, center.Y - h/2}
	tip := Vec2{center.X, center.Y + h/2}
	right := Vec2{center.X + size, center.Y - h/2}
	p.Line(dst, left, tip, 2.5, c)
	p.Line(dst, tip, right, 2.5, c)
}

// Card draws the translucent rounded panel used behind stats.
func (p *Painter) Card(dst *ebiten.Image, r Rect, radius, alpha float64) {
	p.FillRoundRect(dst, r, radius, ColorWhite.WithAlpha(0.05*alpha))
	p.StrokeRoundRect(dst, r, radius, 1, ColorWhite.WithAlpha(0.1*alpha))
}

// Bar draws a rounded track with a fill covering frac of its width.
func (p *Painter) Bar(dst *ebiten.Image, r Rect, frac float64, track, fill Color) {
	radius := r.Height / 2
	p.FillRoundRect(dst, r, radius, track)
	frac = clamp01(frac)
	if frac <= 0 {
		return
	}
	fr := r
	fr.Width = r.Width * frac
	p.FillRoundRect(dst, fr, radius, fill)
}

// Face returns the text face for style at size.
func (p *Painter) Face(style FontStyle, size float64) *TTFFont {
	return p.Fonts.Get(style, size)
}

// MeasureText returns the size of a single run of text.
func (p *Painter) MeasureText(s string, style FontStyle, size float64) (width, height float64) {
	return p.Face(style, size).MeasureString(s)
}

// Text draws a single run with its top at y. The horizontal anchor x follows
// align.
func (p *Painter) Text(dst *ebiten.Image, s string, style FontStyle, size, x, y float64, align TextAlign, c Color) {
	if c.A <= 0 || s == "" {
		return
	}
	f := p.Face(style, size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale = c.ColorScale()
	op.LineSpacing = f.LineHeight()
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, s, f.Face(), op)
}

// Paragraph draws s wrapped to wrap pixels and returns the height used.
func (p *Painter) Paragraph(dst *ebiten.Image, s string, style FontStyle, size, x, y, wrap float64, align TextAlign, c Color) float64 {
	tb := NewTextBlock(s, p.Face(style, size), c)
	tb.WrapWidth = wrap
	tb.Align = align
	tb.Draw(dst, x, y, 1)
	_, h := tb.Measure()
	return h
}
