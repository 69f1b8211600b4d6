package wrapped

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("wrapped: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}
}

// WithSize returns the same typeface at another size. The parsed source is
// shared.
func (f *TTFFont) WithSize(size float64) *TTFFont {
	if size == f.size {
		return f
	}
	return newTTFFont(f.source, size)
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	w, h := text.Measure(s, f.face, f.lh)
	return w, h
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- Fonts ---

// Fonts holds the faces slides are typeset with: the Go fonts in regular,
// bold and italic.
type Fonts struct {
	Regular *TTFFont
	Bold    *TTFFont
	Italic  *TTFFont

	sized map[fontKey]*TTFFont
}

// FontStyle selects a face from Fonts.
type FontStyle uint8

const (
	FontRegular FontStyle = iota
	FontBold
	FontItalic
)

type fontKey struct {
	style FontStyle
	size  float64
}

// LoadFonts parses the embedded Go fonts at a 16px base size.
func LoadFonts() (*Fonts, error) {
	regular, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		return nil, err
	}
	bold, err := LoadTTFFont(gobold.TTF, 16)
	if err != nil {
		return nil, err
	}
	italic, err := LoadTTFFont(goitalic.TTF, 16)
	if err != nil {
		return nil, err
	}
	return &Fonts{
		Regular: regular,
		Bold:    bold,
		Italic:  italic,
		sized:   make(map[fontKey]*TTFFont),
	}, nil
}

// Get returns the face for style at size, caching one instance per pair.
func (fs *Fonts) Get(style FontStyle, size float64) *TTFFont {
	key := fontKey{style, size}
	if f, ok := fs.sized[key]; ok {
		return f
	}
	base := fs.Regular
	switch style {
	case FontBold:
		base = fs.Bold
	case FontItalic:
		base = fs.Italic
	}
	f := base.WithSize(size)
	fs.sized[key] = f
	return f
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and cached layout state.
type TextBlock struct {
	Content    string
	Font       Font
	Align      TextAlign
	WrapWidth  float64
	Color      Color
	LineHeight float64 // override; 0 = use Font.LineHeight()

	// Cached layout (unexported)
	layoutDirty bool
	layoutKey   textLayoutKey
	measuredW   float64
	measuredH   float64
	lines       []textLine
}

// textLayoutKey captures the inputs a cached layout was computed from.
type textLayoutKey struct {
	content string
	font    Font
	wrap    float64
}

// textLine stores one laid-out line.
type textLine struct {
	text  string
	width float64
}

// NewTextBlock creates a text block with the given content, font and color.
func NewTextBlock(content string, font Font, c Color) *TextBlock {
	return &TextBlock{Content: content, Font: font, Color: c, layoutDirty: true}
}

// Invalidate forces the next layout to be recomputed.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.LineHeight > 0 {
		return tb.LineHeight
	}
	if tb.Font != nil {
		return tb.Font.LineHeight()
	}
	return 0
}

// Measure returns the laid-out width and height.
func (tb *TextBlock) Measure() (width, height float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// Lines returns the wrapped lines.
func (tb *TextBlock) Lines() []string {
	lines := tb.layout()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return out
}

// layout recomputes line breaks if the content, font or wrap width changed.
func (tb *TextBlock) layout() []textLine {
	key := textLayoutKey{tb.Content, tb.Font, tb.WrapWidth}
	if !tb.layoutDirty && key == tb.layoutKey {
		return tb.lines
	}
	tb.layoutDirty = false
	tb.layoutKey = key

	tb.lines = tb.lines[:0]
	tb.measuredW = 0
	tb.measuredH = 0
	if tb.Font == nil {
		return tb.lines
	}

	measure := func(s string) float64 {
		w, _ := tb.Font.MeasureString(s)
		return w
	}
	for _, para := range strings.Split(tb.Content, "\n") {
		tb.lines = wrapWords(tb.lines, para, tb.WrapWidth, measure)
	}
	for _, l := range tb.lines {
		tb.measuredW = max(tb.measuredW, l.width)
	}
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight()
	return tb.lines
}

// wrapWords greedily breaks one paragraph at spaces so no line exceeds
// maxWidth, appending the lines to dst. A single word wider than maxWidth
// gets a line of its own. maxWidth <= 0 disables wrapping.
func wrapWords(dst []textLine, para string, maxWidth float64, measure func(string) float64) []textLine {
	if maxWidth <= 0 {
		return append(dst, textLine{text: para, width: measure(para)})
	}
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(dst, textLine{})
	}
	cur := words[0]
	curW := measure(cur)
	for _, w := range words[1:] {
		candidate := cur + " " + w
		cw := measure(candidate)
		if cw > maxWidth {
			dst = append(dst, textLine{text: cur, width: curW})
			cur = w
			curW = measure(w)
			continue
		}
		cur, curW = candidate, cw
	}
	return append(dst, textLine{text: cur, width: curW})
}

// alignOffset returns how far left of the anchor a line of width w starts.
func alignOffset(align TextAlign, w float64) float64 {
	switch align {
	case TextAlignCenter:
		return w / 2
	case TextAlignRight:
		return w
	default:
		return 0
	}
}

// Draw renders the block with its top anchored at (x, y). The horizontal
// anchor follows Align. alpha multiplies the block color. Only TTF fonts can
// be drawn.
func (tb *TextBlock) Draw(dst *ebiten.Image, x, y, alpha float64) {
	f, ok := tb.Font.(*TTFFont)
	if !ok || alpha <= 0 {
		return
	}
	lh := tb.lineHeight()
	cs := tb.Color.WithAlpha(alpha).ColorScale()
	for i, l := range tb.layout() {
		if l.text == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x-alignOffset(tb.Align, l.width), y+float64(i)*lh)
		op.ColorScale = cs
		text.Draw(dst, l.text, f.Face(), op)
	}
}
