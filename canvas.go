package wrapped

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Canvas pool ---

// canvasPool manages reusable offscreen ebiten.Images keyed by power-of-two
// dimensions. After warmup, Acquire/Release are zero-alloc.
type canvasPool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *canvasPool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here.
func (p *canvasPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// Idle returns how many images are waiting in the pool.
func (p *canvasPool) Idle() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- Slide canvases ---

// slideCanvases holds one offscreen canvas per rendered slide. Canvases of
// slides that are no longer drawn go back to the pool.
type slideCanvases struct {
	pool   canvasPool
	images []*ebiten.Image
	inUse  int
}

func newSlideCanvases(n int) *slideCanvases {
	return &slideCanvases{images: make([]*ebiten.Image, n)}
}

// Get returns a cleared canvas of at least w by h pixels for slide i.
func (c *slideCanvases) Get(i, w, h int) *ebiten.Image {
	img := c.images[i]
	if img != nil {
		b := img.Bounds()
		if b.Dx() >= w && b.Dy() >= h {
			img.Clear()
			return img
		}
		c.pool.Release(img)
		c.inUse--
	}
	img = c.pool.Acquire(w, h)
	c.images[i] = img
	c.inUse++
	return img
}

// Release returns the canvas of slide i to the pool, if it has one.
func (c *slideCanvases) Release(i int) {
	if c.images[i] == nil {
		return
	}
	c.pool.Release(c.images[i])
	c.images[i] = nil
	c.inUse--
}

// InUse returns how many slides currently hold a canvas.
func (c *slideCanvases) InUse() int {
	return c.inUse
}

// --- Compositing ---

// poseGeoM maps a full-frame slide canvas of w by h onto the screen at pose
// p: scaled about the frame center, then shifted by OffsetY frame heights.
func poseGeoM(p Pose, w, h float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-w/2, -h/2)
	m.Scale(p.Scale, p.Scale)
	m.Translate(w/2, h/2+p.OffsetY*h)
	return m
}

// compositeSlide draws a slide canvas onto dst at pose p.
func compositeSlide(dst, canvas *ebiten.Image, p Pose, w, h float64) {
	alpha := clamp01(p.Alpha)
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM = poseGeoM(p, w, h)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(canvas, op)
}
