package render

import (
	"image"
	"math"
	"reflect"

	"golang.org/x/image/draw"
)

// Prescaler produces axis-aligned resampled copies of source images.
//
// Backends (gio among them) show artifacts when an image is drawn with
// antialiasing under a transform that scales and rotates at once. Node and
// background drawing therefore happen in two phases: resample here to the
// final pixel size, then place the result with a rigid transform.
//
// Copies are cached per source image and size, so one variant drawn at
// several facings on non-square cells is resampled once per size. Sweep
// drops the copies not requested since the previous Sweep; a board resize
// therefore retires the old sizes after one frame.
type Prescaler struct {
	scaler draw.Scaler
	cache  map[scaleKey]*scaled
}

type scaleKey struct {
	src  image.Image
	size image.Point
}

type scaled struct {
	img  *image.RGBA
	used bool
}

// NewPrescaler returns a prescaler using Catmull-Rom resampling.
func NewPrescaler() *Prescaler {
	return &Prescaler{
		scaler: draw.CatmullRom,
		cache:  make(map[scaleKey]*scaled),
	}
}

// TargetSize rounds a fractional pixel size to whole pixels, minimum 1.
func TargetSize(w, h float64) image.Point {
	return image.Pt(roundPx(w), roundPx(h))
}

func roundPx(v float64) int {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return int(math.Round(v))
}

// Cacheable reports whether img can be used as a map key. Image types
// holding slices by value cannot; those are resampled without caching.
func Cacheable(img image.Image) bool {
	return img != nil && reflect.TypeOf(img).Comparable()
}

// Scale returns src resampled to size. The returned image is owned by the
// prescaler and stays valid until a Sweep in which it was not requested.
func (p *Prescaler) Scale(src image.Image, size image.Point) image.Image {
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if src.Bounds().Size() == size {
		return src
	}
	if !Cacheable(src) {
		return p.resample(src, size)
	}
	key := scaleKey{src: src, size: size}
	if c, ok := p.cache[key]; ok {
		c.used = true
		return c.img
	}
	dst := p.resample(src, size)
	p.cache[key] = &scaled{img: dst, used: true}
	return dst
}

func (p *Prescaler) resample(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	p.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Sweep drops copies not requested since the last Sweep.
func (p *Prescaler) Sweep() {
	for k, c := range p.cache {
		if !c.used {
			delete(p.cache, k)
			continue
		}
		c.used = false
	}
}

// Len returns the number of cached images.
func (p *Prescaler) Len() int {
	return len(p.cache)
}

// Reset drops every cached image.
func (p *Prescaler) Reset() {
	p.cache = make(map[scaleKey]*scaled)
}
