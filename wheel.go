package inkui

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Wheel is an HSV color wheel: hue runs around the disk (0 degrees at the
// positive x axis, increasing clockwise in screen coordinates), saturation
// grows from 0 at the center to 1 at the rim, and Value applies uniformly.
//
// Invert is the night-mode snapshot for this paint pass: when set, every
// rendered channel is reflected (255-c) so the wheel previews what the
// host's inverted display will actually show. It is captured once in the
// struct rather than read from a global mid-render.
//
// A Wheel is a plain value; rendering and picking are pure functions of
// its fields, so repeated calls produce bit-identical output.
type Wheel struct {
	Center Point
	Radius float64
	Value  float64
	Invert bool
}

// ColorAt returns the wheel color for an absolute pixel position, and
// whether the position lies on the disk. Pixels off the disk report
// ok == false and must be left untouched by renderers.
func (w Wheel) ColorAt(x, y int) (RGBA, bool) {
	dx := float64(x) - w.Center.X
	dy := float64(y) - w.Center.Y
	dist := math.Hypot(dx, dy)
	if dist > w.Radius || w.Radius <= 0 {
		return RGBA{}, false
	}

	hue := math.Atan2(dy, dx) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	c := HSV{H: hue, S: dist / w.Radius, V: w.Value}.RGB()
	if w.Invert {
		c = c.Invert()
	}
	return c, true
}

// Render paints the wheel disk into dst. Pixels outside the disk are not
// written.
func (w Wheel) Render(dst PixelWriter) {
	if w.Radius <= 0 {
		return
	}
	x0 := int(math.Floor(w.Center.X - w.Radius))
	x1 := int(math.Ceil(w.Center.X + w.Radius))
	y0 := int(math.Floor(w.Center.Y - w.Radius))
	y1 := int(math.Ceil(w.Center.Y + w.Radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c, ok := w.ColorAt(x, y); ok {
				dst.SetPixel(x, y, c)
			}
		}
	}
}

// Pick maps a tapped point back to the hue and saturation of the pixel
// rendered there, exactly inverting the forward mapping. Taps outside the
// disk return ok == false and change nothing; callers typically close the
// picker on such a tap.
func (w Wheel) Pick(pt Point) (hue, sat float64, ok bool) {
	dx := pt.X - w.Center.X
	dy := pt.Y - w.Center.Y
	dist := math.Hypot(dx, dy)
	if dist > w.Radius || w.Radius <= 0 {
		return 0, 0, false
	}

	hue = math.Atan2(dy, dx) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return hue, math.Min(1, dist/w.Radius), true
}

// WheelImage renders a standalone wheel of the given pixel size into an
// image.RGBA: the per-pixel color grid form of the sampler. Pixels off the
// disk stay transparent.
func WheelImage(size int, value float64, invert bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	w := Wheel{
		Center: Pt(float64(size)/2, float64(size)/2),
		Radius: float64(size) / 2,
		Value:  value,
		Invert: invert,
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if c, ok := w.ColorAt(x, y); ok {
				img.Set(x, y, c.Color())
			}
		}
	}
	return img
}

// ScaleImage resizes src by an integer factor with nearest-neighbour
// sampling. E-ink panels dither rather than blend, so the hard-edged
// scaling reads better than interpolation there.
func ScaleImage(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
