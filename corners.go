package inkui

// corner identifies one corner square of a rounded rectangle: the r×r
// block of pixels at (sx, sy), and the arc circle center (cx, cy). Centers
// sit one pixel inward from the true corner so the arc stays tangent to
// the straight edges.
type corner struct {
	sx, sy int
	cx, cy int
}

func corners(r Rect, radius int) [4]corner {
	return [4]corner{
		{r.X, r.Y, r.X + radius - 1, r.Y + radius - 1},                                   // top-left
		{r.X + r.W - radius, r.Y, r.X + r.W - radius, r.Y + radius - 1},                  // top-right
		{r.X, r.Y + r.H - radius, r.X + radius - 1, r.Y + r.H - radius},                  // bottom-left
		{r.X + r.W - radius, r.Y + r.H - radius, r.X + r.W - radius, r.Y + r.H - radius}, // bottom-right
	}
}

// ClipRoundedCorners erases the pixels of rect that fall outside a
// rounded-rectangle boundary of the given radius, setting them to fill.
// Only the four radius×radius corner squares are visited, so the cost is
// O(radius²) regardless of the rectangle's area.
//
// The radius is clamped so opposing arcs cannot overlap
// (2*radius <= min(W, H)). A radius <= 0 or an empty rectangle is a no-op.
// Pixels on or inside the arc are left untouched.
func ClipRoundedCorners(dst PixelWriter, rect Rect, radius int, fill RGBA) {
	if rect.Empty() || radius <= 0 {
		return
	}
	radius = rect.clampRadius(radius)
	if radius <= 0 {
		return
	}

	rr := radius * radius
	for _, c := range corners(rect, radius) {
		for y := c.sy; y < c.sy+radius; y++ {
			for x := c.sx; x < c.sx+radius; x++ {
				dx, dy := x-c.cx, y-c.cy
				if dx*dx+dy*dy > rr {
					dst.SetPixel(x, y, fill)
				}
			}
		}
	}
}

// StrokeRoundedRect draws the border of a rounded rectangle: four straight
// edge segments of the given thickness, joined by quarter-circle arc rings
// at the corners. A radius <= 0 degenerates to a plain rectangular border.
// Thickness values below 1 are treated as 1; when thickness exceeds the
// radius the corner rings become full quarter disks.
func StrokeRoundedRect(dst PixelWriter, rect Rect, radius int, c RGBA, thickness int) {
	if rect.Empty() {
		return
	}
	if thickness < 1 {
		thickness = 1
	}
	radius = rect.clampRadius(radius)

	if radius <= 0 {
		strokeRect(dst, rect, c, thickness)
		return
	}

	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W, rect.Y+rect.H // exclusive

	// Straight edges, stopping short of the corner squares.
	fillSpan(dst, x0+radius, y0, x1-radius, y0+thickness, c) // top
	fillSpan(dst, x0+radius, y1-thickness, x1-radius, y1, c) // bottom
	fillSpan(dst, x0, y0+radius, x0+thickness, y1-radius, c) // left
	fillSpan(dst, x1-thickness, y0+radius, x1, y1-radius, c) // right

	// Arc annulus per corner: ring between radius-thickness and radius.
	outer := radius * radius
	in := radius - thickness
	inner := in * in
	if in < 0 {
		inner = 0 // full quarter disk
	}
	for _, cn := range corners(rect, radius) {
		for y := cn.sy; y < cn.sy+radius; y++ {
			for x := cn.sx; x < cn.sx+radius; x++ {
				dx, dy := x-cn.cx, y-cn.cy
				d := dx*dx + dy*dy
				if d >= inner && d <= outer {
					dst.SetPixel(x, y, c)
				}
			}
		}
	}
}

// strokeRect draws a square-cornered rectangular border of the given
// thickness.
func strokeRect(dst PixelWriter, rect Rect, c RGBA, thickness int) {
	x0, y0 := rect.X, rect.Y
	x1, y1 := rect.X+rect.W, rect.Y+rect.H
	if thickness*2 >= rect.W || thickness*2 >= rect.H {
		fillSpan(dst, x0, y0, x1, y1, c)
		return
	}
	fillSpan(dst, x0, y0, x1, y0+thickness, c)                     // top
	fillSpan(dst, x0, y1-thickness, x1, y1, c)                     // bottom
	fillSpan(dst, x0, y0+thickness, x0+thickness, y1-thickness, c) // left
	fillSpan(dst, x1-thickness, y0+thickness, x1, y1-thickness, c) // right
}

// fillSpan fills the half-open pixel region [x0,x1) × [y0,y1).
func fillSpan(dst PixelWriter, x0, y0, x1, y1 int, c RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetPixel(x, y, c)
		}
	}
}
