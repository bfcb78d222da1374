package inkui

// RenderState is the per-pass snapshot of display-wide flags a painter
// needs. The host captures it once at the top of a paint pass and threads
// it through every Paint call, so a mid-pass mode change can never produce
// a half-inverted frame.
type RenderState struct {
	// Invert is true when the display runs in night mode.
	Invert bool
}

// Apply returns the color adjusted for the render state.
func (st RenderState) Apply(c RGBA) RGBA {
	if st.Invert {
		return c.Invert()
	}
	return c
}

// Painter paints widget content into the given bounds. Hosts wrap their
// widgets' paint routines in this interface so appearance changes compose
// as decorators instead of replacing methods on shared widget classes.
type Painter interface {
	Paint(dst PixelWriter, bounds Rect, st RenderState)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(dst PixelWriter, bounds Rect, st RenderState)

// Paint calls f.
func (f PainterFunc) Paint(dst PixelWriter, bounds Rect, st RenderState) {
	f(dst, bounds, st)
}

// RoundedDecorator wraps a Painter and rounds the result: after the inner
// painter runs, the corners are clipped back to Background and, when
// Thickness >= 1, a border ring of Border color is stroked along the
// rounded boundary. Border and Background are given for the normal
// display; night mode inverts them via the render state.
type RoundedDecorator struct {
	Inner      Painter
	Radius     int
	Thickness  int
	Border     RGBA
	Background RGBA
}

// Paint runs the inner painter, then applies the rounded-corner clip and
// border stroke.
func (d RoundedDecorator) Paint(dst PixelWriter, bounds Rect, st RenderState) {
	if d.Inner != nil {
		d.Inner.Paint(dst, bounds, st)
	}
	ClipRoundedCorners(dst, bounds, d.Radius, st.Apply(d.Background))
	if d.Thickness >= 1 {
		StrokeRoundedRect(dst, bounds, d.Radius, st.Apply(d.Border), d.Thickness)
	}
}

// SolidPainter fills its bounds with one color, adjusted for the render
// state. It is the usual innermost painter under a RoundedDecorator.
type SolidPainter struct {
	Color RGBA
}

// Paint fills the bounds.
func (s SolidPainter) Paint(dst PixelWriter, bounds Rect, st RenderState) {
	fillSpan(dst, bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H, st.Apply(s.Color))
}
