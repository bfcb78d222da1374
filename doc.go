// Package inkui provides 2D rendering helpers for e-reader user interfaces.
//
// # Overview
//
// inkui is a pure-Go toolkit for the small amount of pixel-level drawing an
// e-ink reader UI needs: rounded-corner clipping and stroking of widget
// frames, and an HSV color wheel with forward rendering and inverse pick
// lookup. All drawing goes through the single-pixel [PixelWriter] primitive
// so the host framebuffer stays in charge of damage tracking and refresh.
//
// # Quick Start
//
//	import "github.com/euphoriyy/inkui"
//
//	pm := inkui.NewPixmap(200, 120)
//	pm.Fill(inkui.White)
//
//	frame := inkui.Rect{X: 10, Y: 10, W: 180, H: 100}
//	inkui.ClipRoundedCorners(pm, frame, 12, inkui.White)
//	inkui.StrokeRoundedRect(pm, frame, 12, inkui.Black, 2)
//
//	w := inkui.Wheel{Center: inkui.Pt(60, 60), Radius: 48, Value: 1}
//	w.Render(pm)
//
// # Design
//
// Every operation is a pure function of its inputs: no hidden caches, no
// owned mutable state, bit-identical output for identical calls. Corner
// work is O(radius²) per corner regardless of widget area, so it is cheap
// enough to run inside a paint callback on slow hardware.
//
// Widget appearance changes are composed with [RoundedDecorator] around a
// host [Painter] rather than by replacing methods on shared widget classes.
// Night-mode inversion is an explicit field on [Wheel] and [RenderState],
// captured once per paint pass instead of read from a global.
//
// By default inkui produces no log output; call [SetLogger] to enable it.
package inkui
