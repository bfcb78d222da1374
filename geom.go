package inkui

import "math"

// Point represents a 2D point or vector in pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Rect is an integer rectangle with top-left origin.
// W and H are expected to be non-negative; operations treat a rectangle
// with W <= 0 or H <= 0 as empty.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// clampRadius restricts a corner radius so two opposing corner arcs never
// overlap: 2*radius <= min(W, H).
func (r Rect) clampRadius(radius int) int {
	if radius < 0 {
		return 0
	}
	limit := min(r.W, r.H) / 2
	if radius > limit {
		return limit
	}
	return radius
}
