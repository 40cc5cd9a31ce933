// Package layout places attendee text blocks onto a grid of badge slots.
package layout

// Rect is an axis-aligned rectangle in PDF points.
// The origin is the page's top-left corner and y grows downward.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// ShiftY returns r moved vertically by dy.
func (r Rect) ShiftY(dy float64) Rect {
	return Rect{X0: r.X0, Y0: r.Y0 + dy, X1: r.X1, Y1: r.Y1 + dy}
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return (r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2
}
