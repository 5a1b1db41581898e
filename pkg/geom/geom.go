// Package geom provides the small amount of 2D geometry the minimap area
// tracker needs: integer screen rectangles and a region built from a base
// shape with rectangular holes cut out of it.
package geom

import (
	"fmt"
	"image"
)

// Point is a screen coordinate in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) image() image.Point { return image.Pt(p.X, p.Y) }

// Rect is an axis-aligned rectangle in screen coordinates.
// It covers [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Rectangle converts r to the image package's min/max form. An empty r
// maps to the zero rectangle.
func (r Rect) Rectangle() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether r covers no pixel.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.image().In(r.Rectangle())
}

// Intersects reports whether r and o share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return r.Rectangle().Overlaps(o.Rectangle())
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// ellipseContains is the inscribed ellipse test over bounds. Points on the
// outline are outside.
func ellipseContains(bounds Rect, p Point) bool {
	if bounds.Empty() {
		return false
	}
	nx := (float64(p.X)-float64(bounds.X))/float64(bounds.Width) - 0.5
	ny := (float64(p.Y)-float64(bounds.Y))/float64(bounds.Height) - 0.5
	return nx*nx+ny*ny < 0.25
}
