package geom

import (
	"fmt"
	"slices"
)

// Kind is the base shape of a Region.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Region is a base shape minus a set of rectangles. A Region is never
// modified after construction; Subtract returns a new value, so a *Region
// can be handed to readers without copying.
type Region struct {
	kind   Kind
	bounds Rect
	holes  []Rect
}

// FromRectangle returns the region covering r.
func FromRectangle(r Rect) *Region {
	return &Region{kind: KindRectangle, bounds: r}
}

// FromEllipse returns the region covering the ellipse inscribed in r.
func FromEllipse(r Rect) *Region {
	return &Region{kind: KindEllipse, bounds: r}
}

// Kind returns the base shape.
func (g *Region) Kind() Kind { return g.kind }

// Bounds returns the bounding rectangle of the base shape.
func (g *Region) Bounds() Rect { return g.bounds }

// Holes returns a copy of the subtracted rectangles.
func (g *Region) Holes() []Rect { return slices.Clone(g.holes) }

// Subtract returns g with r cut out. Rectangles that cannot remove any
// pixel from the base bounds leave the region unchanged.
func (g *Region) Subtract(r Rect) *Region {
	if !g.bounds.Intersects(r) || slices.Contains(g.holes, r) {
		return g
	}
	holes := make([]Rect, len(g.holes), len(g.holes)+1)
	copy(holes, g.holes)
	return &Region{
		kind:   g.kind,
		bounds: g.bounds,
		holes:  append(holes, r),
	}
}

// Contains reports whether p is inside the base shape and outside every hole.
// A nil region contains nothing.
func (g *Region) Contains(p Point) bool {
	if g == nil {
		return false
	}
	var inBase bool
	switch g.kind {
	case KindEllipse:
		inBase = ellipseContains(g.bounds, p)
	default:
		inBase = g.bounds.Contains(p)
	}
	if !inBase {
		return false
	}
	for _, h := range g.holes {
		if h.Contains(p) {
			return false
		}
	}
	return true
}

// Equal reports whether g and o describe the same shape. Holes are compared
// as a set, so the order of subtraction does not matter.
func (g *Region) Equal(o *Region) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.kind != o.kind || g.bounds != o.bounds || len(g.holes) != len(o.holes) {
		return false
	}
	for _, h := range g.holes {
		if !slices.Contains(o.holes, h) {
			return false
		}
	}
	return true
}

func (g *Region) String() string {
	if g == nil {
		return "<nil region>"
	}
	return fmt.Sprintf("%s%s-%d holes", g.kind, g.bounds, len(g.holes))
}
