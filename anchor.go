package vecpath

import "fmt"

// Anchor is a vertex of a piecewise Bézier path: an on-curve point with
// optional incoming and outgoing handles.
//
// Handles are absolute control point positions, not offsets from the point.
// A missing handle means that the adjacent segment meets the anchor as a
// straight corner. Anchors are immutable; methods that change an anchor
// return a modified copy.
type Anchor struct {
	point     Point
	handleIn  option[Point]
	handleOut option[Point]
}

// NewAnchor returns an anchor at pt without handles.
func NewAnchor(pt Point) Anchor {
	return Anchor{point: pt}
}

// Point returns the anchor's on-curve point.
func (a Anchor) Point() Point { return a.point }

// HandleIn returns the incoming handle, if any.
func (a Anchor) HandleIn() (Point, bool) { return a.handleIn.get() }

// HandleOut returns the outgoing handle, if any.
func (a Anchor) HandleOut() (Point, bool) { return a.handleOut.get() }

// WithHandleIn returns a copy of a with its incoming handle set to pt.
func (a Anchor) WithHandleIn(pt Point) Anchor {
	a.handleIn.set(pt)
	return a
}

// WithHandleOut returns a copy of a with its outgoing handle set to pt.
func (a Anchor) WithHandleOut(pt Point) Anchor {
	a.handleOut.set(pt)
	return a
}

// HasHandles reports whether a has at least one handle.
func (a Anchor) HasHandles() bool {
	return a.handleIn.isSet || a.handleOut.isSet
}

// RemoveHandles returns a copy of a without handles.
func (a Anchor) RemoveHandles() Anchor {
	a.handleIn.clear()
	a.handleOut.clear()
	return a
}

func (a Anchor) String() string {
	handle := func(opt option[Point]) string {
		if pt, ok := opt.get(); ok {
			return pt.String()
		}
		return "none"
	}
	return fmt.Sprintf("Anchor(%s, in: %s, out: %s)", a.point, handle(a.handleIn), handle(a.handleOut))
}
