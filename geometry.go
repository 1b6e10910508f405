package vecpath

import (
	"fmt"
	"log/slog"
	"slices"
)

// Subpath is a run of connected curves within a path. A subpath ends at a
// Close command or at the end of the path.
type Subpath struct {
	anchors []Anchor
	curves  []Curve
	// lengths[i] is the arc length of curves[i].
	lengths []float64
	closed  bool
	length  float64
}

// Anchors returns a copy of the subpath's anchors.
func (sp Subpath) Anchors() []Anchor { return slices.Clone(sp.anchors) }

// Curves returns a copy of the subpath's curves. Closed subpaths have one
// more curve than they have anchors minus one, joining the last anchor back
// to the first.
func (sp Subpath) Curves() []Curve { return slices.Clone(sp.curves) }

// Closed reports whether the subpath was terminated by a Close command.
func (sp Subpath) Closed() bool { return sp.closed }

// Length returns the sum of the arc lengths of the subpath's curves.
func (sp Subpath) Length() float64 { return sp.length }

func (sp Subpath) String() string {
	return fmt.Sprintf("Subpath(anchors: %d, curves: %d, closed: %t, length: %g)",
		len(sp.anchors), len(sp.curves), sp.closed, sp.length)
}

// Location identifies a position on a path.
type Location struct {
	// Subpath and Index are the indices of the subpath and of the curve
	// within it.
	Subpath int
	Index   int
	Curve   Curve
	// T is the curve parameter in [0, 1].
	T float64
	// Offset is the arc length from the start of the curve.
	Offset float64
}

// buildSubpath turns the commands of one subpath into anchors and curves.
func buildSubpath(cmds []Command) Subpath {
	var sp Subpath
	for _, cmd := range cmds {
		switch cmd.Kind {
		case MoveToKind, LineToKind:
			sp.anchors = append(sp.anchors, NewAnchor(cmd.P0))
		case CurveToKind:
			if len(sp.anchors) == 0 {
				panic("curveTo command without a preceding anchor")
			}
			last := &sp.anchors[len(sp.anchors)-1]
			*last = last.WithHandleOut(cmd.P0)
			sp.anchors = append(sp.anchors, NewAnchor(cmd.P2).WithHandleIn(cmd.P1))
		case CloseKind:
			sp.closed = true
		default:
			panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
		}
	}

	for i := 0; i < len(sp.anchors)-1; i++ {
		sp.curves = append(sp.curves, NewCurve(sp.anchors[i], sp.anchors[i+1]))
	}
	if sp.closed && len(sp.anchors) > 0 {
		sp.curves = append(sp.curves, NewCurve(sp.anchors[len(sp.anchors)-1], sp.anchors[0]))
	}

	sp.lengths = make([]float64, len(sp.curves))
	for i, c := range sp.curves {
		sp.lengths[i] = c.Arclen()
		sp.length += sp.lengths[i]
	}
	return sp
}

func (p *Path) computeGeometry() {
	p.geomOnce.Do(func() {
		start := 0
		for i, cmd := range p.cmds {
			if cmd.Kind == CloseKind {
				p.subpaths = append(p.subpaths, buildSubpath(p.cmds[start:i+1]))
				start = i + 1
			}
		}
		if start < len(p.cmds) {
			p.subpaths = append(p.subpaths, buildSubpath(p.cmds[start:]))
		}
		for _, sp := range p.subpaths {
			p.length += sp.length
		}
		Logger().Debug("derived path geometry",
			slog.Int("commands", len(p.cmds)),
			slog.Int("subpaths", len(p.subpaths)),
			slog.Float64("length", p.length))
	})
}

// Subpaths returns the path's subpaths.
func (p *Path) Subpaths() []Subpath {
	p.computeGeometry()
	return slices.Clone(p.subpaths)
}

// Length returns the total arc length of all subpaths.
func (p *Path) Length() float64 {
	p.computeGeometry()
	return p.length
}

// BoundingBox returns the smallest rectangle containing every anchor point
// of the path. Handles are not taken into account, so curves may bulge past
// the box. The bounding box of a path without anchors is the zero Rect.
func (p *Path) BoundingBox() Rect {
	p.bboxOnce.Do(func() {
		p.computeGeometry()
		first := true
		for _, sp := range p.subpaths {
			for _, a := range sp.anchors {
				pt := a.Point()
				if first {
					first = false
					p.bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
				} else {
					p.bbox = p.bbox.UnionPoint(pt)
				}
			}
		}
	})
	return p.bbox
}

// Locate maps t ∈ [0, 1], a fraction of the path's total length, to a curve
// and a local curve parameter.
//
// Subpaths and then curves are scanned in order; the first one whose
// cumulative length exceeds the target distance contains the location. If
// none does, which is the case for t = 1, the location is the end of the
// last curve that has non-zero length, or of the last curve if all are
// degenerate. The second return value is false if the path has no curves.
func (p *Path) Locate(t float64) (Location, bool) {
	p.computeGeometry()

	target := p.length * t
	var l float64
	for i, sp := range p.subpaths {
		start := l
		l += sp.length
		if l > target {
			if loc, ok := sp.locate(target - start); ok {
				loc.Subpath = i
				return loc, true
			}
		}
	}

	for i := len(p.subpaths) - 1; i >= 0; i-- {
		if loc, ok := p.subpaths[i].end(); ok {
			loc.Subpath = i
			return loc, true
		}
	}
	return Location{}, false
}

// locate returns the location at distance d from the start of the subpath.
func (sp Subpath) locate(d float64) (Location, bool) {
	var l float64
	for i, c := range sp.curves {
		start := l
		l += sp.lengths[i]
		if l > d {
			return Location{
				Index:  i,
				Curve:  c,
				T:      (d - start) / sp.lengths[i],
				Offset: d - start,
			}, true
		}
	}
	return sp.end()
}

// end returns the location at the end of the subpath's last curve.
func (sp Subpath) end() (Location, bool) {
	if len(sp.curves) == 0 {
		return Location{}, false
	}
	i := len(sp.curves) - 1
	for j := i; j >= 0; j-- {
		if sp.lengths[j] > 0 {
			i = j
			break
		}
	}
	return Location{
		Index:  i,
		Curve:  sp.curves[i],
		T:      1,
		Offset: sp.lengths[i],
	}, true
}

// PointAt returns the point at t ∈ [0, 1] along the path, where t is a
// fraction of the path's total length. It returns the zero Point for paths
// without curves.
func (p *Path) PointAt(t float64) Point {
	loc, ok := p.Locate(t)
	if !ok {
		return Point{}
	}
	return loc.Curve.Eval(loc.T)
}

// TangentAt returns the unit tangent at t. See [Path.PointAt].
func (p *Path) TangentAt(t float64) Vec2 {
	loc, ok := p.Locate(t)
	if !ok {
		return Vec2{}
	}
	return loc.Curve.Tangent(loc.T)
}

// NormalAt returns the unit normal at t, which is the tangent rotated by 90°.
func (p *Path) NormalAt(t float64) Vec2 {
	loc, ok := p.Locate(t)
	if !ok {
		return Vec2{}
	}
	return loc.Curve.Normal(loc.T)
}

// CurvatureAt returns the signed curvature at t.
func (p *Path) CurvatureAt(t float64) float64 {
	loc, ok := p.Locate(t)
	if !ok {
		return 0
	}
	return loc.Curve.Curvature(loc.T)
}

// RadiusAt returns the signed radius of curvature at t.
func (p *Path) RadiusAt(t float64) float64 {
	loc, ok := p.Locate(t)
	if !ok {
		return 0
	}
	return loc.Curve.Radius(loc.T)
}
