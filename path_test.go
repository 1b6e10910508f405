package vecpath

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func square() *Path {
	return NewPath(
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		LineTo(Pt(10, 10)),
		LineTo(Pt(0, 10)),
		Close(),
	)
}

func TestPathSquare(t *testing.T) {
	p := square()
	const epsilon = 1e-9

	assertNearFloat(t, p.Length(), 40, epsilon)
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 10})
	assertNear(t, p.PointAt(0.5), Pt(10, 10), epsilon)
	assertNear(t, p.PointAt(0.125), Pt(5, 0), epsilon)
	assertNear(t, p.PointAt(0.375), Pt(10, 5), epsilon)

	assertNearVec(t, p.TangentAt(0.125), Vec(1, 0), epsilon)
	assertNearVec(t, p.TangentAt(0.375), Vec(0, 1), epsilon)
	assertNearVec(t, p.TangentAt(0.875), Vec(0, -1), epsilon)
	assertNearVec(t, p.NormalAt(0.125), Vec(0, 1), epsilon)
	if k := p.CurvatureAt(0.3); k != 0 {
		t.Errorf("got curvature %v on a straight edge, want 0", k)
	}
	if r := p.RadiusAt(0.3); r != 0 {
		t.Errorf("got radius %v on a straight edge, want 0", r)
	}
}

func TestPathClosedEndpoints(t *testing.T) {
	for _, p := range []*Path{square(), Circle(Pt(3, 4), 5), Rectangle(Rect{1, 2, 4, 8})} {
		start := p.PointAt(0)
		end := p.PointAt(1)
		assertNear(t, start, end, 1e-9)
		diff(t, start, p.Commands()[0].P0)
	}
}

func TestPathSubpaths(t *testing.T) {
	p := square()
	sps := p.Subpaths()
	if len(sps) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(sps))
	}
	sp := sps[0]
	if !sp.Closed() {
		t.Error("subpath should be closed")
	}
	if n := len(sp.Anchors()); n != 4 {
		t.Errorf("got %d anchors, want 4", n)
	}
	curves := sp.Curves()
	if n := len(curves); n != 4 {
		t.Fatalf("got %d curves, want 4", n)
	}
	// The closing curve connects the last anchor back to the first.
	diff(t, curves[3].Cubic(), CubicBez{Pt(0, 10), Pt(0, 10), Pt(0, 0), Pt(0, 0)})
	assertNearFloat(t, sp.Length(), 40, 1e-9)
}

func TestPathCurveHandles(t *testing.T) {
	p := NewPath(
		MoveTo(Pt(0, 0)),
		CurveTo(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
		Close(),
	)
	sp := p.Subpaths()[0]
	anchors := sp.Anchors()
	if len(anchors) != 2 {
		t.Fatalf("got %d anchors, want 2", len(anchors))
	}
	if out, ok := anchors[0].HandleOut(); !ok || out != Pt(0, 10) {
		t.Errorf("got out handle (%s, %t), want (0, 10)", out, ok)
	}
	if _, ok := anchors[0].HandleIn(); ok {
		t.Error("first anchor shouldn't have an incoming handle")
	}
	if in, ok := anchors[1].HandleIn(); !ok || in != Pt(10, 10) {
		t.Errorf("got in handle (%s, %t), want (10, 10)", in, ok)
	}

	curves := sp.Curves()
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	diff(t, curves[0].Cubic(), CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)})
	if !curves[1].IsLinear() {
		t.Error("closing curve should be straight")
	}
}

func TestPathRepeatedMoveTo(t *testing.T) {
	p := NewPath(
		MoveTo(Pt(0, 0)),
		MoveTo(Pt(0, 5)),
		LineTo(Pt(10, 5)),
	)
	sps := p.Subpaths()
	if len(sps) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(sps))
	}
	if sps[0].Closed() {
		t.Error("subpath shouldn't be closed")
	}
	if n := len(sps[0].Anchors()); n != 3 {
		t.Errorf("got %d anchors, want 3", n)
	}
	// The pen move becomes a segment of its own.
	assertNearFloat(t, p.Length(), 15, 1e-9)
}

func TestPathTrailingOpenSubpath(t *testing.T) {
	cmds := append(square().Commands(),
		MoveTo(Pt(20, 0)),
		LineTo(Pt(30, 0)),
	)
	p := NewPath(cmds...)
	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(sps))
	}
	if !sps[0].Closed() || sps[1].Closed() {
		t.Errorf("got closed = %t, %t, want true, false", sps[0].Closed(), sps[1].Closed())
	}
	assertNearFloat(t, p.Length(), 50, 1e-9)
	diff(t, p.BoundingBox(), Rect{0, 0, 30, 10})
	assertNear(t, p.PointAt(1), Pt(30, 0), 1e-9)
	assertNear(t, p.PointAt(0.9), Pt(25, 0), 1e-9)
}

func TestPathLocate(t *testing.T) {
	p := Rectangle(Rect{0, 0, 10, 20})
	loc, ok := p.Locate(0.25)
	if !ok {
		t.Fatal("couldn't locate")
	}
	want := Location{Subpath: 0, Index: 1, Curve: loc.Curve, T: 0.25, Offset: 5}
	diff(t, loc, want, cmpopts.EquateApprox(0, 1e-9), cmpopts.IgnoreUnexported(Curve{}))
	diff(t, loc.Curve.Cubic(), CubicBez{Pt(10, 0), Pt(10, 0), Pt(10, 20), Pt(10, 20)})

	loc, ok = p.Locate(1)
	if !ok {
		t.Fatal("couldn't locate")
	}
	if loc.Index != 3 || loc.T != 1 {
		t.Errorf("got curve %d at %v, want curve 3 at 1", loc.Index, loc.T)
	}
}

func TestPathLocateSkipsEmptySubpaths(t *testing.T) {
	p := NewPath(
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		Close(),
		Close(),
	)
	// The second Close forms a subpath without anchors.
	sps := p.Subpaths()
	if len(sps) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(sps))
	}
	if n := len(sps[1].Curves()); n != 0 {
		t.Errorf("got %d curves in empty subpath, want 0", n)
	}
	assertNear(t, p.PointAt(1), Pt(0, 0), 1e-9)

	q := NewPath(
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		Close(),
		MoveTo(Pt(50, 50)),
	)
	if n := len(q.Subpaths()); n != 2 {
		t.Fatalf("got %d subpaths, want 2", n)
	}
	loc, ok := q.Locate(1)
	if !ok {
		t.Fatal("couldn't locate")
	}
	if loc.Subpath != 0 || loc.Index != 1 {
		t.Errorf("got subpath %d, curve %d, want subpath 0, curve 1", loc.Subpath, loc.Index)
	}
	assertNearVec(t, q.TangentAt(1), Vec(-1, 0), 1e-9)
}

func TestPathEmpty(t *testing.T) {
	for _, p := range []*Path{NewPath(), {}, NewPath(MoveTo(Pt(3, 4)))} {
		if l := p.Length(); l != 0 {
			t.Errorf("got length %v, want 0", l)
		}
		if _, ok := p.Locate(0.5); ok {
			t.Error("located a position on a path without curves")
		}
		diff(t, p.PointAt(0.5), Point{})
		diff(t, p.TangentAt(0.5), Vec2{})
		diff(t, p.NormalAt(0.5), Vec2{})
		if k := p.CurvatureAt(0.5); k != 0 {
			t.Errorf("got curvature %v, want 0", k)
		}
		if r := p.RadiusAt(0.5); r != 0 {
			t.Errorf("got radius %v, want 0", r)
		}
	}
	diff(t, NewPath().BoundingBox(), Rect{})
	diff(t, NewPath(MoveTo(Pt(3, 4))).BoundingBox(), Rect{3, 4, 3, 4})
}

func TestPathCurveToWithoutAnchor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewPath(CurveTo(Pt(0, 0), Pt(1, 1), Pt(2, 2))).Length()
}

func TestPathBoundingBoxIgnoresHandles(t *testing.T) {
	p := NewPath(
		MoveTo(Pt(0, 0)),
		CurveTo(Pt(0, 100), Pt(10, 100), Pt(10, 0)),
	)
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 0})
}

func TestPathTranslate(t *testing.T) {
	p := square()
	moved := p.Translate(Vec(5, -3))
	diff(t, moved.BoundingBox(), Rect{5, -3, 15, 7})
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 10})
	assertNearFloat(t, moved.Length(), p.Length(), 1e-9)
}

func TestPathScale(t *testing.T) {
	p := square().Scale(2, 2)
	diff(t, p.BoundingBox(), Rect{-5, -5, 15, 15}, cmpopts.EquateApprox(0, 1e-9))
	assertNearFloat(t, p.Length(), 80, 1e-9)

	q := square().Scale(3, 1)
	diff(t, q.BoundingBox(), Rect{-10, 0, 20, 10}, cmpopts.EquateApprox(0, 1e-9))
}

func TestPathRotate(t *testing.T) {
	p := square().Rotate(90)
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 10}, cmpopts.EquateApprox(0, 1e-9))
	assertNear(t, p.PointAt(0), Pt(10, 0), 1e-9)

	r := Rectangle(Rect{0, 0, 20, 10}).Rotate(90)
	diff(t, r.BoundingBox(), Rect{5, -5, 15, 15}, cmpopts.EquateApprox(0, 1e-9))

	twice := square().Rotate(90).Rotate(90)
	once := square().Rotate(180)
	for i := range 9 {
		ts := float64(i) / 8
		assertNear(t, twice.PointAt(ts), once.PointAt(ts), 1e-9)
	}
}

func TestPathTransformMerges(t *testing.T) {
	p := square()
	a := Rotate(30)
	b := Translate(Vec(4, 1))
	got := p.Transform(a, b).Commands()
	want := p.Transform(b).Transform(a).Commands()
	diff(t, got, want, cmpopts.EquateApprox(0, 1e-9))
	diff(t, p.Transform().Commands(), p.Commands())
}

func TestPathCommandsAreCopies(t *testing.T) {
	cmds := []Command{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0))}
	p := NewPath(cmds...)
	cmds[1] = LineTo(Pt(100, 0))
	got := p.Commands()
	got[0] = MoveTo(Pt(-1, -1))
	diff(t, p.Commands(), []Command{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0))})
	if n := p.Len(); n != 2 {
		t.Errorf("got %d commands, want 2", n)
	}
}

func TestPathConcurrentQueries(t *testing.T) {
	p := Circle(Pt(0, 0), 10)
	var wg sync.WaitGroup
	lengths := make([]float64, 16)
	for i := range lengths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lengths[i] = p.Length()
			p.BoundingBox()
			p.PointAt(float64(i) / 16)
		}()
	}
	wg.Wait()
	for _, l := range lengths {
		if l != lengths[0] {
			t.Fatalf("got differing lengths %v and %v", l, lengths[0])
		}
	}
	assertNearFloat(t, lengths[0], 2*math.Pi*10, 0.01)
}

func TestPathIsNaN(t *testing.T) {
	if square().IsNaN() || square().IsInf() {
		t.Error("square has non-finite coordinates")
	}
	if !NewPath(MoveTo(Pt(math.NaN(), 0))).IsNaN() {
		t.Error("path with NaN coordinate isn't NaN")
	}
}
