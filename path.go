package vecpath

import (
	"fmt"
	"slices"
	"sync"
)

// Path is an immutable sequence of drawing commands.
//
// Anchors, curves and lengths are derived from the commands the first time
// they are needed, and the bounding box separately the first time it is
// queried. Derived state is computed at most once per Path, and a Path is safe
// for concurrent use. Transforms never modify a Path; they return a new one.
//
// The zero value is an empty path.
type Path struct {
	cmds []Command

	geomOnce sync.Once
	subpaths []Subpath
	length   float64

	bboxOnce sync.Once
	bbox     Rect
}

// NewPath returns a path consisting of a copy of cmds.
func NewPath(cmds ...Command) *Path {
	return &Path{cmds: slices.Clone(cmds)}
}

// NewPathFromSVG parses SVG path data and returns the resulting path. See
// [ParseSVG] for the supported syntax.
func NewPathFromSVG(d string) (*Path, error) {
	cmds, err := ParseSVG(d)
	if err != nil {
		return nil, err
	}
	return &Path{cmds: cmds}, nil
}

// MustParsePath is like [NewPathFromSVG] but panics if d cannot be parsed.
func MustParsePath(d string) *Path {
	p, err := NewPathFromSVG(d)
	if err != nil {
		panic(fmt.Sprintf("vecpath: parsing %q: %s", d, err))
	}
	return p
}

// Commands returns a copy of the path's commands.
func (p *Path) Commands() []Command {
	return slices.Clone(p.cmds)
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.cmds)
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	return p.SVG(SVGOptions{})
}

// Transform returns a new path with every point mapped through the
// composition of affs, as computed by [Merge]. The last transform is applied
// first.
func (p *Path) Transform(affs ...Affine) *Path {
	aff := Merge(affs...)
	out := make([]Command, len(p.cmds))
	for i, cmd := range p.cmds {
		out[i] = cmd.Transform(aff)
	}
	return &Path{cmds: out}
}

// Translate returns the path moved by v.
func (p *Path) Translate(v Vec2) *Path {
	return p.Transform(Translate(v))
}

// Scale returns the path scaled by (sx, sy) about the center of its bounding
// box.
func (p *Path) Scale(sx, sy float64) *Path {
	return p.Transform(ScaleAbout(sx, sy, p.BoundingBox().Center()))
}

// Rotate returns the path rotated by deg degrees about the center of its
// bounding box.
func (p *Path) Rotate(deg float64) *Path {
	return p.Transform(RotateAbout(deg, p.BoundingBox().Center()))
}

func (p *Path) IsInf() bool {
	for _, cmd := range p.cmds {
		if cmd.IsInf() {
			return true
		}
	}
	return false
}

func (p *Path) IsNaN() bool {
	for _, cmd := range p.cmds {
		if cmd.IsNaN() {
			return true
		}
	}
	return false
}
