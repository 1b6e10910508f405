// Package geomconv converts between vecpath values and the geometry types of
// seehuhn.de/go/geom, so that paths can be handed to renderers and PDF
// writers built on that package.
package geomconv

import (
	"log/slog"

	"honnef.co/go/vecpath"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func ToVec(pt vecpath.Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

func FromVec(v vec.Vec2) vecpath.Point {
	return vecpath.Pt(v.X, v.Y)
}

// ToMatrix returns the matrix describing the same transform as aff. Both
// types store the coefficients in the same order.
func ToMatrix(aff vecpath.Affine) matrix.Matrix {
	return matrix.Matrix(aff.Coefficients())
}

func FromMatrix(m matrix.Matrix) vecpath.Affine {
	return vecpath.NewAffine([6]float64(m))
}

// ToData converts the commands of p to path data.
func ToData(p *vecpath.Path) *path.Data {
	d := &path.Data{}
	for _, cmd := range p.Commands() {
		switch cmd.Kind {
		case vecpath.MoveToKind:
			d.Cmds = append(d.Cmds, path.CmdMoveTo)
			d.Coords = append(d.Coords, ToVec(cmd.P0))
		case vecpath.LineToKind:
			d.Cmds = append(d.Cmds, path.CmdLineTo)
			d.Coords = append(d.Coords, ToVec(cmd.P0))
		case vecpath.CurveToKind:
			d.Cmds = append(d.Cmds, path.CmdCubeTo)
			d.Coords = append(d.Coords, ToVec(cmd.P0), ToVec(cmd.P1), ToVec(cmd.P2))
		case vecpath.CloseKind:
			d.Cmds = append(d.Cmds, path.CmdClose)
		}
	}
	return d
}

// FromData converts path data to commands. Quadratic Béziers are raised to
// cubics, which represents them exactly.
func FromData(d *path.Data) []vecpath.Command {
	var out []vecpath.Command
	var current, start vecpath.Point
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = FromVec(d.Coords[i])
			start = current
			out = append(out, vecpath.MoveTo(current))
			i++
		case path.CmdLineTo:
			current = FromVec(d.Coords[i])
			out = append(out, vecpath.LineTo(current))
			i++
		case path.CmdQuadTo:
			c := vecpath.QuadBez{P0: current, P1: FromVec(d.Coords[i]), P2: FromVec(d.Coords[i+1])}.Raise()
			out = append(out, vecpath.CurveTo(c.P1, c.P2, c.P3))
			current = c.P3
			i += 2
		case path.CmdCubeTo:
			current = FromVec(d.Coords[i+2])
			out = append(out, vecpath.CurveTo(FromVec(d.Coords[i]), FromVec(d.Coords[i+1]), current))
			i += 3
		case path.CmdClose:
			out = append(out, vecpath.Close())
			current = start
		default:
			vecpath.Logger().Debug("skipping unknown path command", slog.Any("command", cmd))
		}
	}
	return out
}

// NewPath returns a vecpath.Path with the commands of d.
func NewPath(d *path.Data) *vecpath.Path {
	return vecpath.NewPath(FromData(d)...)
}
