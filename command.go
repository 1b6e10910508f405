package vecpath

import (
	"fmt"
)

type CommandKind int

const (
	// Move directly to the point without drawing anything.
	MoveToKind CommandKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CurveToKind
	// Close off the subpath.
	CloseKind
)

func (k CommandKind) String() string {
	switch k {
	case MoveToKind:
		return "moveTo"
	case LineToKind:
		return "lineTo"
	case CurveToKind:
		return "curveTo"
	case CloseKind:
		return "close"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a single drawing command of a path.
//
// MoveTo and LineTo use P0. CurveTo uses P0 and P1 as the control points and
// P2 as the new current point. Close uses no points.
//
// A valid command stream has a MoveTo at the beginning of each subpath.
type Command struct {
	Kind CommandKind
	P0   Point
	P1   Point
	P2   Point
}

func (cmd Command) String() string {
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s%s", cmd.Kind, cmd.P0)
	case CurveToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", cmd.Kind, cmd.P0, cmd.P1, cmd.P2)
	case CloseKind:
		return "close()"
	default:
		return fmt.Sprintf("InvalidCommand(%s, %s, %s)", cmd.P0, cmd.P1, cmd.P2)
	}
}

// Transform maps the command's points through aff.
func (cmd Command) Transform(aff Affine) Command {
	switch cmd.Kind {
	case MoveToKind:
		return MoveTo(cmd.P0.Transform(aff))
	case LineToKind:
		return LineTo(cmd.P0.Transform(aff))
	case CurveToKind:
		return CurveTo(cmd.P0.Transform(aff), cmd.P1.Transform(aff), cmd.P2.Transform(aff))
	case CloseKind:
		return Close()
	default:
		return Command{}
	}
}

// EndPoint returns the point the pen is at after the command. Close has no
// end point of its own.
func (cmd Command) EndPoint() (Point, bool) {
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		return cmd.P0, true
	case CurveToKind:
		return cmd.P2, true
	default:
		return Point{}, false
	}
}

func (cmd Command) IsInf() bool {
	return cmd.P0.IsInf() ||
		cmd.P1.IsInf() ||
		cmd.P2.IsInf()
}

func (cmd Command) IsNaN() bool {
	return cmd.P0.IsNaN() ||
		cmd.P1.IsNaN() ||
		cmd.P2.IsNaN()
}

func MoveTo(pt Point) Command {
	return Command{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) Command {
	return Command{Kind: LineToKind, P0: pt}
}

// CurveTo returns a cubic Bézier command with control points p1 and p2,
// ending at p3.
func CurveTo(p1, p2, p3 Point) Command {
	return Command{Kind: CurveToKind, P0: p1, P1: p2, P2: p3}
}

func Close() Command {
	return Command{Kind: CloseKind}
}
