package vecpath

import (
	"fmt"
	"log/slog"

	"github.com/tdewolff/parse/v2/strconv"
)

// DefaultArcTolerance is the arc approximation tolerance used by [ParseSVG].
const DefaultArcTolerance = 0.1

// ParseOptions specifies optional settings for [ParseSVGOptions].
type ParseOptions struct {
	// The maximum distance between an elliptical arc and the cubic Béziers
	// approximating it. A value of 0 selects DefaultArcTolerance.
	ArcTolerance float64
}

// SyntaxError describes malformed SVG path data.
type SyntaxError struct {
	// Offset is the byte offset in the input at which the error was detected.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("vecpath: bad path data at offset %d: %s", err.Offset, err.Msg)
}

// ParseSVG parses SVG path data into commands, using [DefaultArcTolerance].
//
// All SVG path commands are supported, in absolute and relative form.
// Relative coordinates are resolved, horizontal and vertical lines become
// LineTo, quadratic Béziers are raised to cubics, smooth curves get their
// reflected control points, and elliptical arcs are approximated with cubic
// Béziers. A drawing command following Z starts a new subpath at the previous
// subpath's start point. Empty input yields no commands and no error.
func ParseSVG(d string) ([]Command, error) {
	return ParseSVGOptions(d, ParseOptions{})
}

// cmdLens is the number of numbers consumed by each command.
var cmdLens = [256]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func isCommand(b byte) bool {
	switch b {
	case 'M', 'Z', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A',
		'm', 'z', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a':
		return true
	default:
		return false
	}
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// ParseSVGOptions is like [ParseSVG] but allows configuring the parser.
func ParseSVGOptions(d string, opts ParseOptions) ([]Command, error) {
	tolerance := opts.ArcTolerance
	if tolerance <= 0 {
		tolerance = DefaultArcTolerance
	}

	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if path[i] != 'M' && path[i] != 'm' {
		return nil, &SyntaxError{Offset: i, Msg: "path data must start with a moveto command"}
	}

	var out []Command
	var f [7]float64
	// p0 is the current point, start the current subpath's first point. c
	// and q are the last cubic and quadratic control points, for reflection.
	var p0, start, c, q Point
	prevCmd := byte('z')
	closed := false
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || isCommand(path[i]) {
			if !isCommand(path[i]) {
				return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unknown command %q", path[i])}
			}
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		for j := range cmdLens[CMD] {
			if CMD == 'A' && (j == 3 || j == 4) {
				if i < len(path) && path[i] == '1' {
					f[j] = 1
				} else if i < len(path) && path[i] == '0' {
					f[j] = 0
				} else {
					return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("arc flags of command %q must be 0 or 1", cmd)}
				}
				i++
			} else {
				num, n := strconv.ParseFloat(path[i:])
				if n == 0 {
					switch {
					case repeat && j == 0 && i < len(path):
						return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unknown command %q", path[i])}
					case cmdLens[CMD] > 1:
						return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("command %q takes sets of %d numbers", cmd, cmdLens[CMD])}
					default:
						return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("command %q takes a number", cmd)}
					}
				}
				f[j] = num
				i += n
			}
			i += skipCommaWhitespace(path[i:])
		}

		if closed && CMD != 'M' && CMD != 'Z' {
			out = append(out, MoveTo(start))
		}
		closed = false

		var p1 Point
		rel := cmd >= 'a'
		abs := func(x, y float64) Point {
			if rel {
				return Point{p0.X + x, p0.Y + y}
			}
			return Point{x, y}
		}
		switch CMD {
		case 'M':
			p1 = abs(f[0], f[1])
			out = append(out, MoveTo(p1))
			start = p1
			// Subsequent pairs are implicit lineto commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p1 = start
			out = append(out, Close())
			closed = true
		case 'L':
			p1 = abs(f[0], f[1])
			out = append(out, LineTo(p1))
		case 'H':
			p1 = Point{f[0], p0.Y}
			if rel {
				p1.X += p0.X
			}
			out = append(out, LineTo(p1))
		case 'V':
			p1 = Point{p0.X, f[0]}
			if rel {
				p1.Y += p0.Y
			}
			out = append(out, LineTo(p1))
		case 'C':
			cp1 := abs(f[0], f[1])
			cp2 := abs(f[2], f[3])
			p1 = abs(f[4], f[5])
			out = append(out, CurveTo(cp1, cp2, p1))
			c = cp2
		case 'S':
			cp1 := p0
			cp2 := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			switch prevCmd {
			case 'C', 'c', 'S', 's':
				cp1 = reflect(c, p0)
			}
			out = append(out, CurveTo(cp1, cp2, p1))
			c = cp2
		case 'Q':
			cp := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			out = append(out, quadTo(p0, cp, p1))
			q = cp
		case 'T':
			cp := p0
			p1 = abs(f[0], f[1])
			switch prevCmd {
			case 'Q', 'q', 'T', 't':
				cp = reflect(q, p0)
			}
			out = append(out, quadTo(p0, cp, p1))
			q = cp
		case 'A':
			p1 = abs(f[5], f[6])
			out = appendArc(out, p0, p1, f, tolerance)
		}
		prevCmd = cmd
		p0 = p1
	}
	return out, nil
}

// reflect returns pt mirrored about center.
func reflect(pt, center Point) Point {
	return center.Translate(center.Sub(pt))
}

func quadTo(p0, p1, p2 Point) Command {
	c := QuadBez{p0, p1, p2}.Raise()
	return CurveTo(c.P1, c.P2, c.P3)
}

// appendArc appends the cubic approximation of an SVG arc command from p0 to
// p1 with parameters f.
func appendArc(out []Command, p0, p1 Point, f [7]float64, tolerance float64) []Command {
	arc, ok := ArcFromEndpoints(p0, p1, Vec(f[0], f[1]), f[2], f[3] == 1, f[4] == 1)
	if !ok {
		if p0 == p1 {
			return out
		}
		Logger().Debug("arc with zero radius drawn as line",
			slog.String("from", p0.String()),
			slog.String("to", p1.String()))
		return append(out, LineTo(p1))
	}

	n := len(out)
	for cmd := range arc.Commands(tolerance) {
		if cmd.Kind == CurveToKind {
			out = append(out, cmd)
		}
	}
	if len(out) > n {
		// Snap to the exact endpoint to avoid accumulating rounding errors.
		out[len(out)-1].P2 = p1
	}
	return out
}
