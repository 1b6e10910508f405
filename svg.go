package vecpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to SVG path data.
//
// The output reparses to the same commands only if every subpath starts with
// a MoveTo, as described at [Command]. In SVG, drawing after a Z continues
// from the start of the closed subpath, so [ParseSVG] inserts a MoveTo
// there and the reparsed path gains a segment the original didn't have.
func (p *Path) SVG(opts SVGOptions) string {
	return SVG(p.cmds, opts)
}

// WriteSVG writes the path as SVG path data to w.
func (p *Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.cmds, opts)
}

// SVG converts a sequence of commands to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(cmds []Command, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, cmds, opts)
	return sb.String()
}

// WriteSVG converts a sequence of commands to SVG path data and writes it to
// w. Commands are written as absolute M, L, C and Z commands separated by
// single spaces, with coordinates separated by spaces as well, for example
// "M 0 0 L 10 0 Z".
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, cmds []Command, opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	for i, cmd := range cmds {
		if err != nil {
			return err
		}
		if i > 0 {
			write(space)
		}
		switch cmd.Kind {
		case MoveToKind:
			writef("M %s %s", format(cmd.P0.X), format(cmd.P0.Y))
		case LineToKind:
			writef("L %s %s", format(cmd.P0.X), format(cmd.P0.Y))
		case CurveToKind:
			writef("C %s %s %s %s %s %s",
				format(cmd.P0.X), format(cmd.P0.Y),
				format(cmd.P1.X), format(cmd.P1.Y),
				format(cmd.P2.X), format(cmd.P2.Y))
		case CloseKind:
			write(z)
		default:
			panic(fmt.Sprintf("invalid command kind %v", cmd.Kind))
		}
	}
	return err
}
