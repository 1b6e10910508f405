package vecpath

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// commandRecord is the serialized form of a Command.
type commandRecord struct {
	Command string   `yaml:"command"`
	X       *float64 `yaml:"x,omitempty"`
	Y       *float64 `yaml:"y,omitempty"`
	X1      *float64 `yaml:"x1,omitempty"`
	Y1      *float64 `yaml:"y1,omitempty"`
	X2      *float64 `yaml:"x2,omitempty"`
	Y2      *float64 `yaml:"y2,omitempty"`
	X3      *float64 `yaml:"x3,omitempty"`
	Y3      *float64 `yaml:"y3,omitempty"`
}

// MarshalYAML implements yaml.Marshaler. Commands are encoded as mappings
// with a "command" key naming the kind and one key per coordinate:
//
//	{command: moveTo, x: 0, y: 0}
//	{command: lineTo, x: 10, y: 0}
//	{command: curveTo, x1: 10, y1: 5, x2: 5, y2: 10, x3: 0, y3: 10}
//	{command: close}
func (cmd Command) MarshalYAML() (any, error) {
	f := func(v float64) *float64 { return &v }
	rec := commandRecord{Command: cmd.Kind.String()}
	switch cmd.Kind {
	case MoveToKind, LineToKind:
		rec.X, rec.Y = f(cmd.P0.X), f(cmd.P0.Y)
	case CurveToKind:
		rec.X1, rec.Y1 = f(cmd.P0.X), f(cmd.P0.Y)
		rec.X2, rec.Y2 = f(cmd.P1.X), f(cmd.P1.Y)
		rec.X3, rec.Y3 = f(cmd.P2.X), f(cmd.P2.Y)
	case CloseKind:
	default:
		return nil, fmt.Errorf("invalid command kind %v", cmd.Kind)
	}
	return rec, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for the format described at
// [Command.MarshalYAML].
func (cmd *Command) UnmarshalYAML(value *yaml.Node) error {
	var rec commandRecord
	if err := value.Decode(&rec); err != nil {
		return err
	}
	pt := func(name string, x, y *float64) (Point, error) {
		if x == nil || y == nil {
			return Point{}, fmt.Errorf("line %d: %s command is missing coordinate %s", value.Line, rec.Command, name)
		}
		return Point{*x, *y}, nil
	}
	switch rec.Command {
	case "moveTo", "lineTo":
		p, err := pt("x/y", rec.X, rec.Y)
		if err != nil {
			return err
		}
		if rec.Command == "moveTo" {
			*cmd = MoveTo(p)
		} else {
			*cmd = LineTo(p)
		}
	case "curveTo":
		p1, err := pt("x1/y1", rec.X1, rec.Y1)
		if err != nil {
			return err
		}
		p2, err := pt("x2/y2", rec.X2, rec.Y2)
		if err != nil {
			return err
		}
		p3, err := pt("x3/y3", rec.X3, rec.Y3)
		if err != nil {
			return err
		}
		*cmd = CurveTo(p1, p2, p3)
	case "close":
		*cmd = Close()
	default:
		return fmt.Errorf("line %d: unknown command %q", value.Line, rec.Command)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, encoding the path as a sequence of
// commands.
func (p *Path) MarshalYAML() (any, error) {
	return p.cmds, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It replaces the commands of p
// and discards everything derived from the old ones. Unlike the other methods
// of Path, it must not be called concurrently with other uses of p.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	var cmds []Command
	if err := value.Decode(&cmds); err != nil {
		return err
	}
	*p = Path{cmds: cmds}
	return nil
}

// MarshalCommands writes cmds to w as a YAML sequence.
func MarshalCommands(w io.Writer, cmds []Command) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cmds); err != nil {
		return fmt.Errorf("encode commands: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode commands: %w", err)
	}
	return nil
}

// UnmarshalCommands decodes a sequence of commands in the format written by
// [MarshalCommands]. As JSON is a subset of YAML, a JSON array of command
// objects is accepted too.
func UnmarshalCommands(data []byte) ([]Command, error) {
	var cmds []Command
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&cmds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode commands: %w", err)
	}
	return cmds, nil
}
