package vecpath

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMarshalCommands(t *testing.T) {
	cmds := []Command{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		CurveTo(Pt(10, 5), Pt(5, 10), Pt(0, 10.5)),
		Close(),
	}
	var buf bytes.Buffer
	if err := MarshalCommands(&buf, cmds); err != nil {
		t.Fatal(err)
	}
	want := `- command: moveTo
  x: 0
  y: 0
- command: lineTo
  x: 10
  y: 0
- command: curveTo
  x1: 10
  y1: 5
  x2: 5
  y2: 10
  x3: 0
  y3: 10.5
- command: close
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	got, err := UnmarshalCommands(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, cmds, got)
}

func TestUnmarshalCommandsJSON(t *testing.T) {
	data := `[
		{"command": "moveTo", "x": 1, "y": 2},
		{"command": "curveTo", "x1": 3, "y1": 4, "x2": 5, "y2": 6, "x3": 7, "y3": 8},
		{"command": "close"}
	]`
	got, err := UnmarshalCommands([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Command{
		MoveTo(Pt(1, 2)),
		CurveTo(Pt(3, 4), Pt(5, 6), Pt(7, 8)),
		Close(),
	}, got)
}

func TestUnmarshalCommandsErrors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"- command: lineTo\n  x: 1\n", []string{"line 1", "missing coordinate x/y"}},
		{"- command: moveTo\n  x: 1\n  y: 1\n- command: arcTo\n", []string{"line 4", `unknown command "arcTo"`}},
		{"- command: curveTo\n  x1: 1\n  y1: 1\n  x3: 1\n  y3: 1\n", []string{"missing coordinate x2/y2"}},
		{"command: close\n", []string{"decode commands"}},
	}
	for _, tt := range tests {
		_, err := UnmarshalCommands([]byte(tt.in))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		for _, s := range tt.want {
			if !strings.Contains(err.Error(), s) {
				t.Errorf("%q: error %q doesn't contain %q", tt.in, err, s)
			}
		}
	}
}

func TestUnmarshalCommandsEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "[]"} {
		got, err := UnmarshalCommands([]byte(in))
		if err != nil {
			t.Errorf("%q: unexpected error: %s", in, err)
		}
		if len(got) != 0 {
			t.Errorf("%q: got %v, want no commands", in, got)
		}
	}
}

func TestMarshalInvalidCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := MarshalCommands(&buf, []Command{{Kind: 42}}); err == nil {
		t.Error("expected error for invalid command kind")
	}
}

func TestPathYAML(t *testing.T) {
	type document struct {
		Name    string `yaml:"name"`
		Outline *Path  `yaml:"outline"`
	}
	in := document{
		Name:    "square",
		Outline: MustParsePath("M0 0 L10 0 L10 10 L0 10 Z"),
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out document
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != in.Name {
		t.Errorf("got name %q, want %q", out.Name, in.Name)
	}
	diff(t, in.Outline.Commands(), out.Outline.Commands())
	assertNearFloat(t, out.Outline.Length(), 40, 1e-9)
}

func TestPathUnmarshalResetsDerivedState(t *testing.T) {
	p := MustParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	assertNearFloat(t, p.Length(), 40, 1e-9)
	diff(t, p.BoundingBox(), Rect{0, 0, 10, 10})

	data := "- {command: moveTo, x: 0, y: 0}\n- {command: lineTo, x: 3, y: 4}\n"
	if err := yaml.Unmarshal([]byte(data), p); err != nil {
		t.Fatal(err)
	}
	assertNearFloat(t, p.Length(), 5, 1e-9)
	diff(t, p.BoundingBox(), Rect{0, 0, 3, 4})
	if n := len(p.Subpaths()); n != 1 {
		t.Errorf("got %d subpaths, want 1", n)
	}
}
