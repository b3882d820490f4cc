package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-drift/declare/pkg/base"
	"github.com/go-drift/declare/pkg/manifest"
	"github.com/go-drift/declare/pkg/object"
)

const testManifest = `namespace: calendar
traits:
  named:
    members:
      label: unnamed
types:
  - name: Widget
    parent: ObjectExt
    fields:
      className: widget
  - name: CalendarWidget
    parent: Widget
    mixins: [events, named]
    fields:
      date: null
      weekFirstDay: 1
    statics:
      kind: calendar
`

func buildTestRegistry(t *testing.T) *manifest.Registry {
	t.Helper()
	f, err := manifest.Parse([]byte(testManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	kit, err := base.New()
	if err != nil {
		t.Fatalf("base.New: %v", err)
	}
	reg, err := manifest.Build(f, kit)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return reg
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"date=2015-05-01", "weekFirstDay=0", "open=true", "note=", "raw=[oops"})
	if err != nil {
		t.Fatalf("parseAssignments: %v", err)
	}
	want := map[string]any{
		"date":         "2015-05-01",
		"weekFirstDay": 0,
		"open":         true,
		"note":         nil,
		"raw":          "[oops",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseAssignments = %#v, want %#v", got, want)
	}
}

func TestParseAssignmentsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing equals", []string{"date"}},
		{"empty key", []string{"=1"}},
		{"duplicate", []string{"a=1", "a=2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseAssignments(tt.args); err == nil {
				t.Errorf("parseAssignments(%q) should fail", tt.args)
			}
		})
	}
}

func TestWriteInspect(t *testing.T) {
	reg := buildTestRegistry(t)
	var buf bytes.Buffer
	writeInspect(&buf, reg, reg.Types())
	out := buf.String()

	for _, want := range []string{
		"Namespace: calendar",
		"CalendarWidget\n",
		"ancestry:  Widget, ObjectExt",
		"mixins:    events.Trait, named, CalendarWidget.members",
		"contract:  constructor, initialize, on, off, one, emit, label",
		"statics:   kind=calendar",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteInstance(t *testing.T) {
	reg := buildTestRegistry(t)
	calendar, _ := reg.Type("CalendarWidget")
	inst, err := calendar.New(map[string]any{"date": "2015-05-01"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	writeInstance(&buf, inst)
	want := "CalendarWidget instance\n" +
		"  className    = widget\n" +
		"  date         = 2015-05-01\n" +
		"  weekFirstDay = 1\n"
	if buf.String() != want {
		t.Errorf("writeInstance =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestFormatValue(t *testing.T) {
	reg := buildTestRegistry(t)
	widget, _ := reg.Type("Widget")
	tests := []struct {
		v    any
		want string
	}{
		{nil, "null"},
		{1, "1"},
		{widget, "type Widget"},
		{object.Func(func(*object.Object, ...any) (any, error) { return nil, nil }), "<func>"},
		{object.New(nil), "object"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestRunCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declare.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		manifestFlag = ""
		verboseFlag = false
	})

	if err := run([]string{"--manifest", path, "inspect", "CalendarWidget"}); err != nil {
		t.Errorf("inspect: %v", err)
	}
	if manifestFlag != path {
		t.Errorf("manifestFlag = %q, want %q", manifestFlag, path)
	}
	if err := run([]string{"--manifest=" + path, "new", "CalendarWidget", "date=2015-05-01"}); err != nil {
		t.Errorf("new: %v", err)
	}
	if err := run([]string{"--manifest", path, "new", "Missing"}); err == nil {
		t.Error("new with an unknown type should fail")
	}
	if err := run([]string{"--manifest", path, "inspect", "Missing"}); err == nil {
		t.Error("inspect with an unknown type should fail")
	}
	if err := run([]string{"bogus"}); err == nil {
		t.Error("unknown command should fail")
	}
	if err := run([]string{"--manifest"}); err == nil {
		t.Error("--manifest without a path should fail")
	}
	if err := run([]string{"version"}); err != nil {
		t.Errorf("version: %v", err)
	}
}
