package templates

import (
	"strings"
	"testing"
)

func TestRenderInitManifest(t *testing.T) {
	out, err := Render("init/declare.yaml.tmpl", InitData{Namespace: "calendar", TypeName: "CalendarWidget"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{"namespace: calendar", "- name: CalendarWidget", "kind: calendar"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered manifest missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	if _, err := Render("init/nope.tmpl", InitData{}); err == nil {
		t.Error("expected error for missing template")
	}
}
