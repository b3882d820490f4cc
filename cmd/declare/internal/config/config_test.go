package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultNamespace(t *testing.T) {
	tests := []struct {
		name       string
		modulePath string
		dir        string
		want       string
	}{
		{"module last element", "github.com/acme/calendar", "/src/x", "calendar"},
		{"major version stripped", "github.com/acme/calendar/v2", "/src/x", "calendar"},
		{"punctuation dropped", "github.com/acme/my-widgets", "/src/x", "mywidgets"},
		{"no module", "", "/src/Date_Picker", "datepicker"},
		{"nothing usable", "", "/src/---", "app"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultNamespace(tt.modulePath, tt.dir); got != tt.want {
				t.Errorf("defaultNamespace(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv(ManifestEnv, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/widgets/v3\n\ngo 1.24\n")

	cfg, err := Resolve(dir, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "example.com/widgets/v3" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.Namespace != "widgets" {
		t.Errorf("Namespace = %q, want widgets", cfg.Namespace)
	}
	if cfg.Manifest != filepath.Join(dir, ManifestFile) {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestResolveReadsManifestHead(t *testing.T) {
	t.Setenv(ManifestEnv, "")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestFile), "namespace: calendar\nverbose: true\ntypes: []\n")

	cfg, err := Resolve(dir, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Namespace != "calendar" || !cfg.Verbose {
		t.Errorf("Resolved = %+v, want namespace calendar and verbose", cfg)
	}
}

func TestResolveManifestPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "env.yaml"), "namespace: fromenv\n")
	writeFile(t, filepath.Join(dir, "flag.yaml"), "namespace: fromflag\n")
	t.Setenv(ManifestEnv, "env.yaml")

	cfg, err := Resolve(dir, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Namespace != "fromenv" {
		t.Errorf("env manifest: Namespace = %q", cfg.Namespace)
	}

	cfg, err = Resolve(dir, Options{Manifest: filepath.Join(dir, "flag.yaml"), Verbose: true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Namespace != "fromflag" || !cfg.Verbose {
		t.Errorf("flag manifest: %+v", cfg)
	}
}

func TestResolveBadInput(t *testing.T) {
	t.Setenv(ManifestEnv, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestFile), "namespace: [unterminated\n")
	if _, err := Resolve(dir, Options{}); err == nil {
		t.Error("expected parse error for malformed manifest")
	}

	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "go 1.24\n")
	if _, err := Resolve(dir, Options{}); err == nil {
		t.Error("expected error for go.mod without module line")
	}
}
