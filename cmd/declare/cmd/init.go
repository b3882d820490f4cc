package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-drift/declare/cmd/declare/internal/config"
	"github.com/go-drift/declare/cmd/declare/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter declare.yaml",
		Long: `Write a starter declare.yaml into the project root.

The namespace defaults to the last element of the go.mod module path and
the example type is named after the optional argument. Existing manifests
are never overwritten.

Examples:
  declare init
  declare init CalendarWidget`,
		Usage: "declare init [type-name]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	typeName := "CalendarWidget"
	if len(args) > 0 {
		typeName = args[0]
	}
	if err := validateTypeName(typeName); err != nil {
		return fmt.Errorf("invalid type name %q: %w", typeName, err)
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root, config.Options{Manifest: manifestFlag})
	if err != nil {
		return err
	}
	if err := writeManifest(cfg.Manifest, templates.InitData{
		Namespace: cfg.Namespace,
		TypeName:  typeName,
	}); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", cfg.Manifest)
	fmt.Printf("Next steps:\n")
	fmt.Printf("  declare inspect\n")
	fmt.Printf("  declare new %s date=2015-05-01\n", typeName)
	return nil
}

// writeManifest renders the starter manifest to path. It refuses to replace
// an existing file.
func writeManifest(path string, data templates.InitData) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	content, err := templates.Render("init/declare.yaml.tmpl", data)
	if err != nil {
		return fmt.Errorf("failed to render manifest template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

var validTypeName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// validateTypeName checks that name is usable as a type name in a manifest:
// starts with a letter, contains only letters, digits and underscores.
func validateTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("type name cannot be empty")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("type name cannot start with a hyphen")
	}
	if !validTypeName.MatchString(name) {
		return fmt.Errorf("type name must start with a letter and contain only letters, numbers, and underscores")
	}
	return nil
}
