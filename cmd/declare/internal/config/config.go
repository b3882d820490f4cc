// Package config resolves the settings the declare CLI runs with.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name looked up in the project root.
const ManifestFile = "declare.yaml"

// ManifestEnv overrides the manifest path when no flag is given.
const ManifestEnv = "DECLARE_MANIFEST"

// Config holds the settings read from the head of a manifest. The type and
// trait declarations are left to the manifest package.
type Config struct {
	Namespace string `yaml:"namespace,omitempty"`
	Verbose   bool   `yaml:"verbose,omitempty"`
}

// Options carries command-line overrides.
type Options struct {
	Manifest string
	Verbose  bool
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Namespace  string
	Manifest   string
	Verbose    bool
}

// LoadOptional reads the settings from the manifest at path if it exists.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve picks the manifest for the project at dir and resolves defaults.
//
// The manifest path comes from opts, then $DECLARE_MANIFEST, then
// declare.yaml in dir. Relative paths are taken relative to dir. A project
// without go.mod is allowed; its namespace falls back to the directory name.
func Resolve(dir string, opts Options) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	manifest := strings.TrimSpace(opts.Manifest)
	if manifest == "" {
		manifest = strings.TrimSpace(os.Getenv(ManifestEnv))
	}
	if manifest == "" {
		manifest = ManifestFile
	}
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(dir, manifest)
	}

	cfg, err := LoadOptional(manifest)
	if err != nil {
		return nil, err
	}

	namespace := strings.TrimSpace(cfg.Namespace)
	if namespace == "" {
		namespace = defaultNamespace(modulePath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Namespace:  namespace,
		Manifest:   manifest,
		Verbose:    opts.Verbose || cfg.Verbose,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod. When
// there is none the current directory is returned.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultNamespace is the last element of the module path without its major
// version suffix, or the directory name outside a module.
func defaultNamespace(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		prefix, _, ok := module.SplitPathVersion(modulePath)
		if !ok {
			prefix = modulePath
		}
		parts := strings.Split(prefix, "/")
		base = parts[len(parts)-1]
	}
	base = sanitize(base)
	if base == "" {
		return "app"
	}
	return base
}

func sanitize(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			// Separators and punctuation are dropped.
		}
	}
	return string(out)
}
