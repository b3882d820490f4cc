// Package templates provides embedded template files for project creation.
package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// InitData contains the data for the starter manifest.
type InitData struct {
	Namespace string // e.g., "calendar"
	TypeName  string // e.g., "CalendarWidget"
}

// ReadFile reads an embedded template file.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// Render executes the embedded template at path with data.
func Render(path string, data any) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(path).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
