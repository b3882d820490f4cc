// Package manifest declares types from a YAML manifest (declare.yaml).
//
// A manifest names reusable traits and an ordered list of types. Each type
// may reference a parent and traits declared earlier in the file, add its own
// members, declare per-instance fields and set statics:
//
//	traits:
//	  named:
//	    members:
//	      label: unnamed
//	      id: {value: 0, configurable: false, enumerable: false}
//	types:
//	  - name: Base
//	    statics: {kind: base}
//	  - name: Derived
//	    parent: Base
//	    mixins: [named]
//	    members: {greeting: hi}
//	    fields: {count: 0}
//
// Member order is preserved as written.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// File is the parsed form of a manifest.
type File struct {
	Namespace string               `yaml:"namespace,omitempty"`
	Verbose   bool                 `yaml:"verbose,omitempty"`
	Traits    map[string]TraitSpec `yaml:"traits,omitempty"`
	Types     []TypeSpec           `yaml:"types"`
}

// TraitSpec describes a named trait.
type TraitSpec struct {
	Members Members `yaml:"members"`
}

// TypeSpec describes one type declaration.
type TypeSpec struct {
	Name    string     `yaml:"name"`
	Parent  string     `yaml:"parent,omitempty"`
	Mixins  stringList `yaml:"mixins,omitempty"`
	Members Members    `yaml:"members,omitempty"`
	Fields  Members    `yaml:"fields,omitempty"`
	Statics Members    `yaml:"statics,omitempty"`
}

// Member is a single member declaration. In YAML it is either a bare value
// or a mapping with a value key and optional descriptor flags, which default
// to true.
type Member struct {
	Name         string
	Value        any
	Writable     *bool
	Enumerable   *bool
	Configurable *bool
}

// Property converts m to a descriptor.
func (m Member) Property() object.Property {
	return object.Property{
		Value:        m.Value,
		Writable:     flag(m.Writable),
		Enumerable:   flag(m.Enumerable),
		Configurable: flag(m.Configurable),
	}
}

func flag(b *bool) bool {
	return b == nil || *b
}

// Members is an ordered list of member declarations decoded from a mapping.
type Members []Member

// Object builds an object holding the members with their descriptors.
func (ms Members) Object(label string) *object.Object {
	o := object.New(nil)
	o.SetLabel(label)
	for _, m := range ms {
		// Fresh object, no member is non-configurable yet.
		_ = o.Define(m.Name, m.Property())
	}
	return o
}

func (ms *Members) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		*ms = nil
		return nil
	}
	if value.Kind == yaml.AliasNode {
		return ms.UnmarshalYAML(value.Alias)
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: members must be a mapping")
	}
	out := make(Members, 0, len(value.Content)/2)
	seen := make(map[string]bool, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: member names must be non-empty")
		}
		if seen[key] {
			return fmt.Errorf("manifest: duplicate member %q", key)
		}
		seen[key] = true

		m := Member{Name: key}
		if err := m.decode(valNode); err != nil {
			return fmt.Errorf("manifest: member %q: %w", key, err)
		}
		out = append(out, m)
	}
	*ms = out
	return nil
}

func (m *Member) decode(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode && hasKey(value, "value") {
		var raw struct {
			Value        any   `yaml:"value"`
			Writable     *bool `yaml:"writable"`
			Enumerable   *bool `yaml:"enumerable"`
			Configurable *bool `yaml:"configurable"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		m.Value = raw.Value
		m.Writable = raw.Writable
		m.Enumerable = raw.Enumerable
		m.Configurable = raw.Configurable
		return nil
	}
	return value.Decode(&m.Value)
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			if str = strings.TrimSpace(str); str != "" {
				items = append(items, str)
			}
		}
		*l = items
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for mixins but found %s", value.ShortTag())
	}
}

// Parse decodes a manifest.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.DeclareError{
			Op:   "manifest.Parse",
			Kind: errors.KindManifest,
			Err:  err,
		}
	}
	return &f, nil
}

// ReadFile reads and decodes the manifest at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.DeclareError{
			Op:   "manifest.ReadFile",
			Kind: errors.KindManifest,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	return Parse(data)
}
