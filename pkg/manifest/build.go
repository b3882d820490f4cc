package manifest

import (
	"fmt"

	"github.com/go-drift/declare/pkg/base"
	"github.com/go-drift/declare/pkg/class"
	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// EventsTrait is the trait name that resolves to the kit's event trait.
const EventsTrait = "events"

// Registry holds the types and traits declared by a manifest.
type Registry struct {
	Namespace string

	types  map[string]*class.Type
	order  []*class.Type
	traits map[string]*object.Object
}

// Type returns the type declared as name.
func (r *Registry) Type(name string) (*class.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Types returns the declared types in declaration order. Kit types are not
// included.
func (r *Registry) Types() []*class.Type {
	out := make([]*class.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Trait returns the trait declared as name.
func (r *Registry) Trait(name string) (*object.Object, bool) {
	t, ok := r.traits[name]
	return t, ok
}

// Build declares every type of f in order.
//
// When kit is non-nil its root type is available as a parent under its own
// name (ObjectExt) and its event trait as the mixin "events". A type without
// a parent is declared as a root type.
func Build(f *File, kit *base.Kit) (*Registry, error) {
	r := &Registry{
		Namespace: f.Namespace,
		types:     make(map[string]*class.Type),
		traits:    make(map[string]*object.Object),
	}
	if kit != nil {
		r.types[kit.Object.Name()] = kit.Object
		r.traits[EventsTrait] = kit.Events
	}
	for name, ts := range f.Traits {
		if _, ok := r.traits[name]; ok {
			return nil, manifestError("", fmt.Errorf("trait %q shadows a built-in trait", name))
		}
		r.traits[name] = ts.Members.Object(name)
	}

	for i, ts := range f.Types {
		if ts.Name == "" {
			return nil, manifestError("", fmt.Errorf("type %d has no name", i))
		}
		if _, ok := r.types[ts.Name]; ok {
			return nil, manifestError(ts.Name, fmt.Errorf("type %q declared twice", ts.Name))
		}
		t, err := r.declare(ts)
		if err != nil {
			return nil, err
		}
		r.types[ts.Name] = t
		r.order = append(r.order, t)
	}
	return r, nil
}

// Load reads the manifest at path and builds it.
func Load(path string, kit *base.Kit) (*Registry, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(f, kit)
}

func (r *Registry) declare(ts TypeSpec) (*class.Type, error) {
	var parent *class.Type
	if ts.Parent != "" {
		p, ok := r.types[ts.Parent]
		if !ok {
			return nil, manifestError(ts.Name, fmt.Errorf("unknown parent %q", ts.Parent))
		}
		parent = p
	}

	mixins := make([]*object.Object, 0, len(ts.Mixins)+1)
	for _, name := range ts.Mixins {
		trait, ok := r.traits[name]
		if !ok {
			return nil, manifestError(ts.Name, fmt.Errorf("unknown trait %q", name))
		}
		mixins = append(mixins, trait)
	}
	if own := ownMembers(ts, parent); own != nil {
		mixins = append(mixins, own)
	}

	var statics *object.Object
	if len(ts.Statics) > 0 {
		statics = ts.Statics.Object(ts.Name)
	}

	return class.Define(class.Definition{
		Name:    ts.Name,
		Parent:  parent,
		Mixins:  mixins,
		Statics: statics,
	})
}

// ownMembers builds the trait holding a type's own members and, when the
// type declares fields, an initialize that installs them on each instance.
func ownMembers(ts TypeSpec, parent *class.Type) *object.Object {
	if len(ts.Members) == 0 && len(ts.Fields) == 0 {
		return nil
	}
	own := ts.Members.Object(ts.Name + ".members")
	if len(ts.Fields) > 0 {
		own.Put(class.InitializeKey, fieldsInitializer(ts.Fields, parent))
	}
	return own
}

// fieldsInitializer runs the parent's initialize, installs the declared
// fields as own members, then applies overrides from a leading
// map[string]any argument.
func fieldsInitializer(fields Members, parent *class.Type) object.Func {
	return func(this *object.Object, args ...any) (any, error) {
		if parent != nil {
			if _, err := parent.Apply(this, args...); err != nil {
				return nil, err
			}
		}
		for _, f := range fields {
			if err := this.Define(f.Name, f.Property()); err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
		}
		if len(args) > 0 {
			if overrides, ok := args[0].(map[string]any); ok {
				for _, k := range object.FromMap(overrides).Keys() {
					this.Set(k, overrides[k])
				}
			}
		}
		return nil, nil
	}
}

func manifestError(typeName string, err error) error {
	return &errors.DeclareError{
		Op:   "manifest.Build",
		Kind: errors.KindManifest,
		Type: typeName,
		Err:  err,
	}
}
