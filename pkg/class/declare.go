package class

import (
	"fmt"
	"reflect"

	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// Definition is the typed form of a Declare call.
type Definition struct {
	// Name is the diagnostic name. Empty means DefaultName.
	Name string
	// Parent is the type to derive from, or nil.
	Parent *Type
	// Mixins are merged onto the instance contract in order. Nil entries are
	// skipped by the merge but kept in the type's mixin list.
	Mixins []*object.Object
	// Statics are value-assigned onto the static contract.
	Statics *object.Object
}

// Declare builds a new Type from positional arguments:
//
//	Declare(name?, parent?, mixins?, statics?)
//
// name is any string-kinded value; when the first argument is not one, the
// remaining arguments shift left and the type is named DefaultName. A nil
// first argument followed by all three others is a name placeholder and is
// dropped. parent is
// nil or a *Type. mixins is nil, a single mixin, or a slice of them, where a
// mixin is an *object.Object or a map[string]any. statics is nil, an
// *object.Object or a map[string]any.
//
// Any mixin entry that is neither nil nor an object fails the call with a
// KindInvalidMixin error wrapping *errors.InvalidMixinError.
func Declare(args ...any) (*Type, error) {
	def, err := resolve("class.Declare", args)
	if err != nil {
		return nil, err
	}
	return Define(def)
}

// Extend derives a child type from t. It takes the positional arguments
// name?, mixins?, statics? and is equivalent to Declare(name, t, mixins,
// statics).
//
// Without a name the arguments shift as in Declare, so Extend(nil, m) makes
// m the statics, not the mixins. Extend(nil, m, s) drops the nil as a name
// placeholder.
func (t *Type) Extend(args ...any) (*Type, error) {
	var full []any
	if len(args) == 3 && args[0] == nil {
		args = args[1:]
	}
	if len(args) > 0 {
		if _, ok := asName(args[0]); ok {
			full = append(full, args[0])
			args = args[1:]
		}
	}
	full = append(full, t)
	full = append(full, args...)

	def, err := resolve("class.Extend", full)
	if err != nil {
		return nil, err
	}
	return Define(def)
}

// Define builds a new Type from a Definition.
//
// The instance contract is a fresh object delegating to the parent's, with
// the mixins merged on top and constructor bound to the new type. Parent
// statics are merged onto the static contract before the explicit statics
// are assigned.
func Define(def Definition) (*Type, error) {
	name := def.Name
	if name == "" {
		name = DefaultName
	}

	t := &Type{
		name:    name,
		parent:  def.Parent,
		statics: object.New(nil),
		mixins:  []*object.Object{},
	}
	t.statics.SetLabel(name)

	var parentProto *object.Object
	if def.Parent != nil {
		parentProto = def.Parent.proto
	}
	t.proto = object.New(parentProto)
	t.proto.SetLabel(name + ".prototype")
	t.bindConstructor()

	if def.Parent != nil {
		object.Merge(t.statics, def.Parent.statics)
	}

	if len(def.Mixins) > 0 {
		t.mixins = append(t.mixins, def.Mixins...)
		object.Merge(t.proto, t.mixins...)
		// A mixin may carry its own constructor member.
		t.bindConstructor()
	}

	if def.Statics != nil {
		for _, key := range def.Statics.Keys() {
			t.statics.Set(key, def.Statics.Get(key))
		}
	}

	return t, nil
}

func (t *Type) bindConstructor() {
	// Only this package defines the member and it is always configurable.
	_ = t.proto.Define(ConstructorKey, object.Hidden(t))
}

func resolve(op string, args []any) (Definition, error) {
	var def Definition
	if len(args) > 0 {
		if name, ok := asName(args[0]); ok {
			def.Name = name
			args = args[1:]
		} else if len(args) == 4 && args[0] == nil {
			args = args[1:]
		}
	}
	if len(args) > 3 {
		return def, invalidArgument(op, def.Name, fmt.Errorf("expected at most 4 arguments, got %d extra", len(args)-3))
	}
	rest := make([]any, 3)
	copy(rest, args)

	switch p := rest[0].(type) {
	case nil:
	case *Type:
		def.Parent = p
	default:
		return def, invalidArgument(op, def.Name, fmt.Errorf("parent must be a *class.Type, got %T", rest[0]))
	}

	mixins, err := normalizeMixins(rest[1])
	if err != nil {
		return def, &errors.DeclareError{
			Op:   op,
			Kind: errors.KindInvalidMixin,
			Type: def.Name,
			Err:  err,
		}
	}
	def.Mixins = mixins

	statics, err := normalizeStatics(rest[2])
	if err != nil {
		return def, invalidArgument(op, def.Name, err)
	}
	def.Statics = statics

	return def, nil
}

func invalidArgument(op, name string, err error) error {
	return &errors.DeclareError{
		Op:   op,
		Kind: errors.KindInvalidArgument,
		Type: name,
		Err:  err,
	}
}

// asName reports whether v is string-kinded and returns its value.
func asName(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// normalizeMixins turns the mixins argument into an ordered list. A nil
// argument yields a nil list; a single mixin yields a one-element list.
func normalizeMixins(v any) ([]*object.Object, error) {
	switch m := v.(type) {
	case nil:
		return nil, nil
	case []*object.Object:
		return m, nil
	case []map[string]any:
		out := make([]*object.Object, len(m))
		for i, entry := range m {
			if entry != nil {
				out[i] = object.FromMap(entry)
			}
		}
		return out, nil
	case []any:
		out := make([]*object.Object, len(m))
		for i, entry := range m {
			o, err := asMixin(i, entry)
			if err != nil {
				return nil, err
			}
			out[i] = o
		}
		return out, nil
	default:
		o, err := asMixin(0, v)
		if err != nil {
			return nil, err
		}
		return []*object.Object{o}, nil
	}
}

func asMixin(i int, v any) (*object.Object, error) {
	switch m := v.(type) {
	case nil:
		return nil, nil
	case *object.Object:
		return m, nil
	case map[string]any:
		if m == nil {
			return nil, nil
		}
		return object.FromMap(m), nil
	default:
		return nil, &errors.InvalidMixinError{Index: i, Got: v}
	}
}

func normalizeStatics(v any) (*object.Object, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case *object.Object:
		return s, nil
	case map[string]any:
		if s == nil {
			return nil, nil
		}
		return object.FromMap(s), nil
	default:
		return nil, fmt.Errorf("statics must be an object or map[string]any, got %T", v)
	}
}
