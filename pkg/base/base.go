// Package base builds the root types most declarations start from.
//
// Nothing here is a process-wide singleton: New constructs a fresh Kit and
// callers hand it to whatever code needs it.
package base

import (
	"github.com/go-drift/declare/pkg/class"
	"github.com/go-drift/declare/pkg/events"
	"github.com/go-drift/declare/pkg/object"
)

// Kit holds an independently constructed set of base types and traits.
type Kit struct {
	// Object is the root type, named ObjectExt.
	Object *class.Type
	// Events is the event-emitter trait shared by Evented types of this kit.
	Events *object.Object
}

// New constructs a Kit.
func New() (*Kit, error) {
	root, err := class.Declare("ObjectExt", nil, object.New(nil).
		Put("typeName", object.Func(typeName)).
		Put("is", object.Func(is)))
	if err != nil {
		return nil, err
	}
	return &Kit{Object: root, Events: events.Trait()}, nil
}

// Evented derives a type from the kit's root with the event trait applied
// before mixins.
func (k *Kit) Evented(name string, mixins []*object.Object, statics map[string]any) (*class.Type, error) {
	all := make([]*object.Object, 0, len(mixins)+1)
	all = append(all, k.Events)
	all = append(all, mixins...)
	return k.Object.Extend(name, all, statics)
}

// typeName() returns the name of the receiver's type.
func typeName(this *object.Object, args ...any) (any, error) {
	if t := class.TypeOf(this); t != nil {
		return t.Name(), nil
	}
	return "", nil
}

// is(type) reports whether the receiver is an instance of type.
func is(this *object.Object, args ...any) (any, error) {
	if len(args) == 0 {
		return false, nil
	}
	t, _ := args[0].(*class.Type)
	return class.InstanceOf(this, t), nil
}
