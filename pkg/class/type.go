package class

import "github.com/go-drift/declare/pkg/object"

// DefaultName names types declared without an explicit name.
const DefaultName = "Nameless"

// ConstructorKey is the instance-contract member that points back to the
// owning Type.
const ConstructorKey = "constructor"

// InitializeKey is the instance-contract member run on construction.
const InitializeKey = "initialize"

// Type is a named, constructible entity produced by Declare or Define.
//
// A Type is immutable once returned: Extend builds a new Type rather than
// changing its parent, so Types may be shared between goroutines.
type Type struct {
	name    string
	parent  *Type
	proto   *object.Object
	statics *object.Object
	mixins  []*object.Object
}

// Name returns the diagnostic name of the type.
func (t *Type) Name() string {
	return t.name
}

func (t *Type) String() string {
	return t.name
}

// Parent returns the parent type, or nil for a root type.
func (t *Type) Parent() *Type {
	return t.parent
}

// Prototype returns the instance contract every instance delegates to.
func (t *Type) Prototype() *object.Object {
	return t.proto
}

// Statics returns the static contract of the type.
func (t *Type) Statics() *object.Object {
	return t.statics
}

// Static returns the static member name, following inherited statics.
func (t *Type) Static(name string) any {
	return t.statics.Get(name)
}

// Mixins returns the mixins the type was declared with, in declaration
// order. Nil entries are kept.
func (t *Type) Mixins() []*object.Object {
	out := make([]*object.Object, len(t.mixins))
	copy(out, t.mixins)
	return out
}

// Mixin returns the i-th declared mixin, or nil when i is out of range.
func (t *Type) Mixin(i int) *object.Object {
	if i < 0 || i >= len(t.mixins) {
		return nil
	}
	return t.mixins[i]
}

// IsSubtypeOf reports whether t is other or derives from it.
func (t *Type) IsSubtypeOf(other *Type) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Ancestry returns t followed by its ancestors, nearest first.
func (t *Type) Ancestry() []*Type {
	var chain []*Type
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// TypeOf returns the type that constructed o, or nil if o was not built by a
// Type.
func TypeOf(o *object.Object) *Type {
	t, _ := o.Brand().(*Type)
	return t
}

// InstanceOf reports whether o delegates to t's instance contract, directly
// or through a subtype.
func InstanceOf(o *object.Object, t *Type) bool {
	if t == nil {
		return false
	}
	return o.InheritsFrom(t.proto)
}
