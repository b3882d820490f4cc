package object

import (
	stderrors "errors"
	"sort"

	"github.com/go-drift/declare/pkg/errors"
)

// ErrNotConfigurable is returned by Define when the target member exists and
// is not configurable.
var ErrNotConfigurable = stderrors.New("object: member is not configurable")

// Object is a dynamic object with ordered own properties and an optional
// delegation parent.
type Object struct {
	proto *Object
	props map[string]*Property
	keys  []string
	brand any
	label string
}

// New creates an empty object that delegates unresolved lookups to proto.
// proto may be nil.
func New(proto *Object) *Object {
	return &Object{
		proto: proto,
		props: make(map[string]*Property),
	}
}

// FromMap creates a parentless object holding the entries of m as data
// properties. Keys are added in sorted order.
func FromMap(m map[string]any) *Object {
	o := New(nil)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		o.Put(k, m[k])
	}
	return o
}

// Proto returns the delegation parent, or nil.
func (o *Object) Proto() *Object {
	if o == nil {
		return nil
	}
	return o.proto
}

// InheritsFrom reports whether p appears on o's delegation chain.
func (o *Object) InheritsFrom(p *Object) bool {
	if o == nil || p == nil {
		return false
	}
	for cur := o.proto; cur != nil; cur = cur.proto {
		if cur == p {
			return true
		}
	}
	return false
}

// Brand returns the value bound to o when it was constructed (its type).
func (o *Object) Brand() any {
	if o == nil {
		return nil
	}
	return o.brand
}

// SetBrand binds o to the value that constructed it.
func (o *Object) SetBrand(b any) {
	o.brand = b
}

// Label returns the diagnostic label of o.
func (o *Object) Label() string {
	return o.label
}

// SetLabel sets the diagnostic label used in reports about o.
func (o *Object) SetLabel(label string) {
	o.label = label
}

func (o *Object) String() string {
	if o == nil {
		return "<nil>"
	}
	if o.label != "" {
		return o.label
	}
	return "object"
}

// Define installs p as the own property name, replacing any prior definition.
// It fails with ErrNotConfigurable if name is already a non-configurable own
// property.
func (o *Object) Define(name string, p Property) error {
	if cur, ok := o.props[name]; ok && !cur.Configurable {
		return ErrNotConfigurable
	}
	o.define(name, p)
	return nil
}

func (o *Object) define(name string, p Property) {
	if cur, ok := o.props[name]; ok {
		*cur = p
		return
	}
	o.props[name] = &p
	o.keys = append(o.keys, name)
}

// Put defines name as a writable, enumerable, configurable data property and
// returns o. Members that are already non-configurable are left unchanged.
func (o *Object) Put(name string, value any) *Object {
	_ = o.Define(name, Data(value))
	return o
}

// OwnProperty returns a copy of the descriptor of the own property name.
func (o *Object) OwnProperty(name string) (Property, bool) {
	if o == nil {
		return Property{}, false
	}
	p, ok := o.props[name]
	if !ok {
		return Property{}, false
	}
	return *p, true
}

// OwnKeys returns the names of all own properties in definition order,
// including non-enumerable ones.
func (o *Object) OwnKeys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Keys returns the names of the enumerable own properties in definition order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	var keys []string
	for _, k := range o.keys {
		if o.props[k].Enumerable {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasOwn reports whether name is an own property of o.
func (o *Object) HasOwn(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.props[name]
	return ok
}

// Has reports whether name resolves on o or its delegation chain.
func (o *Object) Has(name string) bool {
	_, p := o.find(name)
	return p != nil
}

// find returns the object on the chain owning name and its descriptor.
func (o *Object) find(name string) (*Object, *Property) {
	for cur := o; cur != nil; cur = cur.proto {
		if p, ok := cur.props[name]; ok {
			return cur, p
		}
	}
	return nil, nil
}

// Lookup resolves name along the delegation chain. Accessor properties are
// read through their getter with o as the receiver.
func (o *Object) Lookup(name string) (any, bool) {
	_, p := o.find(name)
	if p == nil {
		return nil, false
	}
	if p.IsAccessor() {
		if p.Get == nil {
			return nil, true
		}
		return p.Get(o), true
	}
	return p.Value, true
}

// Get is Lookup without the presence flag.
func (o *Object) Get(name string) any {
	v, _ := o.Lookup(name)
	return v
}

// Set assigns value to name and reports whether the assignment took effect.
//
// An accessor found on the chain receives the value through its setter. A
// non-writable data property found on the chain rejects the assignment.
// Otherwise the value is stored as an own data property of o, shadowing any
// inherited one.
func (o *Object) Set(name string, value any) bool {
	owner, p := o.find(name)
	switch {
	case p == nil:
		o.define(name, Data(value))
		return true
	case p.IsAccessor():
		if p.Set == nil {
			return false
		}
		p.Set(o, value)
		return true
	case !p.Writable:
		return false
	case owner == o:
		p.Value = value
		return true
	default:
		o.define(name, Data(value))
		return true
	}
}

// Delete removes the own property name. Non-configurable properties are kept
// and Delete reports false.
func (o *Object) Delete(name string) bool {
	p, ok := o.props[name]
	if !ok {
		return true
	}
	if !p.Configurable {
		return false
	}
	delete(o.props, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Method resolves name along the chain and returns it if it is a Func.
func (o *Object) Method(name string) (Func, bool) {
	v, ok := o.Lookup(name)
	if !ok {
		return nil, false
	}
	return AsFunc(v)
}

// Call invokes the method name with o bound as the receiver.
func (o *Object) Call(name string, args ...any) (any, error) {
	return o.CallOn(o, name, args...)
}

// CallOn resolves the method name on o and invokes it with this bound as the
// receiver. It reaches members that this itself shadows, such as a parent
// contract's initialize or a member of an overridden mixin.
func (o *Object) CallOn(this *Object, name string, args ...any) (any, error) {
	v, _ := o.Lookup(name)
	fn, ok := AsFunc(v)
	if !ok {
		return nil, &errors.DeclareError{
			Op:   "object.Call",
			Kind: errors.KindNotCallable,
			Type: o.String(),
			Err:  &errors.NotCallableError{Member: name, Got: v},
		}
	}
	return fn(this, args...)
}
