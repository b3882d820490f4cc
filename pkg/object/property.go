package object

// Func is a method member. The receiver is passed explicitly as this.
type Func func(this *Object, args ...any) (any, error)

// Getter computes an accessor property's value for a receiver.
type Getter func(this *Object) any

// Setter stores an accessor property's value for a receiver.
type Setter func(this *Object, value any)

// Property describes a single member of an Object.
//
// A property is either a data property (Value, Writable) or an accessor
// property (Get, Set). Enumerable and Configurable apply to both kinds.
type Property struct {
	Value        any
	Get          Getter
	Set          Setter
	Writable     bool
	Enumerable   bool
	Configurable bool
}

// Data returns a writable, enumerable, configurable data property.
func Data(value any) Property {
	return Property{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// Hidden returns a writable, configurable data property that is not enumerable.
func Hidden(value any) Property {
	return Property{Value: value, Writable: true, Configurable: true}
}

// Accessor returns an enumerable, configurable accessor property.
// Either function may be nil.
func Accessor(get Getter, set Setter) Property {
	return Property{Get: get, Set: set, Enumerable: true, Configurable: true}
}

// IsAccessor reports whether p is an accessor property.
func (p Property) IsAccessor() bool {
	return p.Get != nil || p.Set != nil
}

// AsFunc converts v to a Func if it holds one.
// Plain function literals with the Func signature are accepted too.
func AsFunc(v any) (Func, bool) {
	switch fn := v.(type) {
	case Func:
		return fn, fn != nil
	case func(this *Object, args ...any) (any, error):
		return fn, fn != nil
	default:
		return nil, false
	}
}
