package class

import (
	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// New is the constructing entry point. It allocates an instance delegating to
// t's instance contract, binds it to t and runs initialize with args. The
// value initialize returns is discarded. If initialize fails its error is
// returned unchanged and no instance is produced. An initialize member that
// is present but not a function fails with a KindNotCallable error.
func (t *Type) New(args ...any) (*object.Object, error) {
	inst := object.New(t.proto)
	inst.SetBrand(t)
	if err := t.initialize(inst, args); err != nil {
		return nil, err
	}
	return inst, nil
}

// Call is the plain-call entry point. It is exactly New with the same
// arguments, so the type doubles as a factory function.
func (t *Type) Call(args ...any) (*object.Object, error) {
	return t.New(args...)
}

// Apply runs t's initialize against this when this is an instance of t or of
// one of its subtypes, and returns this. Any other receiver, nil included, is
// upgraded to New(args...).
//
// Subtypes use Apply from their own initialize to run the parent's.
func (t *Type) Apply(this *object.Object, args ...any) (*object.Object, error) {
	if !InstanceOf(this, t) {
		return t.New(args...)
	}
	if err := t.initialize(this, args); err != nil {
		return nil, err
	}
	return this, nil
}

// Invoke calls the member name as resolved on t's instance contract, with
// this as the receiver. It reaches t's version of a member that a subtype
// overrides.
func (t *Type) Invoke(this *object.Object, name string, args ...any) (any, error) {
	return t.proto.CallOn(this, name, args...)
}

// Factory returns New as a plain function value.
func (t *Type) Factory() func(args ...any) (*object.Object, error) {
	return t.New
}

// initialize runs the initialize member of t's instance contract. A missing
// or nil member is skipped; any other non-function value fails.
func (t *Type) initialize(this *object.Object, args []any) error {
	v, ok := t.proto.Lookup(InitializeKey)
	if !ok || v == nil {
		return nil
	}
	hook, ok := object.AsFunc(v)
	if !ok {
		return &errors.DeclareError{
			Op:   "class.New",
			Kind: errors.KindNotCallable,
			Type: t.name,
			Err:  &errors.NotCallableError{Member: InitializeKey, Got: v},
		}
	}
	_, err := hook(this, args...)
	return err
}
