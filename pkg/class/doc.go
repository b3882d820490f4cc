// Package class declares named runtime types on top of package object.
//
// A Type pairs an instance contract (the prototype every instance delegates
// to) with a static contract (members of the type itself). Types support a
// single parent, an ordered list of mixins merged onto the instance contract,
// and statics inherited from the parent.
//
// # Declaring Types
//
// Declare takes positional arguments: an optional name, an optional parent,
// optional mixins and optional statics. When the first argument is not a
// string the remaining arguments shift left and the type is named
// DefaultName.
//
//	Base, _ := class.Declare("Base", nil, nil, map[string]any{"kind": "base"})
//	Derived, _ := Base.Extend("Derived", map[string]any{
//	    "greet": object.Func(func(this *object.Object, args ...any) (any, error) {
//	        return "hi", nil
//	    }),
//	})
//
// Define is the typed equivalent of Declare.
//
// # Construction
//
// New allocates an instance, binds it to its type and runs the instance
// contract's initialize member with the given arguments. Call is the
// plain-call form and is defined as exactly New, so both produce equivalent
// instances. Apply runs a type's initialize on an existing instance of that
// type (or of a subtype), which is how a subtype chains to its parent:
//
//	"initialize": object.Func(func(this *object.Object, args ...any) (any, error) {
//	    if _, err := Widget.Apply(this, args...); err != nil {
//	        return nil, err
//	    }
//	    // Reach the initialize of the first mixin, which a later one shadowed.
//	    return Calendar.Mixin(0).CallOn(this, "initialize", args...)
//	}),
//
// Errors returned by initialize propagate unchanged and no instance is
// returned.
//
// # Mixins
//
// Mixins are merged in order, so a later mixin replaces a same-named member of
// an earlier one. The original list is kept verbatim and is available through
// Mixins and Mixin so the shadowed member stays reachable.
package class
