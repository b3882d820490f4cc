// Package object provides the dynamic objects that declared types are built from.
//
// An Object is an ordered set of named properties plus an optional delegation
// parent (its prototype). Property lookups that miss an object's own members
// continue along the delegation chain, so a fresh object created with
// New(parent) exposes every member of parent until it shadows one.
//
// # Properties
//
// Each property carries a full descriptor: either a data value or an
// accessor pair, plus the writable, enumerable and configurable flags.
//
//	o := object.New(nil)
//	o.Put("label", "calendar")
//	o.Define("date", object.Accessor(
//	    func(this *object.Object) any { return this.Get("_date") },
//	    func(this *object.Object, v any) { this.Set("_date", v) },
//	))
//
// Methods are ordinary properties holding a Func. Call looks a method up along
// the chain and invokes it with the receiver bound as this:
//
//	o.Put("greet", object.Func(func(this *object.Object, args ...any) (any, error) {
//	    return "hi " + this.Get("label").(string), nil
//	}))
//	out, err := o.Call("greet")
//
// # Merging
//
// Merge copies the own members of one or more sources onto a destination with
// their full descriptors. Members the destination already holds as
// non-configurable are skipped, never overwritten; each skip is reported to
// the errors package handler as a SkipEvent.
//
// Objects are not safe for concurrent mutation.
package object
