// Package events provides an event-emitter trait for declared types.
//
// Trait returns a mixin with on, off, one and emit members. Each instance
// keeps its handlers in its own Registry, stored as a hidden member of the
// instance itself:
//
//	Calendar, _ := class.Declare("Calendar", nil, []*object.Object{events.Trait(), calendarMembers})
//	cal, _ := Calendar.New()
//	cal.Call("on", "changeDate", object.Func(func(this *object.Object, args ...any) (any, error) {
//	    fmt.Println("changed to", args[0])
//	    return nil, nil
//	}))
//	cal.Call("emit", "changeDate", "2015-05-01")
package events

import (
	"fmt"

	"github.com/go-drift/declare/pkg/errors"
	"github.com/go-drift/declare/pkg/object"
)

// StorageKey is the hidden instance member holding the instance's Registry.
const StorageKey = "__events"

// Handler is a registered event callback. The pointer returned by On or One
// identifies the registration for Off.
type Handler struct {
	event string
	fn    object.Func
	once  bool
}

// Event returns the event name the handler is registered for.
func (h *Handler) Event() string {
	return h.event
}

// Registry stores event handlers for one instance.
type Registry struct {
	handlers map[string][]*Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string][]*Handler)}
}

// On registers fn for event and returns its handle. A nil fn registers
// nothing and returns nil.
func (r *Registry) On(event string, fn object.Func) *Handler {
	return r.add(event, fn, false)
}

// One registers fn to run on the next emission of event only.
func (r *Registry) One(event string, fn object.Func) *Handler {
	return r.add(event, fn, true)
}

func (r *Registry) add(event string, fn object.Func, once bool) *Handler {
	if fn == nil {
		return nil
	}
	h := &Handler{event: event, fn: fn, once: once}
	r.handlers[event] = append(r.handlers[event], h)
	return h
}

// Off removes h from event. A nil h removes every handler of event.
func (r *Registry) Off(event string, h *Handler) {
	if h == nil {
		delete(r.handlers, event)
		return
	}
	list := r.handlers[event]
	for i, cur := range list {
		if cur == h {
			r.handlers[event] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(r.handlers[event]) == 0 {
		delete(r.handlers, event)
	}
}

// Len returns the number of handlers registered for event.
func (r *Registry) Len(event string) int {
	return len(r.handlers[event])
}

// Emit runs the handlers of event in registration order with this as the
// receiver. Handlers registered with One are removed before they run.
// Handlers added during the emission wait for the next one, and handlers
// removed during it do not run. Emit stops at the first handler error and
// returns it.
func (r *Registry) Emit(this *object.Object, event string, args ...any) error {
	list := append([]*Handler(nil), r.handlers[event]...)
	for _, h := range list {
		if !r.registered(event, h) {
			continue
		}
		if h.once {
			r.Off(event, h)
		}
		if _, err := h.fn(this, args...); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registered(event string, h *Handler) bool {
	for _, cur := range r.handlers[event] {
		if cur == h {
			return true
		}
	}
	return false
}

// Of returns the registry owned by o, attaching a fresh one if o has none.
// It fails when o already holds a fixed StorageKey member that is not a
// registry.
func Of(o *object.Object) (*Registry, error) {
	if p, ok := o.OwnProperty(StorageKey); ok {
		if r, ok := p.Value.(*Registry); ok {
			return r, nil
		}
	}
	r := NewRegistry()
	// Fixed for the life of the instance.
	if err := o.Define(StorageKey, object.Property{Value: r}); err != nil {
		return nil, &errors.DeclareError{
			Op:   "events.Of",
			Kind: errors.KindInvalidArgument,
			Type: o.String(),
			Err:  fmt.Errorf("%s is taken: %w", StorageKey, err),
		}
	}
	return r, nil
}

// Trait returns a fresh event-emitter mixin.
func Trait() *object.Object {
	t := object.New(nil)
	t.SetLabel("events.Trait")
	t.Put("initialize", object.Func(initialize))
	t.Put("on", object.Func(on))
	t.Put("off", object.Func(off))
	t.Put("one", object.Func(one))
	t.Put("emit", object.Func(emit))
	return t
}

func initialize(this *object.Object, args ...any) (any, error) {
	_, err := Of(this)
	return nil, err
}

// on(event, fn) returns the *Handler.
func on(this *object.Object, args ...any) (any, error) {
	event, fn, err := eventAndFunc("events.on", args)
	if err != nil || fn == nil {
		return nil, err
	}
	r, err := Of(this)
	if err != nil {
		return nil, err
	}
	return r.On(event, fn), nil
}

// one(event, fn) returns the *Handler.
func one(this *object.Object, args ...any) (any, error) {
	event, fn, err := eventAndFunc("events.one", args)
	if err != nil || fn == nil {
		return nil, err
	}
	r, err := Of(this)
	if err != nil {
		return nil, err
	}
	return r.One(event, fn), nil
}

// off(event, handler?) returns this.
func off(this *object.Object, args ...any) (any, error) {
	event, err := eventName("events.off", args)
	if err != nil {
		return nil, err
	}
	var h *Handler
	if len(args) > 1 && args[1] != nil {
		var ok bool
		if h, ok = args[1].(*Handler); !ok {
			return nil, badArgs("events.off", fmt.Errorf("handler must be *events.Handler, got %T", args[1]))
		}
	}
	r, err := Of(this)
	if err != nil {
		return nil, err
	}
	r.Off(event, h)
	return this, nil
}

// emit(event, args...) returns this.
func emit(this *object.Object, args ...any) (any, error) {
	event, err := eventName("events.emit", args)
	if err != nil {
		return nil, err
	}
	r, err := Of(this)
	if err != nil {
		return nil, err
	}
	if err := r.Emit(this, event, args[1:]...); err != nil {
		return nil, err
	}
	return this, nil
}

func eventName(op string, args []any) (string, error) {
	if len(args) == 0 {
		return "", badArgs(op, fmt.Errorf("event name is required"))
	}
	name, ok := args[0].(string)
	if !ok {
		return "", badArgs(op, fmt.Errorf("event name must be a string, got %T", args[0]))
	}
	return name, nil
}

func eventAndFunc(op string, args []any) (string, object.Func, error) {
	event, err := eventName(op, args)
	if err != nil {
		return "", nil, err
	}
	if len(args) < 2 || args[1] == nil {
		return event, nil, nil
	}
	fn, ok := object.AsFunc(args[1])
	if !ok {
		return "", nil, badArgs(op, fmt.Errorf("handler must be an object.Func, got %T", args[1]))
	}
	return event, fn, nil
}

func badArgs(op string, err error) error {
	return &errors.DeclareError{Op: op, Kind: errors.KindInvalidArgument, Err: err}
}
