// Package errors provides structured error handling for the declare kit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidMixin indicates a mixin that is neither nil nor an object.
	KindInvalidMixin
	// KindInvalidArgument indicates malformed arguments to Declare or Extend.
	KindInvalidArgument
	// KindNotCallable indicates a method call on a member that is not a function.
	KindNotCallable
	// KindManifest indicates a declaration manifest that failed to load.
	KindManifest
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidMixin:
		return "invalid-mixin"
	case KindInvalidArgument:
		return "invalid-argument"
	case KindNotCallable:
		return "not-callable"
	case KindManifest:
		return "manifest"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DeclareError represents a structured error raised while declaring or using types.
type DeclareError struct {
	// Op is the operation that failed (e.g., "class.Declare").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Type is the name of the type being declared, if applicable.
	Type string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DeclareError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s [%s] type=%s: %v", e.Op, e.Kind, e.Type, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DeclareError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.inspect").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// InvalidMixinError reports a mixin argument that is not an object.
type InvalidMixinError struct {
	// Index is the position of the offending entry in the mixin list.
	Index int
	// Got is the value received.
	Got any
}

func (e *InvalidMixinError) Error() string {
	return fmt.Sprintf("mixin %d is not an object: got %T", e.Index, e.Got)
}

// NotCallableError reports a method lookup that did not resolve to a function.
type NotCallableError struct {
	// Member is the member name that was called.
	Member string
	// Got is the value found under that name (nil when absent).
	Got any
}

func (e *NotCallableError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("member %q is not defined", e.Member)
	}
	return fmt.Sprintf("member %q is not callable: got %T", e.Member, e.Got)
}

// SkipEvent describes a member that a merge left untouched because the
// destination already defined it as non-configurable.
type SkipEvent struct {
	// Member is the skipped member name.
	Member string
	// Destination is a diagnostic label for the destination object.
	Destination string
	// Timestamp is when the skip happened.
	Timestamp time.Time
}

func (e *SkipEvent) String() string {
	if e.Destination != "" {
		return fmt.Sprintf("skipped non-configurable member %q on %s", e.Member, e.Destination)
	}
	return fmt.Sprintf("skipped non-configurable member %q", e.Member)
}

// ErrorHandler receives errors and events reported by the declare kit.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *DeclareError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleSkip is called when a merge skips a non-configurable member.
	HandleSkip(ev *SkipEvent)
}
