package sift

import (
	"github.com/spf13/cast"
)

// transformKind discriminates the transform variants. Classification happens
// once at spec build time; invocations dispatch on the tag without any type
// inspection.
type transformKind int

const (
	kindIdentity transformKind = iota
	kindCast
	kindGetter
	kindCallable
	kindNested
)

// CastFunc converts a raw resolved value into the output value.
// A non-nil error marks the conversion as failed.
type CastFunc func(v any) (any, error)

// TransformFunc applies an arbitrary transformation to a resolved value.
// The value may be a bound method when the field targets a method on the
// source object.
type TransformFunc func(v any) (any, error)

// GetterFunc is a named method defined on a spec. It receives the source
// object, not the resolved field value.
type GetterFunc func(obj any) (any, error)

// Built-in cast targets. Each wraps the corresponding spf13/cast conversion
// and reports failures through the cast error path.
var (
	Int      CastFunc = func(v any) (any, error) { return cast.ToIntE(v) }
	Int64    CastFunc = func(v any) (any, error) { return cast.ToInt64E(v) }
	Float64  CastFunc = func(v any) (any, error) { return cast.ToFloat64E(v) }
	String   CastFunc = func(v any) (any, error) { return cast.ToStringE(v) }
	Bool     CastFunc = func(v any) (any, error) { return cast.ToBoolE(v) }
	Time     CastFunc = func(v any) (any, error) { return cast.ToTimeE(v) }
	Duration CastFunc = func(v any) (any, error) { return cast.ToDurationE(v) }
)

// Transform describes how a field's resolved value becomes its output value.
// Construct values with Identity, Cast, Getter, Callable, Nested or
// NestedMany; the zero value behaves as Identity.
type Transform struct {
	kind       transformKind
	castFn     CastFunc
	callFn     TransformFunc
	getterName string
	getterFn   GetterFunc // resolved once at spec build time
	spec       *Spec
	many       bool
}

// Identity returns the raw resolved value unchanged.
func Identity() Transform {
	return Transform{kind: kindIdentity}
}

// Cast applies a single-argument conversion to the resolved value.
// Conversion failures surface as a TransformError wrapping ErrCast with the
// underlying cause attached.
func Cast(fn CastFunc) Transform {
	return Transform{kind: kindCast, castFn: fn}
}

// Getter names a method defined on the spec (via Builder.Method or
// WithMethods). The method reference is resolved once at build time, failing
// fast with a SpecError if absent, and is invoked with the source object.
// Accessor resolution is bypassed for getter fields.
func Getter(methodName string) Transform {
	return Transform{kind: kindGetter, getterName: methodName}
}

// Callable applies fn to the resolved value. When the field's accessor path
// lands on a method of the source object, fn receives the bound method and
// may invoke it with arbitrary arguments. Errors from fn propagate as a
// TransformError with the cause attached unmodified.
func Callable(fn TransformFunc) Transform {
	return Transform{kind: kindCallable, callFn: fn}
}

// Nested delegates the resolved value to spec, producing a sub-record.
// The nested spec's own settings and field subset apply independently of the
// parent's. Use spec.Select to narrow the nested fields.
func Nested(spec *Spec) Transform {
	return Transform{kind: kindNested, spec: spec}
}

// NestedMany delegates the resolved value, which must be a slice or array,
// to spec, producing one sub-record per element in input order.
func NestedMany(spec *Spec) Transform {
	return Transform{kind: kindNested, spec: spec, many: true}
}
