package sift

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrSpec indicates a malformed or inconsistent spec declaration.
	ErrSpec = errors.New("invalid spec")

	// ErrReservedName indicates a field name collides with a reserved name.
	ErrReservedName = errors.New("reserved field name")

	// ErrInvalidIdentifier indicates a field name is not a valid identifier.
	ErrInvalidIdentifier = errors.New("invalid field identifier")

	// ErrMissingMethod indicates a getter transform names a method the spec
	// does not define.
	ErrMissingMethod = errors.New("missing getter method")

	// ErrUnknownField indicates a field subset names fields the spec does
	// not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrResolve indicates a required field's accessor path could not be
	// resolved against a source object.
	ErrResolve = errors.New("attribute resolution failed")

	// ErrTransform indicates a transform function failed.
	ErrTransform = errors.New("transform failed")

	// ErrCast indicates a cast conversion failed.
	ErrCast = errors.New("cast failed")

	// ErrMarshal indicates the codec failed to marshal assembled output.
	ErrMarshal = errors.New("marshal failed")
)

// SpecError represents a malformed or inconsistent declaration.
// It is raised at spec build time or during invocation setup (unknown
// field subsets), never mid-iteration.
type SpecError struct {
	Err    error  // Underlying sentinel error (ErrReservedName, etc.)
	Spec   string // Spec name, if known at the point of failure
	Field  string // Field name that triggered the error
	Detail string // Additional context
}

func (e *SpecError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Field)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Spec != "" {
		msg = fmt.Sprintf("spec %s: %s", e.Spec, msg)
	}
	return msg
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// ResolutionError represents a required field whose accessor path could not
// be resolved against a given object. It aborts the invocation that raised
// it; optional fields never produce one.
type ResolutionError struct {
	Spec    string // Spec name
	Field   string // Declared field name
	Segment string // Path segment that failed to resolve
	Type    string // Type of the receiver the segment was resolved against
}

func (e *ResolutionError) Error() string {
	if e.Segment != e.Field {
		return fmt.Sprintf("spec %s: cannot resolve field %q: no attribute %q on %s",
			e.Spec, e.Field, e.Segment, e.Type)
	}
	return fmt.Sprintf("spec %s: cannot resolve field %q on %s", e.Spec, e.Field, e.Type)
}

func (e *ResolutionError) Unwrap() error {
	return ErrResolve
}

// TransformError represents a transform failure during an invocation.
// The original cause is attached unmodified.
type TransformError struct {
	Err   error  // Underlying sentinel error (ErrTransform, ErrCast)
	Spec  string // Spec name
	Field string // Field whose transform failed
	Op    string // Transform kind that failed (cast, callable, getter)
	Cause error  // Original error from the transform
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("spec %s: %s transform for field %q: %v", e.Spec, e.Op, e.Field, e.Cause)
	}
	return fmt.Sprintf("spec %s: %s transform for field %q failed", e.Spec, e.Op, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal failure in text-encoding mode.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newSpecError creates a SpecError for declaration failures.
func newSpecError(sentinel error, spec, field, detail string) error {
	return &SpecError{
		Err:    sentinel,
		Spec:   spec,
		Field:  field,
		Detail: detail,
	}
}

// newTransformError creates a TransformError for transform failures.
func newTransformError(sentinel error, spec, field, op string, cause error) error {
	return &TransformError{
		Err:   sentinel,
		Spec:  spec,
		Field: field,
		Op:    op,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal failures.
func newCodecError(contentType string, cause error) error {
	return &CodecError{
		Err:         ErrMarshal,
		ContentType: contentType,
		Cause:       cause,
	}
}
