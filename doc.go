// Package sift provides declarative object-to-mapping serialization.
//
// A Spec declares, per field, how to reach a value on a source object and
// how to transform it; serializing an object against a spec produces an
// ordered alias-to-value Record, optionally rendered to text by a codec.
// All classification happens once at spec build time, so invocations run a
// flat loop over pre-resolved descriptors.
//
// # Specs
//
// Declare a spec field by field:
//
//	user := sift.NewSpec("User").
//	    Field("name", sift.Identity()).
//	    Field("age", sift.Cast(sift.Int)).
//	    Field("address__city", sift.Identity()).
//	    Alias("name", "username").
//	    Optional("age").
//	    MustBuild()
//
//	record, err := user.Serialize(ctx, obj)
//
// Or synthesize one from data at runtime:
//
//	admin, err := sift.Make("Admin",
//	    sift.WithBases(user),
//	    sift.WithFields(sift.FieldDef{Name: "role", Transform: sift.Identity()}),
//	)
//
// Both paths produce the same immutable Spec; there is no capability gap
// between declared and synthesized specs.
//
// # Accessor paths
//
// A field name may contain "__" separators marking nested traversal:
// "address__city" reads obj.Address.City. DisableAccessor suppresses the
// split for a field, so the whole name is used as one attribute lookup.
// Lookup works against struct fields (case-folded to exported names), map
// keys, and finally methods, which resolve to their bound function values
// so a Callable transform can invoke them.
//
// # Transforms
//
//   - Identity passes the resolved value through.
//   - Cast applies a conversion (built-in targets: Int, Int64, Float64,
//     String, Bool, Time, Duration).
//   - Getter invokes a method defined on the spec with the source object;
//     the reference is resolved once at build time.
//   - Callable applies an arbitrary function to the resolved value.
//   - Nested and NestedMany delegate to a sub-spec.
//
// # Optional fields
//
// Fields marked Optional are omitted from output when their attribute is
// missing. Every other resolution failure aborts the invocation with a
// ResolutionError; in many mode a failure on any object fails the whole
// call and no partial results are returned.
//
// # Codec providers
//
// Text encoding is delegated to a Codec. Implementations are available as
// submodules:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Encoder options (indentation, HTML escaping, and so on) are configured on
// the codec; the engine forwards assembled records without inspecting them.
//
// # Observability
//
// Spec construction and every serialization emit capitan signals
// (SignalSpecBuilt, SignalSerializeStart, SignalSerializeComplete,
// SignalMarshalComplete) carrying the spec name, field and object counts,
// duration, and error.
//
// # Limitations
//
// Cyclic object graphs reached through Nested transforms are not detected;
// serialization of a cycle recurses until the stack is exhausted. Callers
// own cycle-freedom of their object graphs.
package sift
