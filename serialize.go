package sift

import (
	"context"
	"reflect"
	"time"
)

// Option configures a single invocation.
type Option func(*invocation)

type invocation struct {
	subset []string
}

// Fields restricts the invocation to the named fields. Declaration order
// still governs output order. Unknown names fail with a SpecError before
// any object is processed. Fields with no names selects no fields, so the
// invocation produces empty records.
func Fields(names ...string) Option {
	return func(inv *invocation) {
		if inv.subset == nil {
			inv.subset = []string{}
		}
		inv.subset = append(inv.subset, names...)
	}
}

// Serialize produces one ordered record from obj, iterating descriptors in
// declaration order. Optional fields whose attributes are missing are
// omitted; any other failure aborts the invocation.
func (s *Spec) Serialize(ctx context.Context, obj any, opts ...Option) (*Record, error) {
	fields, err := s.invocationFields(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	emitSerializeStart(ctx, s.name, 1)

	record, err := s.serializeOne(ctx, obj, fields)
	emitSerializeComplete(ctx, s.name, 1, time.Since(start), err)
	return record, err
}

// SerializeMany produces one record per element of objs, which must be a
// slice or array, preserving input order. A failure on any element aborts
// the whole call; no partial results are returned.
func (s *Spec) SerializeMany(ctx context.Context, objs any, opts ...Option) ([]*Record, error) {
	fields, err := s.invocationFields(opts)
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(objs)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, newSpecError(ErrSpec, s.name, "", "many mode requires a slice or array")
	}

	start := time.Now()
	emitSerializeStart(ctx, s.name, rv.Len())

	records := make([]*Record, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		record, err := s.serializeOne(ctx, rv.Index(i).Interface(), fields)
		if err != nil {
			emitSerializeComplete(ctx, s.name, rv.Len(), time.Since(start), err)
			return nil, err
		}
		records = append(records, record)
	}

	emitSerializeComplete(ctx, s.name, rv.Len(), time.Since(start), nil)
	return records, nil
}

// Marshal serializes obj and hands the assembled record to codec. The codec
// call is a leaf: the engine performs no inspection of the payload, and any
// encoder options live on the codec itself.
func (s *Spec) Marshal(ctx context.Context, codec Codec, obj any, opts ...Option) ([]byte, error) {
	record, err := s.Serialize(ctx, obj, opts...)
	if err != nil {
		return nil, err
	}
	return s.encode(ctx, codec, record)
}

// MarshalMany serializes objs in many mode and encodes the record sequence.
func (s *Spec) MarshalMany(ctx context.Context, codec Codec, objs any, opts ...Option) ([]byte, error) {
	records, err := s.SerializeMany(ctx, objs, opts...)
	if err != nil {
		return nil, err
	}
	return s.encode(ctx, codec, records)
}

func (s *Spec) encode(ctx context.Context, codec Codec, payload any) ([]byte, error) {
	start := time.Now()
	data, err := codec.Marshal(payload)
	emitMarshalComplete(ctx, s.name, codec.ContentType(), len(data), time.Since(start), err)
	if err != nil {
		return nil, newCodecError(codec.ContentType(), err)
	}
	return data, nil
}

// invocationFields applies options and returns the participating
// descriptors in declaration order.
func (s *Spec) invocationFields(opts []Option) ([]field, error) {
	var inv invocation
	for _, opt := range opts {
		opt(&inv)
	}
	if inv.subset == nil {
		return s.fields, nil
	}
	return s.subset(inv.subset)
}

// serializeOne assembles a record for a single object.
func (s *Spec) serializeOne(ctx context.Context, obj any, fields []field) (*Record, error) {
	record := newRecord(len(fields))
	for i := range fields {
		f := &fields[i]

		if f.transform.kind == kindGetter {
			value, err := f.transform.getterFn(obj)
			if err != nil {
				return nil, newTransformError(ErrTransform, s.name, f.name, "getter", err)
			}
			record.set(f.alias, value)
			continue
		}

		raw, present, err := s.resolve(obj, f)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}

		value, err := s.transformValue(ctx, f, raw)
		if err != nil {
			return nil, err
		}
		record.set(f.alias, value)
	}
	return record, nil
}

// transformValue dispatches on the transform tag assigned at build time.
func (s *Spec) transformValue(ctx context.Context, f *field, raw any) (any, error) {
	switch f.transform.kind {
	case kindCast:
		value, err := f.transform.castFn(raw)
		if err != nil {
			return nil, newTransformError(ErrCast, s.name, f.name, "cast", err)
		}
		return value, nil
	case kindCallable:
		value, err := f.transform.callFn(raw)
		if err != nil {
			return nil, newTransformError(ErrTransform, s.name, f.name, "callable", err)
		}
		return value, nil
	case kindNested:
		if f.transform.many {
			return f.transform.spec.SerializeMany(ctx, raw)
		}
		return f.transform.spec.Serialize(ctx, raw)
	default:
		return raw, nil
	}
}
