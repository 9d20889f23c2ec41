package sift

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serializer events.
var (
	SignalSpecBuilt         = capitan.NewSignal("sift.spec.built", "Spec constructed")
	SignalSerializeStart    = capitan.NewSignal("sift.serialize.start", "Serialization beginning")
	SignalSerializeComplete = capitan.NewSignal("sift.serialize.complete", "Serialization finished")
	SignalMarshalComplete   = capitan.NewSignal("sift.marshal.complete", "Codec encoding finished")
)

// Keys for typed event data.
var (
	KeySpecName    = capitan.NewStringKey("spec_name")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyObjectCount = capitan.NewIntKey("object_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitSpecBuilt emits an event when a spec is constructed.
func emitSpecBuilt(name string, fieldCount int) {
	capitan.Emit(context.Background(), SignalSpecBuilt,
		KeySpecName.Field(name),
		KeyFieldCount.Field(fieldCount),
	)
}

// emitSerializeStart emits an event when serialization begins.
func emitSerializeStart(ctx context.Context, name string, objects int) {
	capitan.Emit(ctx, SignalSerializeStart,
		KeySpecName.Field(name),
		KeyObjectCount.Field(objects),
	)
}

// emitSerializeComplete emits an event when serialization finishes.
func emitSerializeComplete(ctx context.Context, name string, objects int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySpecName.Field(name),
		KeyObjectCount.Field(objects),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalSerializeComplete, fields...)
}

// emitMarshalComplete emits an event when codec encoding finishes.
func emitMarshalComplete(ctx context.Context, name, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeySpecName.Field(name),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalMarshalComplete, fields...)
}
