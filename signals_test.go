package sift

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitSpecBuilt(_ *testing.T) {
	// Should not panic
	emitSpecBuilt("user", 3)
}

func TestEmitSerializeStart(_ *testing.T) {
	emitSerializeStart(context.Background(), "user", 1)
}

func TestEmitSerializeComplete_Success(_ *testing.T) {
	emitSerializeComplete(context.Background(), "user", 1, 100*time.Millisecond, nil)
}

func TestEmitSerializeComplete_Error(_ *testing.T) {
	emitSerializeComplete(context.Background(), "user", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitMarshalComplete_Success(_ *testing.T) {
	emitMarshalComplete(context.Background(), "user", "application/json", 512, 100*time.Millisecond, nil)
}

func TestEmitMarshalComplete_Error(_ *testing.T) {
	emitMarshalComplete(context.Background(), "user", "application/json", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalSpecBuilt", SignalSpecBuilt},
		{"SignalSerializeStart", SignalSerializeStart},
		{"SignalSerializeComplete", SignalSerializeComplete},
		{"SignalMarshalComplete", SignalMarshalComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeySpecName", KeySpecName},
		{"KeyContentType", KeyContentType},
		{"KeyFieldCount", KeyFieldCount},
		{"KeyObjectCount", KeyObjectCount},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
