package bson_test

import (
	"context"
	"testing"

	"github.com/zoobzio/sift"
	siftbson "github.com/zoobzio/sift/bson"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCodec_ContentType(t *testing.T) {
	if got := siftbson.New().ContentType(); got != "application/bson" {
		t.Errorf("ContentType() = %q, want application/bson", got)
	}
}

func TestCodec_Marshal_PreservesOrder(t *testing.T) {
	spec, err := sift.NewSpec("Account").
		Field("name", sift.Identity()).
		Field("age", sift.Cast(sift.Int)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	data, err := spec.Marshal(context.Background(), siftbson.New(), map[string]any{"name": "ada", "age": "36"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(doc) != 2 {
		t.Fatalf("len(doc) = %d, want 2", len(doc))
	}
	if doc[0].Key != "name" || doc[1].Key != "age" {
		t.Errorf("keys = [%s %s], want declaration order [name age]", doc[0].Key, doc[1].Key)
	}
	if doc[0].Value != "ada" {
		t.Errorf("doc[name] = %v, want %q", doc[0].Value, "ada")
	}
}

func TestCodec_Marshal_NestedRecord(t *testing.T) {
	inner, err := sift.NewSpec("Inner").
		Field("b", sift.Identity()).
		Field("a", sift.Identity()).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	outer, err := sift.NewSpec("Outer").
		Field("sub", sift.Nested(inner)).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	obj := map[string]any{"sub": map[string]any{"a": 1, "b": 2}}
	data, err := outer.Marshal(context.Background(), siftbson.New(), obj)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	sub, ok := doc[0].Value.(bson.D)
	if !ok {
		t.Fatalf("sub value type = %T, want bson.D", doc[0].Value)
	}
	if sub[0].Key != "b" || sub[1].Key != "a" {
		t.Errorf("nested keys = [%s %s], want [b a]", sub[0].Key, sub[1].Key)
	}
}

func TestCodec_Marshal_TopLevelSequence(t *testing.T) {
	spec, err := sift.NewSpec("Item").
		Field("n", sift.Identity()).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	_, err = spec.MarshalMany(context.Background(), siftbson.New(), []map[string]any{{"n": 1}})
	if err == nil {
		t.Fatal("MarshalMany() should fail: BSON has no top-level array form")
	}
}
