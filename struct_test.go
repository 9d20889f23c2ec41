package sift_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/zoobzio/sift"
)

type taggedAddress struct {
	City    string `sift:"city"`
	Street  string `sift:"street"`
	ZipCode string `sift:"-"`
}

type taggedUser struct {
	Name     string `sift:"username"`
	Nickname string `sift:",optional"`
	Address  taggedAddress
	Tags     []taggedTag
	Joined   time.Time
	internal string
}

type taggedTag struct {
	Label string `sift:"label"`
}

func TestFromStruct(t *testing.T) {
	spec, err := sift.FromStruct[taggedUser]()
	if err != nil {
		t.Fatalf("FromStruct() error: %v", err)
	}

	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	user := taggedUser{
		Name:    "ada",
		Address: taggedAddress{City: "London", Street: "Baker St", ZipCode: "NW1"},
		Tags:    []taggedTag{{Label: "admin"}},
		Joined:  joined,
	}

	record, err := spec.Serialize(context.Background(), user)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	if got, _ := record.Get("username"); got != "ada" {
		t.Errorf("record[username] = %v, want %q", got, "ada")
	}
	if got, ok := record.Get("Nickname"); !ok || got != "" {
		t.Errorf("record[Nickname] = %v, %v; optional only exempts missing attributes", got, ok)
	}

	nested, _ := record.Get("Address")
	sub, ok := nested.(*sift.Record)
	if !ok {
		t.Fatalf("Address value type = %T, want *Record", nested)
	}
	if got, _ := sub.Get("city"); got != "London" {
		t.Errorf("Address[city] = %v, want %q", got, "London")
	}
	if _, ok := sub.Get("ZipCode"); ok {
		t.Error("sift:\"-\" field should be excluded")
	}

	tags, _ := record.Get("Tags")
	records, ok := tags.([]*sift.Record)
	if !ok {
		t.Fatalf("Tags value type = %T, want []*Record", tags)
	}
	if got, _ := records[0].Get("label"); got != "admin" {
		t.Errorf("Tags[0][label] = %v, want %q", got, "admin")
	}

	if got, _ := record.Get("Joined"); got != joined {
		t.Errorf("record[Joined] = %v, want the time.Time scalar", got)
	}
}

func TestFromStruct_SkipsUnexported(t *testing.T) {
	spec, err := sift.FromStruct[taggedUser]()
	if err != nil {
		t.Fatalf("FromStruct() error: %v", err)
	}
	for _, name := range spec.Fields() {
		if name == "internal" {
			t.Error("unexported fields must not be declared")
		}
	}
}

func TestFromStruct_DeclarationOrder(t *testing.T) {
	spec, err := sift.FromStruct[taggedAddress]()
	if err != nil {
		t.Fatalf("FromStruct() error: %v", err)
	}

	record, err := spec.Serialize(context.Background(), taggedAddress{City: "Oslo", Street: "Main"})
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	if string(data) != `{"city":"Oslo","street":"Main"}` {
		t.Errorf("json.Marshal() = %s, want struct field order", data)
	}
}
