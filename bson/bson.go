// Package bson provides a BSON codec implementation.
package bson

import (
	"fmt"

	"github.com/zoobzio/sift"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements sift.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() sift.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. Records become ordered bson.D documents.
// BSON has no top-level array form, so record sequences cannot be encoded
// directly; marshal each record separately instead.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	converted := toBSON(v)
	switch doc := converted.(type) {
	case bson.D:
		return bson.Marshal(doc)
	case bson.A:
		return nil, fmt.Errorf("bson cannot encode a top-level sequence")
	default:
		return bson.Marshal(v)
	}
}

// toBSON converts records and record sequences into their ordered BSON
// counterparts, recursively.
func toBSON(v any) any {
	switch val := v.(type) {
	case *sift.Record:
		doc := make(bson.D, 0, val.Len())
		val.Range(func(key string, item any) bool {
			doc = append(doc, bson.E{Key: key, Value: toBSON(item)})
			return true
		})
		return doc
	case []*sift.Record:
		arr := make(bson.A, 0, len(val))
		for _, record := range val {
			arr = append(arr, toBSON(record))
		}
		return arr
	case []any:
		arr := make(bson.A, 0, len(val))
		for _, item := range val {
			arr = append(arr, toBSON(item))
		}
		return arr
	default:
		return v
	}
}
