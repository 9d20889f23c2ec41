// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/sift"
)

// msgpackCodec implements sift.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() sift.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack. Records are encoded as maps with their
// insertion order preserved in the byte stream.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeValue walks records and record sequences explicitly so key order is
// under our control; everything else goes through the default encoder.
func encodeValue(enc *msgpack.Encoder, v any) error {
	switch val := v.(type) {
	case *sift.Record:
		if err := enc.EncodeMapLen(val.Len()); err != nil {
			return err
		}
		var encErr error
		val.Range(func(key string, item any) bool {
			if encErr = enc.EncodeString(key); encErr != nil {
				return false
			}
			encErr = encodeValue(enc, item)
			return encErr == nil
		})
		return encErr
	case []*sift.Record:
		if err := enc.EncodeArrayLen(len(val)); err != nil {
			return err
		}
		for _, record := range val {
			if err := encodeValue(enc, record); err != nil {
				return err
			}
		}
		return nil
	case []any:
		if err := enc.EncodeArrayLen(len(val)); err != nil {
			return err
		}
		for _, item := range val {
			if err := encodeValue(enc, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(v)
	}
}
