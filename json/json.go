// Package json provides a JSON codec implementation.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/sift"
)

// Option configures the JSON encoder. Options pass through the engine
// untouched; they only affect how assembled records are rendered.
type Option func(*jsonCodec)

// WithIndent renders output with the given prefix and indentation.
func WithIndent(prefix, indent string) Option {
	return func(c *jsonCodec) {
		c.prefix = prefix
		c.indent = indent
	}
}

// WithEscapeHTML controls escaping of <, > and & inside strings.
// Escaping is on by default, matching encoding/json.
func WithEscapeHTML(escape bool) Option {
	return func(c *jsonCodec) {
		c.escapeHTML = escape
	}
}

// jsonCodec implements sift.Codec for JSON.
type jsonCodec struct {
	prefix     string
	indent     string
	escapeHTML bool
}

// New returns a JSON codec.
func New(opts ...Option) sift.Codec {
	c := &jsonCodec{escapeHTML: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(c.escapeHTML)
	if c.prefix != "" || c.indent != "" {
		enc.SetIndent(c.prefix, c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline the bare Marshal functions do not.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
