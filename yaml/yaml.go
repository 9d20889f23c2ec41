// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"

	"github.com/zoobzio/sift"
	"gopkg.in/yaml.v3"
)

// Option configures the YAML encoder.
type Option func(*yamlCodec)

// WithIndent sets the number of spaces used for indentation.
func WithIndent(spaces int) Option {
	return func(c *yamlCodec) {
		c.indent = spaces
	}
}

// yamlCodec implements sift.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec.
func New(opts ...Option) sift.Codec {
	c := &yamlCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML. Records carry their own ordered mapping
// representation, so key order survives encoding.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if c.indent > 0 {
		enc.SetIndent(c.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
