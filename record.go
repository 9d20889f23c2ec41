package sift

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Record is an ordered alias-to-value mapping produced by one serialization.
// Key order is the spec's declaration order, independent of the source
// object's layout. Records marshal to JSON and YAML with that order
// preserved; nested records produced by Nested transforms marshal
// recursively.
type Record struct {
	om *orderedmap.OrderedMap[string, any]
}

func newRecord(capacity int) *Record {
	return &Record{om: orderedmap.New[string, any](capacity)}
}

func (r *Record) set(key string, value any) {
	r.om.Set(key, value)
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	return r.om.Get(key)
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return r.om.Len()
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.om.Len())
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Range calls fn for each key/value pair in insertion order until fn
// returns false.
func (r *Record) Range(fn func(key string, value any) bool) {
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Map returns a plain unordered copy. Nested records stay *Record values.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.om.Len())
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.om.MarshalJSON()
}

// MarshalYAML encodes the record as a YAML mapping in insertion order.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for pair := r.om.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(pair.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
