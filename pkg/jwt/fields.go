package jwt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Field is a single header or payload entry.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for Field{Key: key, Value: value}.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Fields is an insertion-ordered set of JSON values keyed by name.
// Overwriting a key keeps its original position; new keys are appended.
// The zero value is ready to use.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields builds Fields from the given entries in order.
func NewFields(fields ...Field) Fields {
	var f Fields
	f.Set(fields...)
	return f
}

// Set merges entries, overwriting existing keys in place.
func (f *Fields) Set(fields ...Field) {
	if f.values == nil {
		f.values = make(map[string]any, len(fields))
	}
	for _, fl := range fields {
		if _, ok := f.values[fl.Key]; !ok {
			f.keys = append(f.keys, fl.Key)
		}
		f.values[fl.Key] = fl.Value
	}
}

// Merge merges a plain map. Keys not yet present are appended in lexical
// order so the resulting layout does not depend on map iteration.
func (f *Fields) Merge(m map[string]any) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	entries := make([]Field, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, F(k, m[k]))
	}
	f.Set(entries...)
}

// Remove deletes key if present.
func (f *Fields) Remove(key string) {
	if _, ok := f.values[key]; !ok {
		return
	}
	delete(f.values, key)
	f.keys = slices.DeleteFunc(f.keys, func(k string) bool { return k == key })
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Len returns the number of entries.
func (f Fields) Len() int {
	return len(f.keys)
}

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	return slices.Clone(f.keys)
}

// Map returns the entries as a new map.
func (f Fields) Map() map[string]any {
	m := make(map[string]any, len(f.keys))
	for _, k := range f.keys {
		m[k] = f.values[k]
	}
	return m
}

// Clone returns an independent copy. Nested JSON containers ([]any,
// map[string]any, []string and Fields) are copied too; other reference
// types are shared.
func (f Fields) Clone() Fields {
	c := Fields{
		keys:   slices.Clone(f.keys),
		values: make(map[string]any, len(f.keys)),
	}
	for _, k := range f.keys {
		c.values[k] = cloneValue(f.values[k])
	}
	return c
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []string:
		return slices.Clone(x)
	case Fields:
		return x.Clone()
	default:
		return v
	}
}

// MarshalJSON encodes the entries as a JSON object in insertion order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
