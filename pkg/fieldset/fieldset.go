package fieldset

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Field pairs a name with its value.
type Field struct {
	Name  string
	Value Value
}

// FieldSet is an insertion-ordered mapping of field names to values. The zero
// value is an empty set ready for use.
type FieldSet struct {
	fields []Field
	index  map[string]int
}

// New builds a FieldSet from the supplied fields, applying Set semantics for
// repeated names.
func New(fields ...Field) FieldSet {
	var set FieldSet
	for _, field := range fields {
		set.Set(field.Name, field.Value)
	}
	return set
}

// Set stores value under name. A repeated name replaces the value in place and
// keeps the original position.
func (s *FieldSet) Set(name string, value Value) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if pos, ok := s.index[name]; ok {
		s.fields[pos].Value = value
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (s FieldSet) Get(name string) (Value, bool) {
	pos, ok := s.index[name]
	if !ok {
		return Value{}, false
	}
	return s.fields[pos].Value, true
}

func (s FieldSet) Len() int {
	return len(s.fields)
}

// Names returns field names in insertion order.
func (s FieldSet) Names() []string {
	if len(s.fields) == 0 {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, field := range s.fields {
		names[i] = field.Name
	}
	return names
}

// Fields returns a copy of the ordered fields.
func (s FieldSet) Fields() []Field {
	if len(s.fields) == 0 {
		return nil
	}
	return append([]Field(nil), s.fields...)
}

// Each visits fields in order until fn returns false.
func (s FieldSet) Each(fn func(Field) bool) {
	for _, field := range s.fields {
		if !fn(field) {
			return
		}
	}
}

// Clone returns an independent copy.
func (s FieldSet) Clone() FieldSet {
	return New(s.fields...)
}

// MarshalJSON encodes the set as a JSON object preserving key order.
func (s FieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if field.Value.IsNumber() {
			buf.WriteString(field.Value.String())
			continue
		}
		val, err := json.Marshal(field.Value.String())
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order.
func (s *FieldSet) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Attribute renders the set in the form written back to the root element's
// data attribute.
func (s FieldSet) Attribute() string {
	data, err := s.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (s FieldSet) String() string {
	parts := make([]string, 0, len(s.fields))
	for _, field := range s.fields {
		parts = append(parts, field.Name+"="+field.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
