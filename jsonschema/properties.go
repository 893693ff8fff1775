package jsonschema

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// Properties is an insertion-ordered map of property name to schema. Field
// enumeration order of the source record is observable through both Keys and
// the marshaled document, so a plain Go map is not enough here.
type Properties struct {
	keys []string
	vals map[string]*Schema
}

// NewProperties returns an empty property set.
func NewProperties() *Properties {
	return &Properties{vals: map[string]*Schema{}}
}

// Set inserts or replaces the schema for name. First insertion fixes the
// position of name in the iteration order.
func (p *Properties) Set(name string, s *Schema) *Properties {
	if _, ok := p.vals[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.vals[name] = s
	return p
}

// Get returns the schema for name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.vals[name]
	return s, ok
}

// Len returns the number of properties. A nil receiver has length zero.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// MarshalJSON emits the properties as a JSON object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.Marshal(p.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the property set from a JSON object. Key order of
// the incoming document is preserved.
func (p *Properties) UnmarshalJSON(data []byte) error {
	p.keys = nil
	p.vals = map[string]*Schema{}
	dec := j.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(j.Delim); !ok || d != '{' {
		return fmt.Errorf("jsonschema: properties must be an object, got %v", tok)
	}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := kt.(string)
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return err
		}
		p.Set(key, &s)
	}
	_, err = dec.Token() // closing brace
	return err
}
