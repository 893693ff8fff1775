package jsonschema

import (
	j "github.com/goccy/go-json"
)

// Schema is the structural output of the converter. A single struct covers
// the closed set of shapes (value, array, object, const, enum, oneOf); absent
// fields mean "unconstrained". The subset of keywords used here serializes
// directly into a document accepted by standard JSON Schema validators.
type Schema struct {
	// Core
	Type        ValueType `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Default     any       `json:"default,omitempty"`

	// Object
	Properties           *Properties `json:"properties,omitempty"`
	Required             []string    `json:"required,omitempty"`
	AdditionalProperties *bool       `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Constant / enumeration
	Const any   `json:"const,omitempty"`
	Enum  []any `json:"enum,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// ValueType holds the JSON Schema "type" keyword: a single kind or a union of
// kinds. It marshals as a bare string when it contains exactly one entry.
type ValueType []string

// Scalar kinds plus the two composite primitives.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeObject  = "object"
	TypeArray   = "array"
)

func (t ValueType) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return j.Marshal(t[0])
	}
	return j.Marshal([]string(t))
}

func (t *ValueType) UnmarshalJSON(data []byte) error {
	var single string
	if err := j.Unmarshal(data, &single); err == nil {
		*t = ValueType{single}
		return nil
	}
	var many []string
	if err := j.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = ValueType(many)
	return nil
}

// ---- variant constructors ----

// String returns a bare string value schema.
func String() *Schema { return &Schema{Type: ValueType{TypeString}} }

// Integer returns a bare integer value schema.
func Integer() *Schema { return &Schema{Type: ValueType{TypeInteger}} }

// Number returns a bare number value schema.
func Number() *Schema { return &Schema{Type: ValueType{TypeNumber}} }

// Boolean returns a bare boolean value schema.
func Boolean() *Schema { return &Schema{Type: ValueType{TypeBoolean}} }

// Null returns the null value schema.
func Null() *Schema { return &Schema{Type: ValueType{TypeNull}} }

// Value returns a value schema over the given scalar kinds.
func Value(kinds ...string) *Schema { return &Schema{Type: ValueType(kinds)} }

// Object returns a bare object schema with no declared properties.
func Object() *Schema { return &Schema{Type: ValueType{TypeObject}} }

// ObjectOf returns an object schema with the given properties and required
// names. Property iteration order is the insertion order of props.
func ObjectOf(props *Properties, required []string) *Schema {
	return &Schema{Type: ValueType{TypeObject}, Properties: props, Required: required}
}

// Array returns an array schema whose elements conform to items. A nil items
// yields a bare array schema.
func Array(items *Schema) *Schema {
	return &Schema{Type: ValueType{TypeArray}, Items: items}
}

// Const returns a schema constraining the value to exactly v.
func Const(v any) *Schema { return &Schema{Const: v} }

// Enum returns a schema constraining the value to one of vals, in order.
func Enum(vals ...any) *Schema { return &Schema{Enum: vals} }

// OneOf returns a schema requiring conformance to exactly one alternative.
func OneOf(alts ...*Schema) *Schema { return &Schema{OneOf: alts} }

// ---- inspection helpers ----

// IsEmpty reports whether the schema carries no constraint and no metadata.
// Hooks returning an empty schema are treated as having declined.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Type) == 0 && s.Description == "" && s.Default == nil &&
		s.Properties.Len() == 0 && len(s.Required) == 0 && s.AdditionalProperties == nil &&
		s.Items == nil && s.Const == nil && len(s.Enum) == 0 && len(s.OneOf) == 0
}

// IsScalar reports whether the schema is a bare value schema over scalar
// kinds only, i.e. it has a type and none of the kinds is object or array.
// This is the union-collapse test: a union whose members are all scalar
// collapses into a single value schema with a type list.
func (s *Schema) IsScalar() bool {
	if s == nil || len(s.Type) == 0 {
		return false
	}
	for _, k := range s.Type {
		if k == TypeObject || k == TypeArray {
			return false
		}
	}
	return true
}

// Marshal renders the schema as compact JSON.
func Marshal(s *Schema) ([]byte, error) { return j.Marshal(s) }

// MarshalIndent renders the schema as indented JSON.
func MarshalIndent(s *Schema) ([]byte, error) { return j.MarshalIndent(s, "", "  ") }
