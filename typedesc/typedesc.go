// Package typedesc models type descriptions as an explicit tagged-variant
// tree. Descriptions are built with the constructor DSL, populated from Go
// types via reflection (FromType/FromValue), or decoded from declarative
// YAML/JSON documents; the converter in the root package consumes them.
package typedesc

import (
	"fmt"
	"strings"
)

// Kind identifies a type-description variant.
type Kind int

const (
	KindInvalid Kind = iota

	// Primitives.
	KindString
	KindInteger
	KindNumber
	KindBoolean
	KindNull
	KindObject // untyped object / plain dict primitive
	KindArray  // untyped sequence primitive

	// Composites.
	KindList      // parameterized sequence; element alternatives in Elems
	KindMap       // keyed mapping; optional Key/Elem, no declared fields
	KindUnion     // union of Members
	KindRecord    // ordered Fields plus optional Doc
	KindEnum      // enumeration; underlying Values in declaration order
	KindLiteral   // fixed allowed Values
	KindAnnotated // Inner type plus side-channel Meta values
	KindFunc      // callable; ordered Params plus optional Doc
	KindExternal  // opaque runtime value for classifier/self-describing hooks
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindString:    "string",
	KindInteger:   "integer",
	KindNumber:    "number",
	KindBoolean:   "boolean",
	KindNull:      "null",
	KindObject:    "object",
	KindArray:     "array",
	KindList:      "list",
	KindMap:       "map",
	KindUnion:     "union",
	KindRecord:    "record",
	KindEnum:      "enum",
	KindLiteral:   "literal",
	KindAnnotated: "annotated",
	KindFunc:      "func",
	KindExternal:  "external",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is one node of a type-description tree. Only the fields relevant to
// Kind are populated; descriptions are never mutated by the converter.
type Type struct {
	Kind Kind

	Name string // optional display name (records, enums)
	Doc  string // record/func documentation

	Elems   []*Type // KindList: element type alternatives
	Key     *Type   // KindMap: key type, may be nil
	Elem    *Type   // KindMap: element type, may be nil
	Members []*Type // KindUnion
	Fields  []Field // KindRecord, declaration order
	Values  []any   // KindEnum (underlying values) / KindLiteral
	Inner   *Type   // KindAnnotated
	Meta    []any   // KindAnnotated side-channel metadata
	Params  []Param // KindFunc, declaration order
	Value   any     // KindExternal opaque token
}

// Field is one named member of a record description.
type Field struct {
	Name string
	Type *Type
	Doc  string
}

// Param is one declared parameter of a callable description.
type Param struct {
	Name       string
	Type       *Type // nil when undeclared
	Default    any
	HasDefault bool
	Variadic   bool // positional or keyword catch-all
	Receiver   bool // implicit receiver; contributes nothing
}

// String renders a compact human-readable form for diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindList:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "list[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		if t.Key == nil && t.Elem == nil {
			return "map"
		}
		return "map[" + t.Key.String() + ", " + t.Elem.String() + "]"
	case KindUnion:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.String()
		}
		return "union[" + strings.Join(parts, " | ") + "]"
	case KindRecord, KindEnum, KindFunc:
		if t.Name != "" {
			return t.Kind.String() + " " + t.Name
		}
		return t.Kind.String()
	case KindAnnotated:
		return "annotated[" + t.Inner.String() + "]"
	case KindExternal:
		if t.Value != nil {
			return fmt.Sprintf("external(%T)", t.Value)
		}
		return "external"
	default:
		return t.Kind.String()
	}
}
