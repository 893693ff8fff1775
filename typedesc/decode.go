package typedesc

import (
	"fmt"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Declarative type-description documents. A document is a nested mapping
// with a "kind" discriminator per node, e.g.
//
//	kind: record
//	doc: A user record.
//	fields:
//	  - name: id
//	    type: {kind: integer}
//	  - name: email
//	    doc: Contact address.
//	    type:
//	      kind: union
//	      members:
//	        - {kind: string}
//	        - {kind: "null"}
//
// External nodes carry runtime values and have no document form.

// ParseYAML decodes a single-document YAML type description.
func ParseYAML(data []byte) (*Type, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return DecodeDocument(doc)
}

// ParseJSON decodes a JSON type description.
func ParseJSON(data []byte) (*Type, error) {
	var doc any
	if err := j.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return DecodeDocument(doc)
}

// DecodeDocument builds a type description from a decoded document node.
func DecodeDocument(doc any) (*Type, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("typedesc: document node must be a mapping, got %T", doc)
	}
	kind, _ := m["kind"].(string)
	switch kind {
	case "string":
		return String(), nil
	case "integer":
		return Int(), nil
	case "number":
		return Number(), nil
	case "boolean":
		return Bool(), nil
	case "null":
		return Null(), nil
	case "object":
		return AnyObject(), nil
	case "array":
		return AnyArray(), nil
	case "list":
		elems, err := decodeList(m["elems"])
		if err != nil {
			return nil, err
		}
		return &Type{Kind: KindList, Elems: elems}, nil
	case "map":
		t := AnyMap()
		if kd, ok := m["key"]; ok {
			key, err := DecodeDocument(kd)
			if err != nil {
				return nil, err
			}
			t.Key = key
		}
		if ed, ok := m["elem"]; ok {
			elem, err := DecodeDocument(ed)
			if err != nil {
				return nil, err
			}
			t.Elem = elem
		}
		return t, nil
	case "union":
		members, err := decodeList(m["members"])
		if err != nil {
			return nil, err
		}
		return &Type{Kind: KindUnion, Members: members}, nil
	case "record":
		return decodeRecord(m)
	case "enum":
		vals, _ := m["values"].([]any)
		return &Type{Kind: KindEnum, Values: vals, Name: stringAt(m, "name")}, nil
	case "literal":
		vals, _ := m["values"].([]any)
		return &Type{Kind: KindLiteral, Values: vals}, nil
	case "annotated":
		inner, err := DecodeDocument(m["inner"])
		if err != nil {
			return nil, err
		}
		meta, _ := m["meta"].([]any)
		return &Type{Kind: KindAnnotated, Inner: inner, Meta: meta}, nil
	case "func":
		return decodeFunc(m)
	case "":
		return nil, fmt.Errorf("typedesc: document node is missing a kind")
	default:
		return nil, fmt.Errorf("typedesc: unknown kind %q", kind)
	}
}

func decodeList(doc any) ([]*Type, error) {
	items, ok := doc.([]any)
	if !ok {
		if doc == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("typedesc: expected a sequence of nodes, got %T", doc)
	}
	out := make([]*Type, 0, len(items))
	for _, it := range items {
		t, err := DecodeDocument(it)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func decodeRecord(m map[string]any) (*Type, error) {
	rec := &Type{Kind: KindRecord, Name: stringAt(m, "name"), Doc: stringAt(m, "doc")}
	fields, ok := m["fields"].([]any)
	if !ok && m["fields"] != nil {
		return nil, fmt.Errorf("typedesc: record fields must be a sequence, got %T", m["fields"])
	}
	for _, fd := range fields {
		fm, ok := fd.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("typedesc: record field must be a mapping, got %T", fd)
		}
		name := stringAt(fm, "name")
		if name == "" {
			return nil, fmt.Errorf("typedesc: record field is missing a name")
		}
		ft, err := DecodeDocument(fm["type"])
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, Field{Name: name, Type: ft, Doc: stringAt(fm, "doc")})
	}
	return rec, nil
}

func decodeFunc(m map[string]any) (*Type, error) {
	fn := &Type{Kind: KindFunc, Name: stringAt(m, "name"), Doc: stringAt(m, "doc")}
	params, ok := m["params"].([]any)
	if !ok && m["params"] != nil {
		return nil, fmt.Errorf("typedesc: func params must be a sequence, got %T", m["params"])
	}
	for _, pd := range params {
		pm, ok := pd.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("typedesc: func param must be a mapping, got %T", pd)
		}
		name := stringAt(pm, "name")
		if name == "" {
			return nil, fmt.Errorf("typedesc: func param is missing a name")
		}
		p := Param{Name: name}
		if td, ok := pm["type"]; ok && td != nil {
			pt, err := DecodeDocument(td)
			if err != nil {
				return nil, err
			}
			p.Type = pt
		}
		if dv, ok := pm["default"]; ok {
			p.Default = dv
			p.HasDefault = true
		}
		if v, _ := pm["variadic"].(bool); v {
			p.Variadic = true
		}
		fn.Params = append(fn.Params, p)
	}
	return fn, nil
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
