package typedesc_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/typeschema/typedesc"
)

func TestParseYAML_Record(t *testing.T) {
	doc := []byte(`
kind: record
name: User
doc: A user record.
fields:
  - name: id
    type: {kind: integer}
  - name: email
    doc: Contact address.
    type:
      kind: union
      members:
        - {kind: string}
        - {kind: "null"}
  - name: roles
    type:
      kind: list
      elems:
        - kind: literal
          values: [admin, user, guest]
`)
	desc, err := typedesc.ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if desc.Kind != typedesc.KindRecord || desc.Name != "User" || desc.Doc != "A user record." {
		t.Fatalf("record header mismatch: %+v", desc)
	}
	if len(desc.Fields) != 3 {
		t.Fatalf("field count: %d", len(desc.Fields))
	}
	if desc.Fields[1].Doc != "Contact address." {
		t.Fatalf("field doc lost: %+v", desc.Fields[1])
	}
	email := desc.Fields[1].Type
	if email.Kind != typedesc.KindUnion || len(email.Members) != 2 {
		t.Fatalf("email union mismatch: %v", email)
	}
	roles := desc.Fields[2].Type
	if roles.Kind != typedesc.KindList || len(roles.Elems) != 1 {
		t.Fatalf("roles list mismatch: %v", roles)
	}
	lit := roles.Elems[0]
	if lit.Kind != typedesc.KindLiteral || !reflect.DeepEqual(lit.Values, []any{"admin", "user", "guest"}) {
		t.Fatalf("literal mismatch: %v", lit)
	}
}

func TestParseYAML_Callable(t *testing.T) {
	doc := []byte(`
kind: func
name: resize
doc: Resize an image.
params:
  - name: width
    type: {kind: integer}
  - name: mode
    type: {kind: string}
    default: fit
  - name: extra
    variadic: true
`)
	desc, err := typedesc.ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if desc.Kind != typedesc.KindFunc || desc.Doc != "Resize an image." {
		t.Fatalf("func header mismatch: %+v", desc)
	}
	if len(desc.Params) != 3 {
		t.Fatalf("param count: %d", len(desc.Params))
	}
	mode := desc.Params[1]
	if !mode.HasDefault || mode.Default != "fit" {
		t.Fatalf("default lost: %+v", mode)
	}
	if !desc.Params[2].Variadic || desc.Params[2].Type != nil {
		t.Fatalf("variadic param mismatch: %+v", desc.Params[2])
	}
}

func TestParseJSON(t *testing.T) {
	doc := []byte(`{
		"kind": "map",
		"key": {"kind": "string"},
		"elem": {"kind": "annotated", "inner": {"kind": "number"}, "meta": ["a score"]}
	}`)
	desc, err := typedesc.ParseJSON(doc)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if desc.Kind != typedesc.KindMap || desc.Key.Kind != typedesc.KindString {
		t.Fatalf("map mismatch: %+v", desc)
	}
	if desc.Elem.Kind != typedesc.KindAnnotated || !reflect.DeepEqual(desc.Elem.Meta, []any{"a score"}) {
		t.Fatalf("annotated elem mismatch: %+v", desc.Elem)
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  any
		want string
	}{
		{"non mapping", []any{"kind"}, "must be a mapping"},
		{"missing kind", map[string]any{}, "missing a kind"},
		{"unknown kind", map[string]any{"kind": "wat"}, "unknown kind"},
		{"bad field", map[string]any{"kind": "record", "fields": []any{map[string]any{"type": map[string]any{"kind": "string"}}}}, "missing a name"},
		{"bad members", map[string]any{"kind": "union", "members": "nope"}, "sequence"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := typedesc.DecodeDocument(tc.doc)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}
