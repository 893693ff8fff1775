package typedesc_test

import (
	"reflect"
	"testing"

	"github.com/reoring/typeschema/typedesc"
)

func TestPrimitiveConstructors(t *testing.T) {
	cases := []struct {
		name string
		got  *typedesc.Type
		kind typedesc.Kind
	}{
		{"string", typedesc.String(), typedesc.KindString},
		{"int", typedesc.Int(), typedesc.KindInteger},
		{"number", typedesc.Number(), typedesc.KindNumber},
		{"bool", typedesc.Bool(), typedesc.KindBoolean},
		{"null", typedesc.Null(), typedesc.KindNull},
		{"any object", typedesc.AnyObject(), typedesc.KindObject},
		{"any array", typedesc.AnyArray(), typedesc.KindArray},
		{"any map", typedesc.AnyMap(), typedesc.KindMap},
	}
	for _, tc := range cases {
		if tc.got.Kind != tc.kind {
			t.Fatalf("%s: kind = %v", tc.name, tc.got.Kind)
		}
	}
}

func TestOptionalIsNullableUnion(t *testing.T) {
	o := typedesc.Optional(typedesc.Int())
	if o.Kind != typedesc.KindUnion || len(o.Members) != 2 {
		t.Fatalf("unexpected shape: %v", o)
	}
	if o.Members[0].Kind != typedesc.KindInteger || o.Members[1].Kind != typedesc.KindNull {
		t.Fatalf("member order mismatch: %v", o)
	}
}

func TestRecordBuilder(t *testing.T) {
	rec := typedesc.Record("User").
		Doc("A user").
		Field("id", typedesc.Int()).Doc("identifier").
		Field("name", typedesc.String()).
		Build()

	if rec.Kind != typedesc.KindRecord || rec.Name != "User" || rec.Doc != "A user" {
		t.Fatalf("record header mismatch: %+v", rec)
	}
	if len(rec.Fields) != 2 {
		t.Fatalf("field count: %d", len(rec.Fields))
	}
	if rec.Fields[0].Name != "id" || rec.Fields[0].Doc != "identifier" {
		t.Fatalf("first field mismatch: %+v", rec.Fields[0])
	}
	if rec.Fields[1].Name != "name" || rec.Fields[1].Doc != "" {
		t.Fatalf("second field mismatch: %+v", rec.Fields[1])
	}
}

func TestCallableBuilder(t *testing.T) {
	fn := typedesc.Callable("resize").
		Doc("Resize an image").
		Param("self", nil).Receiver().
		Param("width", typedesc.Int()).
		Param("mode", typedesc.String()).Default("fit").
		Param("extra", nil).Variadic().
		Build()

	if fn.Kind != typedesc.KindFunc || fn.Name != "resize" {
		t.Fatalf("callable header mismatch: %+v", fn)
	}
	want := []struct {
		name            string
		hasDefault      bool
		variadic, recvr bool
	}{
		{"self", false, false, true},
		{"width", false, false, false},
		{"mode", true, false, false},
		{"extra", false, true, false},
	}
	if len(fn.Params) != len(want) {
		t.Fatalf("param count: %d", len(fn.Params))
	}
	for i, w := range want {
		p := fn.Params[i]
		if p.Name != w.name || p.HasDefault != w.hasDefault || p.Variadic != w.variadic || p.Receiver != w.recvr {
			t.Fatalf("param %d mismatch: %+v", i, p)
		}
	}
	if fn.Params[2].Default != "fit" {
		t.Fatalf("default lost: %+v", fn.Params[2])
	}
}

func TestAnnotatedAndLiterals(t *testing.T) {
	a := typedesc.Annotated(typedesc.String(), "doc", 7)
	if a.Kind != typedesc.KindAnnotated || a.Inner.Kind != typedesc.KindString {
		t.Fatalf("annotated shape: %v", a)
	}
	if !reflect.DeepEqual(a.Meta, []any{"doc", 7}) {
		t.Fatalf("meta mismatch: %v", a.Meta)
	}

	l := typedesc.LiteralOf("a", "b")
	if l.Kind != typedesc.KindLiteral || !reflect.DeepEqual(l.Values, []any{"a", "b"}) {
		t.Fatalf("literal shape: %v", l)
	}

	e := typedesc.EnumOf(1, 2, 3)
	if e.Kind != typedesc.KindEnum || !reflect.DeepEqual(e.Values, []any{1, 2, 3}) {
		t.Fatalf("enum shape: %v", e)
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		desc *typedesc.Type
		want string
	}{
		{typedesc.Union(typedesc.String(), typedesc.Null()), "union[string | null]"},
		{typedesc.ListOf(typedesc.Int()), "list[integer]"},
		{typedesc.MapOf(typedesc.String(), typedesc.Int()), "map[string, integer]"},
		{typedesc.AnyMap(), "map"},
		{typedesc.Record("User").Build(), "record User"},
		{typedesc.External("x"), "external(string)"},
	}
	for _, tc := range cases {
		if got := tc.desc.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
