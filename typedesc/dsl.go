package typedesc

// Constructor DSL for building type descriptions by hand. Primitives are
// plain functions; records and callables use small step builders so field
// and parameter declarations chain naturally.

// String returns the string primitive description.
func String() *Type { return &Type{Kind: KindString} }

// Int returns the integer primitive description.
func Int() *Type { return &Type{Kind: KindInteger} }

// Number returns the number primitive description.
func Number() *Type { return &Type{Kind: KindNumber} }

// Bool returns the boolean primitive description.
func Bool() *Type { return &Type{Kind: KindBoolean} }

// Null returns the null/none description.
func Null() *Type { return &Type{Kind: KindNull} }

// AnyObject returns the untyped object primitive (a bare "object" shape).
func AnyObject() *Type { return &Type{Kind: KindObject} }

// AnyArray returns the untyped sequence primitive (a bare "array" shape).
func AnyArray() *Type { return &Type{Kind: KindArray} }

// ListOf returns a parameterized sequence over the given element
// alternatives. Multiple alternatives are treated as a union of element
// types, as in tuple-style declarations.
func ListOf(elems ...*Type) *Type { return &Type{Kind: KindList, Elems: elems} }

// MapOf returns a keyed mapping description. Key and element types are
// recorded but carry no declared field schema.
func MapOf(key, elem *Type) *Type { return &Type{Kind: KindMap, Key: key, Elem: elem} }

// AnyMap returns a keyed mapping with unspecified key and element types.
func AnyMap() *Type { return &Type{Kind: KindMap} }

// Union returns a union over members.
func Union(members ...*Type) *Type { return &Type{Kind: KindUnion, Members: members} }

// Optional returns Union(t, Null()), the conventional nullable wrapper.
func Optional(t *Type) *Type { return Union(t, Null()) }

// LiteralOf returns a constant-literal description over the allowed values.
func LiteralOf(values ...any) *Type { return &Type{Kind: KindLiteral, Values: values} }

// EnumOf returns an enumeration description over the underlying member
// values, in declaration order.
func EnumOf(values ...any) *Type { return &Type{Kind: KindEnum, Values: values} }

// Annotated wraps inner with side-channel metadata values.
func Annotated(inner *Type, meta ...any) *Type {
	return &Type{Kind: KindAnnotated, Inner: inner, Meta: meta}
}

// External wraps an opaque runtime value. Conversion of an external node is
// resolved by the classifier hook or a self-describing delegate; otherwise it
// falls under the unsupported-type policy.
func External(v any) *Type { return &Type{Kind: KindExternal, Value: v} }

// ---- record builder ----

// RecordBuilder assembles a composite-record description field by field.
type RecordBuilder struct {
	t *Type
}

type recordFieldStep struct {
	b   *RecordBuilder
	idx int
}

// Record starts a record description. An optional name is used for display
// in diagnostics only.
func Record(name ...string) *RecordBuilder {
	t := &Type{Kind: KindRecord}
	if len(name) > 0 {
		t.Name = name[0]
	}
	return &RecordBuilder{t: t}
}

// Doc attaches the record's own documentation string.
func (b *RecordBuilder) Doc(s string) *RecordBuilder {
	b.t.Doc = s
	return b
}

// Field appends a field in declaration order.
func (b *RecordBuilder) Field(name string, t *Type) *recordFieldStep {
	b.t.Fields = append(b.t.Fields, Field{Name: name, Type: t})
	return &recordFieldStep{b: b, idx: len(b.t.Fields) - 1}
}

// Doc attaches documentation to the current field and returns the builder.
func (f *recordFieldStep) Doc(s string) *RecordBuilder {
	f.b.t.Fields[f.idx].Doc = s
	return f.b
}

func (f *recordFieldStep) Field(name string, t *Type) *recordFieldStep {
	return f.b.Field(name, t)
}

func (f *recordFieldStep) Build() *Type { return f.b.Build() }

// Build returns the finished record description.
func (b *RecordBuilder) Build() *Type { return b.t }

// ---- callable builder ----

// FuncBuilder assembles a callable description parameter by parameter.
type FuncBuilder struct {
	t *Type
}

type paramStep struct {
	b   *FuncBuilder
	idx int
}

// Callable starts a callable description. An optional name is used for
// display in diagnostics only.
func Callable(name ...string) *FuncBuilder {
	t := &Type{Kind: KindFunc}
	if len(name) > 0 {
		t.Name = name[0]
	}
	return &FuncBuilder{t: t}
}

// Doc attaches the callable's documentation string.
func (b *FuncBuilder) Doc(s string) *FuncBuilder {
	b.t.Doc = s
	return b
}

// Param appends a parameter with a declared type. Pass a nil type for an
// undeclared parameter; its default value's type is used instead.
func (b *FuncBuilder) Param(name string, t *Type) *paramStep {
	b.t.Params = append(b.t.Params, Param{Name: name, Type: t})
	return &paramStep{b: b, idx: len(b.t.Params) - 1}
}

// Default attaches a default value to the current parameter.
func (p *paramStep) Default(v any) *FuncBuilder {
	p.b.t.Params[p.idx].Default = v
	p.b.t.Params[p.idx].HasDefault = true
	return p.b
}

// Variadic flags the current parameter as a positional or keyword catch-all;
// it contributes no property.
func (p *paramStep) Variadic() *FuncBuilder {
	p.b.t.Params[p.idx].Variadic = true
	return p.b
}

// Receiver flags the current parameter as an implicit receiver; it
// contributes no property.
func (p *paramStep) Receiver() *FuncBuilder {
	p.b.t.Params[p.idx].Receiver = true
	return p.b
}

func (p *paramStep) Param(name string, t *Type) *paramStep { return p.b.Param(name, t) }

func (p *paramStep) Build() *Type { return p.b.Build() }

// Build returns the finished callable description.
func (b *FuncBuilder) Build() *Type { return b.t }
