package typedesc

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	jsonNumberType = reflect.TypeOf(json.Number(""))
)

// FromValue builds a type description from the runtime type of v. A nil
// value maps to the null description.
func FromValue(v any) (*Type, error) {
	if v == nil {
		return Null(), nil
	}
	return FromType(reflect.TypeOf(v))
}

// FromType builds a type description from a Go type. Pointers become
// optional unions, structs become records in field-declaration order,
// slices and arrays become parameterized sequences, and maps become keyed
// mappings. Channels, funcs, and interface types carry no value shape and
// are rejected.
func FromType(t reflect.Type) (*Type, error) {
	if t == nil {
		return Null(), nil
	}
	switch t {
	case timeType:
		return String(), nil
	case jsonNumberType:
		return Number(), nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		elem, err := FromType(t.Elem())
		if err != nil {
			return nil, err
		}
		return Optional(elem), nil
	case reflect.String:
		return String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(), nil
	case reflect.Float32, reflect.Float64:
		return Number(), nil
	case reflect.Bool:
		return Bool(), nil
	case reflect.Slice, reflect.Array:
		elem, err := FromType(t.Elem())
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case reflect.Map:
		// Key and element shapes are advisory; a mapping converts to a bare
		// object either way, so undescribable parameters degrade to AnyMap.
		key, kerr := FromType(t.Key())
		elem, eerr := FromType(t.Elem())
		if kerr != nil || eerr != nil {
			return AnyMap(), nil
		}
		return MapOf(key, elem), nil
	case reflect.Struct:
		return fromStruct(t)
	default:
		return nil, fmt.Errorf("typedesc: cannot describe Go type %s", t)
	}
}

func fromStruct(t reflect.Type) (*Type, error) {
	rec := &Type{Kind: KindRecord, Name: t.Name()}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		ft, err := FromType(sf.Type)
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, Field{
			Name: key,
			Type: ft,
			Doc:  sf.Tag.Get("doc"),
		})
	}
	return rec, nil
}

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key.
// Priority: typedesc:"name=..." > json tag name > field name; "-" disables
// the field.
func ResolveStructKey(sf reflect.StructField) string {
	if tt := sf.Tag.Get("typedesc"); tt != "" {
		for _, p := range strings.Split(tt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
