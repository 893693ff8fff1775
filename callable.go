package typeschema

import (
	js "github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typedesc"
)

// convertFunc builds an object schema from a callable description's
// parameter list. Variadic catch-alls and receivers contribute nothing. A
// parameter without a declared type borrows the reflected type of its
// default value; lacking both, the unsupported-type policy applies naming
// the parameter. A default makes the parameter supply-optional regardless of
// its type-level requiredness.
func (c *Converter) convertFunc(t *typedesc.Type, path string, d *descent) (*js.Schema, bool, error) {
	if t == nil || t.Kind != typedesc.KindFunc {
		return c.unsupported(t, path)
	}

	props := js.NewProperties()
	var required []string

	for _, p := range t.Params {
		if p.Variadic || p.Receiver {
			continue
		}
		ppath := path + "/" + p.Name

		pt := p.Type
		if pt == nil {
			switch {
			case p.HasDefault:
				var err error
				pt, err = typedesc.FromValue(p.Default)
				if err != nil {
					if !c.opt.Fallback {
						return nil, false, &UnsupportedTypeError{Path: ppath, Desc: t, Param: p.Name}
					}
					pt = typedesc.AnyMap()
				}
			case c.opt.Fallback:
				pt = typedesc.AnyMap()
			default:
				return nil, false, &UnsupportedTypeError{Path: ppath, Desc: t, Param: p.Name}
			}
		}

		s, req, err := c.convert(pt, ppath, d)
		if err != nil {
			return nil, false, err
		}
		if p.HasDefault {
			s.Default = p.Default
		}
		props.Set(p.Name, s)
		if req && !p.HasDefault {
			required = append(required, p.Name)
		}
	}

	obj := js.ObjectOf(props, required)
	if t.Doc != "" {
		obj.Description = t.Doc
	}
	return obj, true, nil
}
