package typeschema

import (
	js "github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typedesc"
)

// descent tracks the active recursion path. Nodes are identified by pointer;
// a node reappearing on its own path is a cycle, while sharing one node
// across sibling branches is fine.
type descent struct {
	seen  map[*typedesc.Type]bool
	depth int
}

func newDescent() *descent {
	return &descent{seen: map[*typedesc.Type]bool{}}
}

// convert applies the classification rules to one node and returns the
// schema together with the node's requiredness.
//
// Priority: classifier hook, self-describing delegate, then the structural
// rules keyed off the description kind.
func (c *Converter) convert(t *typedesc.Type, path string, d *descent) (*js.Schema, bool, error) {
	if t == nil {
		return c.unsupported(t, path)
	}
	if d.seen[t] || d.depth >= c.maxDepth {
		return nil, false, &CycleError{Path: path, Desc: t}
	}
	d.seen[t] = true
	d.depth++
	defer func() {
		delete(d.seen, t)
		d.depth--
	}()

	if c.opt.Classifier != nil {
		if s := c.opt.Classifier(t); !s.IsEmpty() {
			return s, true, nil
		}
	}

	if c.selfDescribe && t.Kind == typedesc.KindExternal {
		if sd, ok := t.Value.(SelfDescribing); ok {
			s, err := sd.JSONSchema()
			if err != nil {
				return nil, false, err
			}
			if !s.IsEmpty() {
				return s, true, nil
			}
		}
	}

	switch t.Kind {
	case typedesc.KindUnion:
		return c.convertUnion(t.Members, path, d)

	case typedesc.KindList:
		// Element alternatives reduce by the union rule; the collection node
		// itself is always required regardless of element nullability.
		items, _, err := c.convertUnion(t.Elems, path+"/items", d)
		if err != nil {
			return nil, false, err
		}
		return js.Array(items), true, nil

	case typedesc.KindAnnotated:
		s, req, err := c.convert(t.Inner, path, d)
		if err != nil {
			return nil, false, err
		}
		if s.Description == "" {
			if doc := c.extractDoc(t.Meta); doc != "" {
				s.Description = doc
			}
		}
		return s, req, nil

	case typedesc.KindLiteral:
		switch len(t.Values) {
		case 0:
			return js.Null(), false, nil
		case 1:
			return js.Const(t.Values[0]), true, nil
		default:
			return js.Enum(t.Values...), true, nil
		}

	case typedesc.KindEnum:
		return js.Enum(t.Values...), true, nil

	case typedesc.KindRecord:
		return c.convertRecord(t, path, d)

	case typedesc.KindMap:
		return js.Object(), true, nil

	case typedesc.KindNull:
		return js.Null(), false, nil

	case typedesc.KindString:
		return js.String(), true, nil
	case typedesc.KindInteger:
		return js.Integer(), true, nil
	case typedesc.KindNumber:
		return js.Number(), true, nil
	case typedesc.KindBoolean:
		return js.Boolean(), true, nil
	case typedesc.KindObject:
		return js.Object(), true, nil
	case typedesc.KindArray:
		return js.Array(nil), true, nil

	case typedesc.KindFunc:
		return c.convertFunc(t, path, d)

	default:
		return c.unsupported(t, path)
	}
}

// convertUnion flattens a member list. An empty union is the null schema and
// not required; a single-member union is transparent and propagates the
// member's own requiredness; otherwise requiredness is decided by whether
// null appears among the members at this level.
func (c *Converter) convertUnion(members []*typedesc.Type, path string, d *descent) (*js.Schema, bool, error) {
	required := true
	for _, m := range members {
		if m != nil && m.Kind == typedesc.KindNull {
			required = false
		}
	}

	if len(members) == 0 {
		return js.Null(), false, nil
	}
	if len(members) == 1 {
		return c.convert(members[0], path, d)
	}

	schemas := make([]*js.Schema, 0, len(members))
	allScalar := true
	for _, m := range members {
		s, _, err := c.convert(m, path, d)
		if err != nil {
			return nil, false, err
		}
		if !s.IsScalar() {
			allScalar = false
		}
		schemas = append(schemas, s)
	}

	if allScalar {
		// Collapse into one value schema over the member kinds,
		// deduplicated in first-appearance order.
		kinds := make([]string, 0, len(schemas))
		have := map[string]bool{}
		for _, s := range schemas {
			for _, k := range s.Type {
				if !have[k] {
					have[k] = true
					kinds = append(kinds, k)
				}
			}
		}
		return js.Value(kinds...), required, nil
	}

	return js.OneOf(schemas...), required, nil
}

func (c *Converter) convertRecord(t *typedesc.Type, path string, d *descent) (*js.Schema, bool, error) {
	props := js.NewProperties()
	var required []string

	for _, f := range t.Fields {
		s, req, err := c.convert(f.Type, path+"/"+f.Name, d)
		if err != nil {
			return nil, false, err
		}
		if s.Description == "" && f.Doc != "" {
			s.Description = f.Doc
		}
		props.Set(f.Name, s)
		if req {
			required = append(required, f.Name)
		}
	}

	obj := js.ObjectOf(props, required)
	if t.Doc != "" {
		obj.Description = t.Doc
	}
	return obj, true, nil
}

func (c *Converter) extractDoc(meta []any) string {
	if c.opt.DocExtractor != nil {
		return c.opt.DocExtractor(meta)
	}
	for _, m := range meta {
		if s, ok := m.(string); ok {
			return s
		}
	}
	return ""
}

func (c *Converter) unsupported(t *typedesc.Type, path string) (*js.Schema, bool, error) {
	if c.opt.Fallback {
		return js.Object(), true, nil
	}
	return nil, false, &UnsupportedTypeError{Path: path, Desc: t}
}
