package typeschema

import (
	js "github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typedesc"
)

// ClassifierFunc overrides classification for individual nodes. It runs
// before every built-in rule on every node encountered, including nested
// ones. Returning nil or an empty schema declines the node; a non-empty
// schema is used verbatim and descent stops there.
type ClassifierFunc func(t *typedesc.Type) *js.Schema

// DocExtractorFunc replaces the built-in documentation rule for annotated
// nodes. It receives the node's full metadata values and returns the
// description to attach, or "" for none. The built-in rule picks the first
// plain string among the metadata values.
type DocExtractorFunc func(meta []any) string

// SelfDescribing is the delegate contract for external model systems that
// produce their own schema. When an external node's value implements it and
// returns a non-empty schema, that schema replaces built-in conversion for
// the node and its entire subtree.
type SelfDescribing interface {
	JSONSchema() (*js.Schema, error)
}

// defaultMaxDepth bounds descent when MaxDepth is left zero. Cycle detection
// catches self-referential descriptions; the depth bound backstops
// pathological trees produced by hooks.
const defaultMaxDepth = 256

// ConvertOpt bundles conversion options. The zero value is strict mode:
// unsupported nodes fail with UnsupportedTypeError.
type ConvertOpt struct {
	// Fallback, when true, converts unsupported nodes into a permissive
	// object schema instead of failing. Cycles still fail.
	Fallback bool
	// Classifier, when set, is consulted first on every node.
	Classifier ClassifierFunc
	// DocExtractor, when set, replaces the built-in annotated-doc rule.
	DocExtractor DocExtractorFunc
	// DisableSelfDescribing turns off the delegate check for external nodes.
	DisableSelfDescribing bool
	// MaxDepth bounds recursion depth; 0 means the package default.
	MaxDepth int
}

// Converter converts type descriptions into JSON Schema documents. The
// delegate capability is fixed when the converter is built; each Convert
// call is an independent, pure computation.
type Converter struct {
	opt          ConvertOpt
	selfDescribe bool
	maxDepth     int
}

// NewConverter builds a converter with the given options.
func NewConverter(opt ConvertOpt) *Converter {
	md := opt.MaxDepth
	if md <= 0 {
		md = defaultMaxDepth
	}
	return &Converter{
		opt:          opt,
		selfDescribe: !opt.DisableSelfDescribing,
		maxDepth:     md,
	}
}

// Convert produces the schema for an arbitrary type description.
func (c *Converter) Convert(t *typedesc.Type) (*js.Schema, error) {
	s, _, err := c.convert(t, "", newDescent())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ConvertCallable produces an object schema from a callable description's
// parameter list.
func (c *Converter) ConvertCallable(fn *typedesc.Type) (*js.Schema, error) {
	s, _, err := c.convertFunc(fn, "", newDescent())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Convert is the package-level entry point. When multiple opts are passed
// the last one wins, mirroring the option-struct convention used across this
// repository.
func Convert(t *typedesc.Type, opts ...ConvertOpt) (*js.Schema, error) {
	return NewConverter(lastOpt(opts)).Convert(t)
}

// ConvertCallable converts a callable description's parameter list into an
// object schema: one property per parameter, defaults attached, parameters
// with defaults omitted from required.
func ConvertCallable(fn *typedesc.Type, opts ...ConvertOpt) (*js.Schema, error) {
	return NewConverter(lastOpt(opts)).ConvertCallable(fn)
}

func lastOpt(opts []ConvertOpt) ConvertOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ConvertOpt{}
}
