package typeschema

import (
	"errors"
	"fmt"

	"github.com/reoring/typeschema/i18n"
	"github.com/reoring/typeschema/typedesc"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnsupportedType  = "unsupported_type"
	CodeParameterUntyped = "parameter_untyped"
	CodeCycleDetected    = "cycle_detected"
)

// UnsupportedTypeError reports the exact recursion node where classification
// failed every rule. It is the sole conversion failure; the Fallback option
// downgrades it into a permissive object schema instead.
type UnsupportedTypeError struct {
	Path  string         // JSON-Pointer-style location within the description (for example: /user/tags/items).
	Desc  *typedesc.Type // The offending type description.
	Param string         // Set when a callable parameter lacks both a type and a default.
}

func (e *UnsupportedTypeError) Error() string {
	code := CodeUnsupportedType
	if e.Param != "" {
		code = CodeParameterUntyped
	}
	path := e.Path
	if path == "" {
		path = "/"
	}
	if e.Param != "" {
		return fmt.Sprintf("typeschema: %s at %s: %s (parameter %q)", code, path, i18n.T(code, nil), e.Param)
	}
	return fmt.Sprintf("typeschema: %s at %s: %s (%s)", code, path, i18n.T(code, nil), e.Desc)
}

// CycleError reports a self-referential type description. Cycles are never
// downgraded by the Fallback option; a cyclic description has no finite
// schema.
type CycleError struct {
	Path string
	Desc *typedesc.Type
}

func (e *CycleError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("typeschema: %s at %s: %s (%s)", CodeCycleDetected, path, i18n.T(CodeCycleDetected, nil), e.Desc)
}

// AsUnsupportedType extracts an UnsupportedTypeError using errors.As.
func AsUnsupportedType(err error) (*UnsupportedTypeError, bool) {
	var ute *UnsupportedTypeError
	if errors.As(err, &ute) {
		return ute, true
	}
	return nil, false
}

// AsCycle extracts a CycleError using errors.As.
func AsCycle(err error) (*CycleError, bool) {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
