package typeschema_test

import (
	"fmt"
	"strings"
	"testing"

	typeschema "github.com/reoring/typeschema"
	"github.com/reoring/typeschema/typedesc"
)

func TestUnsupportedTypeError_Message(t *testing.T) {
	_, err := typeschema.Convert(typedesc.External(42))
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, typeschema.CodeUnsupportedType) {
		t.Fatalf("message should carry the code, got %q", msg)
	}
	if !strings.Contains(msg, "external") {
		t.Fatalf("message should name the offending description, got %q", msg)
	}
}

func TestUnsupportedTypeError_ParamMessage(t *testing.T) {
	fn := typedesc.Callable().Param("x", nil).Build()
	_, err := typeschema.ConvertCallable(fn)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, typeschema.CodeParameterUntyped) || !strings.Contains(msg, `"x"`) {
		t.Fatalf("message should carry the param code and name, got %q", msg)
	}
}

func TestErrorExtractors_Wrapped(t *testing.T) {
	_, err := typeschema.Convert(typedesc.External(nil))
	wrapped := fmt.Errorf("loading tool schema: %w", err)
	if _, ok := typeschema.AsUnsupportedType(wrapped); !ok {
		t.Fatalf("errors.As should see through wrapping")
	}
	if _, ok := typeschema.AsCycle(wrapped); ok {
		t.Fatalf("wrong extractor matched")
	}
}
