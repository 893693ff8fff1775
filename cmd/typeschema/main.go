package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	typeschema "github.com/reoring/typeschema"
	js "github.com/reoring/typeschema/jsonschema"
	"github.com/reoring/typeschema/typedesc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typeschema CLI\n\nUsage:\n  typeschema convert -i desc.yaml [-o schema.json] [-fallback] [-compact]\n\nNotes:\n  - The input is a declarative type-description document (YAML or JSON,\n    chosen by file extension). The output is a JSON Schema document.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in string
	var out string
	var fallback bool
	var compact bool
	fs.StringVar(&in, "i", "", "input type-description document (.yaml/.yml/.json)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&fallback, "fallback", false, "emit a permissive object schema for unsupported nodes instead of failing")
	fs.BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("read: %v", err)
	}

	var desc *typedesc.Type
	switch strings.ToLower(filepath.Ext(in)) {
	case ".json":
		desc, err = typedesc.ParseJSON(data)
	default:
		desc, err = typedesc.ParseYAML(data)
	}
	if err != nil {
		fatalf("decode: %v", err)
	}

	opt := typeschema.ConvertOpt{Fallback: fallback}
	var schema *js.Schema
	if desc.Kind == typedesc.KindFunc {
		schema, err = typeschema.ConvertCallable(desc, opt)
	} else {
		schema, err = typeschema.Convert(desc, opt)
	}
	if err != nil {
		fatalf("convert: %v", err)
	}

	var rendered []byte
	if compact {
		rendered, err = js.Marshal(schema)
	} else {
		rendered, err = js.MarshalIndent(schema)
	}
	if err != nil {
		fatalf("render: %v", err)
	}
	rendered = append(rendered, '\n')

	if out == "" {
		_, _ = os.Stdout.Write(rendered)
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
